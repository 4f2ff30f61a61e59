package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// IAdminUseCase exposes the dashboard operations: tracking orders,
// users and revenue. Orders are mutated here and nowhere else after
// submission.

type IAdminUseCase interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	Stats(ctx context.Context) (entities.DashboardStats, error)
}

type AdminUseCase struct {
	orders interfaces.IOrderRepository
	users  interfaces.IUserRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(orders interfaces.IOrderRepository, users interfaces.IUserRepository) *AdminUseCase {
	return &AdminUseCase{orders: orders, users: users}
}

// ListOrders returns all orders, newest first.
func (u *AdminUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (u *AdminUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *AdminUseCase) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.orders.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *AdminUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// Stats aggregates the dashboard numbers from the authoritative order
// store and the user table.
func (u *AdminUseCase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.DashboardStats{
		TotalOrders:    len(orders),
		TotalUsers:     len(users),
		OrdersByStatus: make(map[entities.OrderStatus]int),
	}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalPrice
		stats.OrdersByStatus[o.Status]++
	}
	if len(orders) > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(len(orders))
	}
	return stats, nil
}
