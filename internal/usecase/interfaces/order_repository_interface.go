package interfaces

import (
	"context"
	"webatelier/internal/domain/entities"
)

// IOrderRepository abstracts the primary order backend. It is the
// authoritative store: submission succeeds if and only if Create
// succeeds here.
//
// The admin side needs:
//   - list all orders for the dashboard
//   - fetch one order
//   - move an order through its status lifecycle

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
