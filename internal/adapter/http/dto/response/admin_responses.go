package response

import (
	"time"

	"webatelier/internal/domain/entities"
)

type UserResponse struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Profession string    `json:"profession"`
	OrderCount int       `json:"order_count"`
	TotalSpent float64   `json:"total_spent"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{
			Email:      u.Email,
			Name:       u.Name,
			Surname:    u.Surname,
			Profession: u.Profession,
			OrderCount: u.OrderCount,
			TotalSpent: u.TotalSpent,
			CreatedAt:  u.CreatedAt,
		})
	}
	return out
}

type StatsResponse struct {
	TotalOrders       int            `json:"total_orders"`
	TotalUsers        int            `json:"total_users"`
	TotalRevenue      float64        `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	OrdersByStatus    map[string]int `json:"orders_by_status"`
}

func FromStats(s entities.DashboardStats) StatsResponse {
	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for status, n := range s.OrdersByStatus {
		byStatus[string(status)] = n
	}
	return StatsResponse{
		TotalOrders:       s.TotalOrders,
		TotalUsers:        s.TotalUsers,
		TotalRevenue:      s.TotalRevenue,
		AverageOrderValue: s.AverageOrderValue,
		OrdersByStatus:    byStatus,
	}
}
