package entities

import "time"

// OrderStatus represents the lifecycle of a submitted order.
//
// Domain notes:
//   - Orders are created with status "pending" at submission time.
//   - Only the admin side moves an order forward; customers never
//     mutate an order after submission.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is the immutable snapshot persisted when a wizard session is
// submitted.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AdditionalFeatures holds feature names (not ids) because that is the
// shape the admin dashboard and the mirror store consume.

type Order struct {
	ID                 string      `json:"id"`
	CustomerName       string      `json:"customer_name"`
	CustomerSurname    string      `json:"customer_surname"`
	CustomerEmail      string      `json:"customer_email"`
	Profession         string      `json:"profession"`
	WebsiteName        string      `json:"website_name"`
	WebsiteType        WebsiteType `json:"website_type"`
	TargetAudience     string      `json:"target_audience"`
	Purpose            string      `json:"purpose"`
	ColorPalette       string      `json:"color_palette"`
	KnowledgeText      string      `json:"knowledge_text"`
	AdditionalFeatures []string    `json:"additional_features"`
	SelectedPages      []string    `json:"selected_pages"`
	TotalPrice         float64     `json:"total_price"`
	Status             OrderStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders       int                 `json:"total_orders"`
	TotalUsers        int                 `json:"total_users"`
	TotalRevenue      float64             `json:"total_revenue"`
	AverageOrderValue float64             `json:"average_order_value"`
	OrdersByStatus    map[OrderStatus]int `json:"orders_by_status"`
}
