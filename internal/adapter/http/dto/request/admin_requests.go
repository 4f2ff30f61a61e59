package request

// OrderStatusUpdateRequest moves an order through its lifecycle.
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
