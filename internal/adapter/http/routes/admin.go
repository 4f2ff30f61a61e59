package routes

import (
	"webatelier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin = "/admin"
)

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/:order_id", adminHandler.GetOrder)
		admin.PATCH("/orders/:order_id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/stats", adminHandler.GetStats)
	}
}
