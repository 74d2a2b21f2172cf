package routes

import (
	"tukangku/internal/adapter/http/handlers"
	"tukangku/internal/adapter/http/middleware"
	"tukangku/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", middleware.RequireRole(auth.RoleCustomer), orderHandler.CreateOrder)
		orders.GET("/my-orders", orderHandler.ListMyOrders)
		orders.GET("/availability/:workerId", orderHandler.WorkerAvailability)
		orders.GET("/:orderId", orderHandler.GetOrder)

		orders.PUT("/:orderId/accept", middleware.RequireRole(auth.RoleWorker), orderHandler.AcceptOrder)
		orders.PUT("/:orderId/reject", middleware.RequireRole(auth.RoleWorker), orderHandler.RejectOrder)
		orders.PUT("/:orderId/cancel", middleware.RequireRole(auth.RoleCustomer), orderHandler.CancelOrder)
		orders.PUT("/:orderId/complete", middleware.RequireRole(auth.RoleWorker), orderHandler.CompleteOrder)

		orders.POST("/:orderId/quote", middleware.RequireRole(auth.RoleWorker), orderHandler.ProposeQuote)
		orders.PUT("/:orderId/quote/respond", middleware.RequireRole(auth.RoleCustomer), orderHandler.RespondToQuote)
		orders.POST("/:orderId/pay", middleware.RequireRole(auth.RoleCustomer), orderHandler.PayFinalQuote)

		orders.PATCH("/:orderId/status", middleware.RequireRole(auth.RoleAdmin), orderHandler.ForceStatus)
	}
}
