package routes

import (
	"tukangku/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathServices = "/services"

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.GET("/:serviceId", serviceHandler.GetService)
	}
}
