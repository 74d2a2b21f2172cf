package handlers

import (
	"tukangku/internal/adapter/http/middleware"
	"tukangku/internal/usecase"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the authenticated actor from the claims the auth
// middleware stored on the request context.
func actorFromContext(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		ID:    c.GetString(middleware.ContextUserIDKey),
		Role:  c.GetString(middleware.ContextRoleKey),
		Email: c.GetString(middleware.ContextEmailKey),
		Nama:  c.GetString(middleware.ContextNamaKey),
	}
}
