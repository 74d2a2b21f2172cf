package routes

import (
	"tukangku/internal/adapter/http/handlers"
	"tukangku/internal/adapter/http/middleware"
	"tukangku/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const PathWallet = "/wallet"

func addWalletRoutes(rg *gin.RouterGroup, walletHandler *handlers.WalletHandler) {
	wallet := rg.Group(PathWallet, middleware.RequireRole(auth.RoleWorker))
	{
		wallet.GET("/me", walletHandler.GetMyWallet)
		wallet.POST("/me/withdraw", walletHandler.RequestWithdrawal)
	}
}
