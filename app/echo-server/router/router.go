package router

import (
	"futureplus/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout, authRequired)
	auth.GET("/me", handler.Me, authRequired)
}

func SetupPlanRoutes(api *echo.Group, handler *rest.PlanHandler) {
	api.GET("/plans", handler.GetPlans)
}

func SetupWalletRoutes(api *echo.Group, handler *rest.WalletHandler) {
	wallet := api.Group("/wallet")

	wallet.GET("/transactions", handler.GetTransactions)
}

func SetupGiftRoutes(api *echo.Group, handler *rest.GiftHandler) {
	gift := api.Group("/gift")

	gift.GET("/active", handler.GetActiveGifts)
	gift.POST("/participate", handler.Participate)
	gift.GET("/participations", handler.GetParticipations)
}

func SetupReferralRoutes(api *echo.Group, handler *rest.ReferralHandler) {
	api.GET("/referral", handler.GetReferrals)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin")

	admin.POST("/login", handler.Login)

	admin.GET("/users", handler.GetUsers, adminOnly)
	admin.POST("/users/toggle", handler.ToggleUser, adminOnly)
	admin.GET("/gifts", handler.GetGifts, adminOnly)
	admin.POST("/plans/toggle", handler.TogglePlan, adminOnly)
	admin.POST("/plans/update", handler.UpdatePlan, adminOnly)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Health)
}
