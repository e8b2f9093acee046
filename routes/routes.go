package routes

import (
	"github.com/gin-gonic/gin"

	"expense-api/config"
	"expense-api/handlers"
	"expense-api/middleware"
	"expense-api/services"
)

// SetupExpenseRoutes registers the expense CRUD routes. Every route in the
// group requires the identity header.
func SetupExpenseRoutes(rg *gin.RouterGroup, db *config.DB) {
	service := services.NewExpenseService(db)
	h := handlers.NewExpenseHandler(service)

	expenses := rg.Group("/expenses")
	expenses.Use(middleware.RequireIdentity())

	expenses.POST("", h.Create)
	expenses.GET("", h.List)
	expenses.GET("/:id", h.Get)
	expenses.PUT("/:id", h.Update)
	expenses.DELETE("/:id", h.Delete)
}
