package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"expense-api/config"
	"expense-api/logger"
	"expense-api/middleware"
	"expense-api/routes"
	"expense-api/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel)

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Database connected", "driver", db.Driver)

	if err := config.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations applied")

	router := setupRouter(cfg, db)

	slog.Info("Server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func setupRouter(cfg *config.AppConfig, db *config.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimiter())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.UserIDHeader},
		ExposeHeaders:    []string{"Location", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.GET("/", func(c *gin.Context) {
		page, err := web.StaticFS.ReadFile("static/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "landing page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	router.GET("/_hc", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := router.Group("/api")
	routes.SetupExpenseRoutes(api, db)

	return router
}
