package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/seiyak/gourmet-hunter-backend/internal/handlers"
	"github.com/seiyak/gourmet-hunter-backend/internal/middleware"
)

type RouterConfig struct {
	RequestLogMiddleware *middleware.RequestLogMiddleware
	SnapshotHandler      *handlers.SnapshotHandler
	ItemHandler          *handlers.ItemHandler
	CategoryHandler      *handlers.CategoryHandler
	FullCourseHandler    *handlers.FullCourseHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(cfg.RequestLogMiddleware.Log())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/initial-data", cfg.SnapshotHandler.GetInitialData)

		api.POST("/items", cfg.ItemHandler.SaveItem)

		api.GET("/categories", cfg.CategoryHandler.ListCategories)
		api.POST("/categories", cfg.CategoryHandler.CreateCategory)
		api.PATCH("/categories/:category_id", cfg.CategoryHandler.RenameCategory)
		api.DELETE("/categories/:category_id", cfg.CategoryHandler.DeleteCategory)

		api.GET("/full-course", cfg.FullCourseHandler.GetFullCourse)
		api.PUT("/full-course", cfg.FullCourseHandler.SetAllSlots)
		api.PUT("/full-course/slots/:slot_key", cfg.FullCourseHandler.SetSlot)
	}

	return router
}
