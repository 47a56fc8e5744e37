package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/seiyak/gourmet-hunter-backend/internal/db"
	"github.com/seiyak/gourmet-hunter-backend/internal/handlers"
	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/middleware"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
	"github.com/seiyak/gourmet-hunter-backend/internal/server"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
	"github.com/seiyak/gourmet-hunter-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on process environment")
	}
	fullCourseOwner := utils.GetEnv("FULL_COURSE_OWNER", "default", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	categoryRepo := repos.NewCategoryRepo(thePG, log)
	rankingItemRepo := repos.NewRankingItemRepo(thePG, log)
	fullCourseRepo := repos.NewFullCourseRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	rankingService := services.NewRankingService(thePG, log, categoryRepo, rankingItemRepo)
	itemService := services.NewItemService(thePG, log, rankingItemRepo, rankingService)
	categoryService := services.NewCategoryService(thePG, log, categoryRepo, rankingItemRepo, fullCourseRepo)
	fullCourseService := services.NewFullCourseService(thePG, log, fullCourseRepo, fullCourseOwner)
	snapshotService := services.NewSnapshotService(thePG, log, categoryRepo, rankingItemRepo, fullCourseRepo, fullCourseOwner)

	// Handlers
	log.Info("Setting up handlers from main...")
	snapshotHandler := handlers.NewSnapshotHandler(log, snapshotService)
	itemHandler := handlers.NewItemHandler(log, itemService)
	categoryHandler := handlers.NewCategoryHandler(log, categoryService)
	fullCourseHandler := handlers.NewFullCourseHandler(log, fullCourseService)

	// Middleware
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		RequestLogMiddleware: requestLogMiddleware,
		SnapshotHandler:      snapshotHandler,
		ItemHandler:          itemHandler,
		CategoryHandler:      categoryHandler,
		FullCourseHandler:    fullCourseHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
