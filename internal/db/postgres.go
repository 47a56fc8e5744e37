package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
	"github.com/seiyak/gourmet-hunter-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "gourmet_hunter", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Category{},
		&types.RankingItem{},
		&types.FullCourseSlot{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	if err := s.db.Exec(`
		ALTER TABLE "ranking_item"
		DROP CONSTRAINT IF EXISTS "fk_ranking_item_category_id";
		ALTER TABLE "ranking_item"
		ADD CONSTRAINT "fk_ranking_item_category_id"
		FOREIGN KEY ("category_id")
		REFERENCES "category"("id")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_ranking_item_category_id: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "full_course_slot"
		DROP CONSTRAINT IF EXISTS "fk_full_course_slot_item_id";
		ALTER TABLE "full_course_slot"
		ADD CONSTRAINT "fk_full_course_slot_item_id"
		FOREIGN KEY ("item_id")
		REFERENCES "ranking_item"("id")
		ON DELETE SET NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_full_course_slot_item_id: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
