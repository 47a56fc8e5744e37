package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

type CategoryService interface {
	Create(ctx context.Context, name string) (*types.Category, error)
	Rename(ctx context.Context, categoryID uuid.UUID, name string) error
	GetAll(ctx context.Context) ([]*types.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type categoryService struct {
	db             *gorm.DB
	log            *logger.Logger
	categoryRepo   repos.CategoryRepo
	itemRepo       repos.RankingItemRepo
	fullCourseRepo repos.FullCourseRepo
}

func NewCategoryService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo, itemRepo repos.RankingItemRepo, fullCourseRepo repos.FullCourseRepo) CategoryService {
	return &categoryService{
		db:             db,
		log:            log.With("service", "CategoryService"),
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
		fullCourseRepo: fullCourseRepo,
	}
}

func (s *categoryService) Create(ctx context.Context, name string) (*types.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	created, err := s.categoryRepo.Create(ctx, nil, []*types.Category{{Name: name}})
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return created[0], nil
}

func (s *categoryService) Rename(ctx context.Context, categoryID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if err := s.categoryRepo.Rename(ctx, nil, categoryID, name); err != nil {
		return fmt.Errorf("rename category %s: %w", categoryID, err)
	}
	return nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]*types.Category, error) {
	return s.categoryRepo.GetAll(ctx, nil)
}

// Delete cascades: the category's items are removed and any full
// course slot pointing at one of them is cleared, all in one
// transaction so a failure leaves nothing half-deleted.
func (s *categoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return withTransaction(s.db, func(tx *gorm.DB) error {
		itemIDs, err := s.itemRepo.ListIDsByCategory(ctx, tx, categoryID)
		if err != nil {
			return fmt.Errorf("list items for category %s: %w", categoryID, err)
		}
		if err := s.fullCourseRepo.ClearItemRefs(ctx, tx, itemIDs); err != nil {
			return fmt.Errorf("clear full course refs for category %s: %w", categoryID, err)
		}
		if err := s.itemRepo.DeleteByCategory(ctx, tx, categoryID); err != nil {
			return fmt.Errorf("delete items for category %s: %w", categoryID, err)
		}
		if err := s.categoryRepo.Delete(ctx, tx, categoryID); err != nil {
			return fmt.Errorf("delete category %s: %w", categoryID, err)
		}
		s.log.Info("Category deleted", "category_id", categoryID, "items_removed", len(itemIDs))
		return nil
	})
}
