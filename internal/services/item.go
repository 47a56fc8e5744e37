package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

const (
	ScoreMin = 0.0
	ScoreMax = 5.0
)

// ItemService persists a single ranking item and keeps the affected
// categories' rank orderings and representative images in sync.
type ItemService interface {
	SaveItem(ctx context.Context, item *types.RankingItem, previousCategoryID *uuid.UUID) error
}

type itemService struct {
	db             *gorm.DB
	log            *logger.Logger
	itemRepo       repos.RankingItemRepo
	rankingService RankingService
}

func NewItemService(db *gorm.DB, log *logger.Logger, itemRepo repos.RankingItemRepo, rankingService RankingService) ItemService {
	return &itemService{
		db:             db,
		log:            log.With("service", "ItemService"),
		itemRepo:       itemRepo,
		rankingService: rankingService,
	}
}

// SaveItem upserts the item, then recalculates ranks for the category
// it now belongs to, and for the category it left when
// previousCategoryID names a different one. Both recalculations run
// even if the first fails; after a successful upsert any recalculation
// failure surfaces as *PartialRecalcError so callers can tell "saved
// but rankings may be stale" apart from a failed save.
func (s *itemService) SaveItem(ctx context.Context, item *types.RankingItem, previousCategoryID *uuid.UUID) error {
	if err := validateItem(item); err != nil {
		return err
	}

	if err := s.itemRepo.Upsert(ctx, nil, item); err != nil {
		s.log.Error("Item upsert failed", "item_id", item.ID, "category_id", item.CategoryID, "error", err)
		return fmt.Errorf("upsert item %s: %w", item.ID, err)
	}

	categoryChanged := previousCategoryID != nil && *previousCategoryID != item.CategoryID

	var failures []RecalcFailure
	if categoryChanged {
		if err := s.rankingService.Recalculate(ctx, nil, *previousCategoryID); err != nil {
			failures = append(failures, recalcFailures(*previousCategoryID, err)...)
		}
	}
	if err := s.rankingService.Recalculate(ctx, nil, item.CategoryID); err != nil {
		failures = append(failures, recalcFailures(item.CategoryID, err)...)
	}

	if len(failures) > 0 {
		return &PartialRecalcError{Failures: failures}
	}
	return nil
}

func recalcFailures(categoryID uuid.UUID, err error) []RecalcFailure {
	var partial *PartialRecalcError
	if errors.As(err, &partial) {
		return partial.Failures
	}
	return []RecalcFailure{{CategoryID: categoryID, Err: err}}
}

func validateItem(item *types.RankingItem) error {
	if item == nil {
		return &ValidationError{Field: "item", Reason: "missing"}
	}
	if item.ID == uuid.Nil {
		return &ValidationError{Field: "id", Reason: "must be set before saving"}
	}
	if item.CategoryID == uuid.Nil {
		return &ValidationError{Field: "category_id", Reason: "required"}
	}
	if strings.TrimSpace(item.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if item.Score < ScoreMin || item.Score > ScoreMax {
		return &ValidationError{Field: "score", Reason: fmt.Sprintf("must be between %.2f and %.2f", ScoreMin, ScoreMax)}
	}
	if time.Time(item.EatenAt).IsZero() {
		return &ValidationError{Field: "eaten_at", Reason: "required"}
	}
	return nil
}
