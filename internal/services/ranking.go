package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
)

// RankingService restores the two ranking invariants for one category
// from persisted state: ranks form a contiguous 1-based sequence in
// descending score order, and the category's representative image
// mirrors the rank-1 item (NULL when the category is empty).
//
// The service is stateless between calls, so it is safe to invoke from
// any write path and repeatedly. The read-then-write-many sequence is
// not atomic: a concurrent write to the same category between the read
// and the rank writes can leave this pass stale. Client-originated
// writes are serialized per user action today; per-category
// serialization is the upgrade path if that changes.
type RankingService interface {
	Recalculate(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error
}

type rankingService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	itemRepo     repos.RankingItemRepo
}

func NewRankingService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo, itemRepo repos.RankingItemRepo) RankingService {
	return &rankingService{
		db:           db,
		log:          log.With("service", "RankingService"),
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

func (s *rankingService) Recalculate(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	items, err := s.itemRepo.ListByCategoryScoreDesc(ctx, tx, categoryID)
	if err != nil {
		// A failed load is fatal for this invocation: nothing was
		// written, the category keeps whatever state it last had.
		return fmt.Errorf("load items for category %s: %w", categoryID, err)
	}

	if len(items) == 0 {
		if err := s.categoryRepo.SetImageURL(ctx, tx, categoryID, nil); err != nil {
			return &PartialRecalcError{Failures: []RecalcFailure{{
				CategoryID: categoryID,
				Err:        fmt.Errorf("clear representative image: %w", err),
			}}}
		}
		return nil
	}

	// Ties keep the order the backend returned; there is deliberately
	// no secondary sort key.
	assignments := make([]repos.RankAssignment, 0, len(items))
	for i, item := range items {
		assignments = append(assignments, repos.RankAssignment{ItemID: item.ID, Rank: i + 1})
	}

	var writeErrs []error
	for _, res := range s.itemRepo.UpdateRanks(ctx, tx, assignments) {
		if res.Err != nil {
			writeErrs = append(writeErrs, fmt.Errorf("rank %d for item %s: %w", res.Rank, res.ItemID, res.Err))
		}
	}

	// The image write runs even after rank write failures, using the
	// in-memory order from the load above rather than a re-read.
	if err := s.categoryRepo.SetImageURL(ctx, tx, categoryID, items[0].ImageURL); err != nil {
		writeErrs = append(writeErrs, fmt.Errorf("set representative image: %w", err))
	}

	if len(writeErrs) > 0 {
		s.log.Warn("Recalculation completed with failures", "category_id", categoryID, "failed_writes", len(writeErrs))
		return &PartialRecalcError{Failures: []RecalcFailure{{
			CategoryID: categoryID,
			Err:        errors.Join(writeErrs...),
		}}}
	}
	return nil
}
