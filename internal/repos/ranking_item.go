package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

// RankAssignment is one (item, rank) pair to persist.
type RankAssignment struct {
	ItemID uuid.UUID
	Rank   int
}

// RankWriteResult reports the outcome of a single rank write. The
// write loop is best-effort: one failing item does not stop writes for
// the remaining items, so callers get one result per assignment.
type RankWriteResult struct {
	ItemID uuid.UUID
	Rank   int
	Err    error
}

type RankingItemRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, item *types.RankingItem) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.RankingItem, error)
	ListByCategoryScoreDesc(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]*types.RankingItem, error)
	ListIDsByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]uuid.UUID, error)
	UpdateRanks(ctx context.Context, tx *gorm.DB, assignments []RankAssignment) []RankWriteResult
	DeleteByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error
}

type rankingItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRankingItemRepo(db *gorm.DB, baseLog *logger.Logger) RankingItemRepo {
	repoLog := baseLog.With("repo", "RankingItemRepo")
	return &rankingItemRepo{db: db, log: repoLog}
}

func (rr *rankingItemRepo) Upsert(ctx context.Context, tx *gorm.DB, item *types.RankingItem) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(item).Error
}

func (rr *rankingItemRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.RankingItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.RankingItem

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *rankingItemRepo) ListByCategoryScoreDesc(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]*types.RankingItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.RankingItem

	if err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("score DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *rankingItemRepo) ListIDsByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var ids []uuid.UUID

	if err := transaction.WithContext(ctx).
		Model(&types.RankingItem{}).
		Where("category_id = ?", categoryID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (rr *rankingItemRepo) UpdateRanks(ctx context.Context, tx *gorm.DB, assignments []RankAssignment) []RankWriteResult {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	results := make([]RankWriteResult, 0, len(assignments))
	for _, a := range assignments {
		err := transaction.WithContext(ctx).
			Model(&types.RankingItem{}).
			Where("id = ?", a.ItemID).
			Update("rank", a.Rank).Error
		if err != nil {
			rr.log.Warn("Rank write failed", "item_id", a.ItemID, "rank", a.Rank, "error", err)
		}
		results = append(results, RankWriteResult{ItemID: a.ItemID, Rank: a.Rank, Err: err})
	}
	return results
}

func (rr *rankingItemRepo) DeleteByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&types.RankingItem{}).Error
}
