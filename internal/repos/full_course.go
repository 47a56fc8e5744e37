package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

type FullCourseRepo interface {
	GetByOwner(ctx context.Context, tx *gorm.DB, ownerKey string) ([]*types.FullCourseSlot, error)
	UpsertSlot(ctx context.Context, tx *gorm.DB, slot *types.FullCourseSlot) error
	UpsertAll(ctx context.Context, tx *gorm.DB, slots []*types.FullCourseSlot) error
	ClearItemRefs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error
}

type fullCourseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFullCourseRepo(db *gorm.DB, baseLog *logger.Logger) FullCourseRepo {
	repoLog := baseLog.With("repo", "FullCourseRepo")
	return &fullCourseRepo{db: db, log: repoLog}
}

func (fr *fullCourseRepo) GetByOwner(ctx context.Context, tx *gorm.DB, ownerKey string) ([]*types.FullCourseSlot, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.FullCourseSlot

	if err := transaction.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fullCourseRepo) UpsertSlot(ctx context.Context, tx *gorm.DB, slot *types.FullCourseSlot) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_key"}, {Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_id", "updated_at"}),
		}).
		Create(slot).Error
}

func (fr *fullCourseRepo) UpsertAll(ctx context.Context, tx *gorm.DB, slots []*types.FullCourseSlot) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(slots) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_key"}, {Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_id", "updated_at"}),
		}).
		Create(&slots).Error
}

func (fr *fullCourseRepo) ClearItemRefs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(itemIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.FullCourseSlot{}).
		Where("item_id IN ?", itemIDs).
		Update("item_id", nil).Error
}
