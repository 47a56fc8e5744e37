package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, categories []*types.Category) ([]*types.Category, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) ([]*types.Category, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
	Rename(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string) error
	SetImageURL(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, imageURL *string) error
	Delete(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*types.Category) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(categories) == 0 {
		return []*types.Category{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (cr *categoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Category

	if len(categoryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", categoryIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *categoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Category

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *categoryRepo) Rename(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Category{}).
		Where("id = ?", categoryID).
		Update("name", name).Error
}

func (cr *categoryRepo) SetImageURL(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, imageURL *string) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Category{}).
		Where("id = ?", categoryID).
		Update("image_url", imageURL).Error
}

func (cr *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", categoryID).
		Delete(&types.Category{}).Error
}
