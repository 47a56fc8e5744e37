package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RankingItem is one rated entry. Score is the sole ordering key;
// Rank is derived from score ordering within the category and stored
// denormalized for fast reads. The ID is assigned by the caller before
// the first upsert and never changes.
type RankingItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Category   *Category      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Name       string         `gorm:"column:name;not null" json:"name"`
	Score      float64        `gorm:"column:score;not null" json:"score"`
	Comment    string         `gorm:"column:comment" json:"comment"`
	ImageURL   *string        `gorm:"column:image_url" json:"image_url"`
	EatenAt    datatypes.Date `gorm:"column:eaten_at;not null" json:"eaten_at"`
	Rank       int            `gorm:"column:rank;not null;default:0" json:"rank"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (RankingItem) TableName() string { return "ranking_item" }
