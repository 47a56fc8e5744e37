package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups ranking items. ImageURL is denormalized: it always
// mirrors the image of the item currently holding rank 1, or NULL when
// the category has no items.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	ImageURL  *string        `gorm:"column:image_url" json:"image_url"`
	Items     []*RankingItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:CategoryID;references:ID" json:"items,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Category) TableName() string { return "category" }
