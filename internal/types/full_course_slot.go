package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FullCourseSlot maps one named menu position to at most one ranking
// item for a given owner. The (owner, slot) pair is unique; a NULL
// ItemID means the slot is unassigned.
type FullCourseSlot struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerKey  string         `gorm:"column:owner_key;not null;index:idx_owner_slot,unique" json:"owner_key"`
	SlotKey   string         `gorm:"column:slot_key;not null;index:idx_owner_slot,unique" json:"slot_key"`
	ItemID    *uuid.UUID     `gorm:"type:uuid;column:item_id" json:"item_id"`
	Item      *RankingItem   `gorm:"constraint:OnDelete:SET NULL;foreignKey:ItemID;references:ID" json:"item,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FullCourseSlot) TableName() string { return "full_course_slot" }
