package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

// SlotKeys is the closed set of full-course menu positions. It is
// fixed at build time; unknown keys are rejected before any write.
var SlotKeys = []string{
	"appetizer",
	"soup",
	"fish",
	"meat",
	"main",
	"salad",
	"dessert",
	"drink",
}

func IsValidSlotKey(key string) bool {
	for _, k := range SlotKeys {
		if k == key {
			return true
		}
	}
	return false
}

// FullCourseService stores item references in the fixed menu slots of
// a single owner. It never reads or writes scores or ranks.
type FullCourseService interface {
	GetAssignments(ctx context.Context) (map[string]*uuid.UUID, error)
	SetSlot(ctx context.Context, slotKey string, itemID *uuid.UUID) error
	SetAll(ctx context.Context, assignments map[string]*uuid.UUID) error
}

type fullCourseService struct {
	db             *gorm.DB
	log            *logger.Logger
	fullCourseRepo repos.FullCourseRepo
	ownerKey       string
}

func NewFullCourseService(db *gorm.DB, log *logger.Logger, fullCourseRepo repos.FullCourseRepo, ownerKey string) FullCourseService {
	return &fullCourseService{
		db:             db,
		log:            log.With("service", "FullCourseService"),
		fullCourseRepo: fullCourseRepo,
		ownerKey:       ownerKey,
	}
}

// GetAssignments returns an entry for every slot key, nil for slots
// never assigned.
func (s *fullCourseService) GetAssignments(ctx context.Context) (map[string]*uuid.UUID, error) {
	rows, err := s.fullCourseRepo.GetByOwner(ctx, nil, s.ownerKey)
	if err != nil {
		return nil, fmt.Errorf("load full course slots: %w", err)
	}
	return normalizeAssignments(rows), nil
}

func (s *fullCourseService) SetSlot(ctx context.Context, slotKey string, itemID *uuid.UUID) error {
	if !IsValidSlotKey(slotKey) {
		return &InvalidSlotError{SlotKey: slotKey}
	}
	slot := &types.FullCourseSlot{OwnerKey: s.ownerKey, SlotKey: slotKey, ItemID: itemID}
	if err := s.fullCourseRepo.UpsertSlot(ctx, nil, slot); err != nil {
		return fmt.Errorf("set full course slot %q: %w", slotKey, err)
	}
	return nil
}

// SetAll overwrites every slot in one transactional batch. Keys are
// validated up front so a bad key causes no writes at all; slots the
// mapping omits are cleared.
func (s *fullCourseService) SetAll(ctx context.Context, assignments map[string]*uuid.UUID) error {
	for key := range assignments {
		if !IsValidSlotKey(key) {
			return &InvalidSlotError{SlotKey: key}
		}
	}
	slots := make([]*types.FullCourseSlot, 0, len(SlotKeys))
	for _, key := range SlotKeys {
		slots = append(slots, &types.FullCourseSlot{
			OwnerKey: s.ownerKey,
			SlotKey:  key,
			ItemID:   assignments[key],
		})
	}
	return withTransaction(s.db, func(tx *gorm.DB) error {
		return s.fullCourseRepo.UpsertAll(ctx, tx, slots)
	})
}

func normalizeAssignments(rows []*types.FullCourseSlot) map[string]*uuid.UUID {
	out := make(map[string]*uuid.UUID, len(SlotKeys))
	for _, key := range SlotKeys {
		out[key] = nil
	}
	for _, row := range rows {
		if _, ok := out[row.SlotKey]; ok {
			out[row.SlotKey] = row.ItemID
		}
	}
	return out
}
