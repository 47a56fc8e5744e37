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

// InitialData is the bulk snapshot clients hydrate their mirror from,
// at session start and again after every successful write.
type InitialData struct {
	Categories []*types.Category     `json:"categories"`
	Items      []*types.RankingItem  `json:"items"`
	FullCourse map[string]*uuid.UUID `json:"full_course"`
}

type SnapshotService interface {
	GetInitialData(ctx context.Context) (*InitialData, error)
}

type snapshotService struct {
	db             *gorm.DB
	log            *logger.Logger
	categoryRepo   repos.CategoryRepo
	itemRepo       repos.RankingItemRepo
	fullCourseRepo repos.FullCourseRepo
	ownerKey       string
}

func NewSnapshotService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo, itemRepo repos.RankingItemRepo, fullCourseRepo repos.FullCourseRepo, ownerKey string) SnapshotService {
	return &snapshotService{
		db:             db,
		log:            log.With("service", "SnapshotService"),
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
		fullCourseRepo: fullCourseRepo,
		ownerKey:       ownerKey,
	}
}

// GetInitialData reads categories, items and full-course slots inside
// one transaction. The read is all-or-nothing: consumers need the
// pieces consistent with each other, so any failure fails the call.
func (s *snapshotService) GetInitialData(ctx context.Context) (*InitialData, error) {
	var data InitialData
	err := withTransaction(s.db, func(tx *gorm.DB) error {
		categories, err := s.categoryRepo.GetAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		items, err := s.itemRepo.GetAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}
		slots, err := s.fullCourseRepo.GetByOwner(ctx, tx, s.ownerKey)
		if err != nil {
			return fmt.Errorf("load full course slots: %w", err)
		}
		data = InitialData{
			Categories: categories,
			Items:      items,
			FullCourse: normalizeAssignments(slots),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}
