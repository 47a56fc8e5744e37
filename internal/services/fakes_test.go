package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/repos"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeCategoryRepo struct {
	categories  map[uuid.UUID]*types.Category
	order       []uuid.UUID
	imageWrites map[uuid.UUID][]*string
	setImageErr map[uuid.UUID]error
	deleted     []uuid.UUID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:  map[uuid.UUID]*types.Category{},
		imageWrites: map[uuid.UUID][]*string{},
		setImageErr: map[uuid.UUID]error{},
	}
}

func (f *fakeCategoryRepo) addCategory(name string) uuid.UUID {
	id := uuid.New()
	f.categories[id] = &types.Category{ID: id, Name: name}
	f.order = append(f.order, id)
	return id
}

func (f *fakeCategoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*types.Category) ([]*types.Category, error) {
	for _, c := range categories {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		f.categories[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) ([]*types.Category, error) {
	var out []*types.Category
	for _, id := range categoryIDs {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
	var out []*types.Category
	for _, id := range f.order {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Rename(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string) error {
	if c, ok := f.categories[categoryID]; ok {
		c.Name = name
	}
	return nil
}

func (f *fakeCategoryRepo) SetImageURL(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, imageURL *string) error {
	if err := f.setImageErr[categoryID]; err != nil {
		return err
	}
	f.imageWrites[categoryID] = append(f.imageWrites[categoryID], imageURL)
	if c, ok := f.categories[categoryID]; ok {
		c.ImageURL = imageURL
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	delete(f.categories, categoryID)
	f.deleted = append(f.deleted, categoryID)
	return nil
}

func (f *fakeCategoryRepo) lastImageWrite(categoryID uuid.UUID) (*string, bool) {
	writes := f.imageWrites[categoryID]
	if len(writes) == 0 {
		return nil, false
	}
	return writes[len(writes)-1], true
}

type fakeRankingItemRepo struct {
	items     map[uuid.UUID]*types.RankingItem
	order     []uuid.UUID
	upsertErr error
	listErr   map[uuid.UUID]error
	rankErr   map[uuid.UUID]error
	listCalls map[uuid.UUID]int
	upserts   int
}

func newFakeRankingItemRepo() *fakeRankingItemRepo {
	return &fakeRankingItemRepo{
		items:     map[uuid.UUID]*types.RankingItem{},
		listErr:   map[uuid.UUID]error{},
		rankErr:   map[uuid.UUID]error{},
		listCalls: map[uuid.UUID]int{},
	}
}

func (f *fakeRankingItemRepo) addItem(categoryID uuid.UUID, name string, score float64, imageURL *string) uuid.UUID {
	id := uuid.New()
	f.items[id] = &types.RankingItem{ID: id, CategoryID: categoryID, Name: name, Score: score, ImageURL: imageURL}
	f.order = append(f.order, id)
	return id
}

func (f *fakeRankingItemRepo) Upsert(ctx context.Context, tx *gorm.DB, item *types.RankingItem) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	copied := *item
	if _, ok := f.items[item.ID]; !ok {
		f.order = append(f.order, item.ID)
	}
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeRankingItemRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.RankingItem, error) {
	var out []*types.RankingItem
	for _, id := range f.order {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRankingItemRepo) ListByCategoryScoreDesc(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]*types.RankingItem, error) {
	f.listCalls[categoryID]++
	if err := f.listErr[categoryID]; err != nil {
		return nil, err
	}
	var out []*types.RankingItem
	for _, id := range f.order {
		if item, ok := f.items[id]; ok && item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func (f *fakeRankingItemRepo) ListIDsByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, id := range f.order {
		if item, ok := f.items[id]; ok && item.CategoryID == categoryID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeRankingItemRepo) UpdateRanks(ctx context.Context, tx *gorm.DB, assignments []repos.RankAssignment) []repos.RankWriteResult {
	results := make([]repos.RankWriteResult, 0, len(assignments))
	for _, a := range assignments {
		if err := f.rankErr[a.ItemID]; err != nil {
			results = append(results, repos.RankWriteResult{ItemID: a.ItemID, Rank: a.Rank, Err: err})
			continue
		}
		if item, ok := f.items[a.ItemID]; ok {
			item.Rank = a.Rank
		}
		results = append(results, repos.RankWriteResult{ItemID: a.ItemID, Rank: a.Rank})
	}
	return results
}

func (f *fakeRankingItemRepo) DeleteByCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	for id, item := range f.items {
		if item.CategoryID == categoryID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeFullCourseRepo struct {
	slots     map[string]*uuid.UUID
	getErr    error
	upsertErr error
	writes    int
}

func newFakeFullCourseRepo() *fakeFullCourseRepo {
	return &fakeFullCourseRepo{slots: map[string]*uuid.UUID{}}
}

func (f *fakeFullCourseRepo) GetByOwner(ctx context.Context, tx *gorm.DB, ownerKey string) ([]*types.FullCourseSlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*types.FullCourseSlot
	for key, itemID := range f.slots {
		out = append(out, &types.FullCourseSlot{OwnerKey: ownerKey, SlotKey: key, ItemID: itemID})
	}
	return out, nil
}

func (f *fakeFullCourseRepo) UpsertSlot(ctx context.Context, tx *gorm.DB, slot *types.FullCourseSlot) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.writes++
	f.slots[slot.SlotKey] = slot.ItemID
	return nil
}

func (f *fakeFullCourseRepo) UpsertAll(ctx context.Context, tx *gorm.DB, slots []*types.FullCourseSlot) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, slot := range slots {
		f.writes++
		f.slots[slot.SlotKey] = slot.ItemID
	}
	return nil
}

func (f *fakeFullCourseRepo) ClearItemRefs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error {
	for key, itemID := range f.slots {
		if itemID == nil {
			continue
		}
		for _, id := range itemIDs {
			if *itemID == id {
				f.slots[key] = nil
				break
			}
		}
	}
	return nil
}
