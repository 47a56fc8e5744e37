package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateCategory_RequiresName(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	svc := NewCategoryService(nil, testLogger(), categoryRepo, newFakeRankingItemRepo(), newFakeFullCourseRepo())

	_, err := svc.Create(context.Background(), "  ")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(categoryRepo.order) != 0 {
		t.Fatalf("nothing should be created for a blank name")
	}
}

func TestCreateCategory_AssignsID(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	svc := NewCategoryService(nil, testLogger(), categoryRepo, newFakeRankingItemRepo(), newFakeFullCourseRepo())

	category, err := svc.Create(context.Background(), "Ramen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID == uuid.Nil || category.Name != "Ramen" {
		t.Fatalf("unexpected category: %+v", category)
	}
}

func TestDeleteCategory_CascadesToItemsAndSlots(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	itemRepo := newFakeRankingItemRepo()
	fullCourseRepo := newFakeFullCourseRepo()

	doomed := categoryRepo.addCategory("Ramen")
	kept := categoryRepo.addCategory("Sushi")
	doomedItem := itemRepo.addItem(doomed, "tonkotsu", 4.9, nil)
	keptItem := itemRepo.addItem(kept, "toro", 4.8, nil)

	fullCourseRepo.slots["main"] = &doomedItem
	fullCourseRepo.slots["dessert"] = &keptItem

	svc := NewCategoryService(nil, testLogger(), categoryRepo, itemRepo, fullCourseRepo)
	if err := svc.Delete(context.Background(), doomed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := itemRepo.items[doomedItem]; ok {
		t.Fatalf("items of the deleted category must be removed")
	}
	if _, ok := itemRepo.items[keptItem]; !ok {
		t.Fatalf("items of other categories must survive")
	}
	if fullCourseRepo.slots["main"] != nil {
		t.Fatalf("slot pointing at a removed item must be cleared")
	}
	if fullCourseRepo.slots["dessert"] == nil || *fullCourseRepo.slots["dessert"] != keptItem {
		t.Fatalf("unrelated slots must keep their assignment")
	}
	if _, ok := categoryRepo.categories[doomed]; ok {
		t.Fatalf("category row must be removed")
	}
}
