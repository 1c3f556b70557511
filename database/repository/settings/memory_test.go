package settingsRepo

import (
	"context"
	"errors"
	"testing"

	"lapidclinic/models"
)

func TestMemoryRepo_DefaultInsightsCoverAllYears(t *testing.T) {
	repo := NewMemorySettingsRepo()

	insights, err := repo.GetInsights(context.Background())
	if err != nil {
		t.Fatalf("get insights: %v", err)
	}
	for year := 1; year <= 9; year++ {
		if insights[year] == "" {
			t.Fatalf("missing default insight for personal year %d", year)
		}
	}
}

func TestMemoryRepo_SetInsightsReplacesWholeSet(t *testing.T) {
	repo := NewMemorySettingsRepo()
	ctx := context.Background()

	custom := models.NumerologyInsights{1: "שנת התחלות"}
	if err := repo.SetInsights(ctx, custom); err != nil {
		t.Fatalf("set insights: %v", err)
	}

	got, _ := repo.GetInsights(ctx)
	if got[1] != "שנת התחלות" {
		t.Fatalf("insight not stored: %+v", got)
	}
	if len(got) != 1 {
		t.Fatalf("set must replace, not merge: %+v", got)
	}
}

func TestMemoryRepo_GalleryLifecycle(t *testing.T) {
	repo := NewMemorySettingsRepo()
	ctx := context.Background()

	item, err := repo.AddGalleryItem(ctx, models.GalleryItem{URL: "https://example.com/a.jpg"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}

	items, _ := repo.ListGallery(ctx)
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}

	if err := repo.DeleteGalleryItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteGalleryItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
