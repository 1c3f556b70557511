package hoursRepo

import (
	"context"
	"testing"

	"lapidclinic/models"
)

func TestMemoryRepo_StartsFromClinicDefaults(t *testing.T) {
	repo := NewMemoryHoursRepo()

	hours, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for day := 0; day <= 4; day++ {
		if len(hours[day]) == 0 {
			t.Fatalf("weekday %d should have default slots", day)
		}
	}
	for _, day := range []int{5, 6} {
		if len(hours[day]) != 0 {
			t.Fatalf("weekday %d should be closed by default", day)
		}
	}
}

func TestMemoryRepo_SetGetRoundTrip(t *testing.T) {
	repo := NewMemoryHoursRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, models.DailyHours{2: {"10:00", "10:30"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	hours, _ := repo.Get(ctx)
	if len(hours) != 1 || len(hours[2]) != 2 || hours[2][0] != "10:00" {
		t.Fatalf("unexpected hours after set: %+v", hours)
	}
}

func TestMemoryRepo_GetReturnsCopies(t *testing.T) {
	repo := NewMemoryHoursRepo()
	ctx := context.Background()

	first, _ := repo.Get(ctx)
	first[0][0] = "00:00"

	second, _ := repo.Get(ctx)
	if second[0][0] == "00:00" {
		t.Fatalf("caller mutation leaked into the stored hours")
	}
}
