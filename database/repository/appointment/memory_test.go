package appointmentRepo

import (
	"context"
	"errors"
	"testing"

	"lapidclinic/models"
)

func TestMemoryRepo_GetAllDateDescending(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	for _, date := range []string{"2025-03-10", "2025-03-12", "2025-03-11"} {
		if _, err := repo.Create(ctx, models.Appointment{Date: date, Time: "10:00"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	appts, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []string{"2025-03-12", "2025-03-11", "2025-03-10"}
	for i, w := range want {
		if appts[i].Date != w {
			t.Fatalf("position %d: want %s, got %s", i, w, appts[i].Date)
		}
	}
}

func TestMemoryRepo_GetByDateTimeAscending(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	for _, tm := range []string{"14:00", "09:00", "11:00"} {
		repo.Create(ctx, models.Appointment{Date: "2025-03-10", Time: tm})
	}
	repo.Create(ctx, models.Appointment{Date: "2025-03-11", Time: "08:00"})

	appts, err := repo.GetByDate(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if len(appts) != 3 {
		t.Fatalf("want 3 appointments, got %d", len(appts))
	}
	want := []string{"09:00", "11:00", "14:00"}
	for i, w := range want {
		if appts[i].Time != w {
			t.Fatalf("position %d: want %s, got %s", i, w, appts[i].Time)
		}
	}
}

func TestMemoryRepo_UpdateTouchesOnlySetFields(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Appointment{
		ClientName: "דנה", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00", Status: models.StatusPending,
	})

	newDate := "2025-03-12"
	if err := repo.Update(ctx, created.ID, models.AppointmentUpdate{Date: &newDate}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Date != "2025-03-12" {
		t.Fatalf("date not updated: %s", got.Date)
	}
	if got.ClientName != "דנה" || got.Time != "10:00" || got.Status != models.StatusPending {
		t.Fatalf("unset fields must be untouched: %+v", got)
	}
}

func TestMemoryRepo_MissingIDIsErrNotFound(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, "missing", models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update status: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}
