package booking

import (
	"context"
	"errors"
	"testing"

	"lapidclinic/models"
)

func TestCreateAppointment_StartsPending(t *testing.T) {
	svc := newTestService(t)

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientEmail: "dana@example.com",
		ClientPhone: "0521112222", Date: "2025-03-10", Time: "10:00",
	})
	if appt.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("new appointment must be pending, got %s", appt.Status)
	}
	if appt.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestCreateAppointment_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateAppointmentRequest
	}{
		{"missing name", CreateAppointmentRequest{ServiceID: "1", ClientPhone: "0521112222", Date: "2025-03-10", Time: "10:00"}},
		{"missing phone", CreateAppointmentRequest{ServiceID: "1", ClientName: "Dana", Date: "2025-03-10", Time: "10:00"}},
		{"missing service", CreateAppointmentRequest{ClientName: "Dana", ClientPhone: "0521112222", Date: "2025-03-10", Time: "10:00"}},
		{"bad date", CreateAppointmentRequest{ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222", Date: "10-03-2025", Time: "10:00"}},
		{"missing time", CreateAppointmentRequest{ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222", Date: "2025-03-10"}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateAppointment(ctx, tc.req); !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestConfirm_IsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	for i := 0; i < 2; i++ {
		if err := svc.ConfirmAppointment(ctx, appt.ID); err != nil {
			t.Fatalf("confirm #%d failed: %v", i+1, err)
		}
	}
	got, err := svc.GetAppointment(ctx, appt.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}
}

func TestConfirm_RestoresCancelled(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	if err := svc.CancelAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := svc.ConfirmAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	got, _ := svc.GetAppointment(ctx, appt.ID)
	if got.Status != models.StatusConfirmed {
		t.Fatalf("restore must return the appointment to confirmed, got %s", got.Status)
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	for i := 0; i < 2; i++ {
		if err := svc.CancelAppointment(ctx, appt.ID); err != nil {
			t.Fatalf("cancel #%d failed: %v", i+1, err)
		}
	}
	got, _ := svc.GetAppointment(ctx, appt.ID)
	if got.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
}

func TestTransitions_PermittedFromEveryStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	starts := []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed, models.StatusCancelled}
	for _, start := range starts {
		for _, step := range []struct {
			name string
			do   func(id string) error
			want models.AppointmentStatus
		}{
			{"confirm", func(id string) error { return svc.ConfirmAppointment(ctx, id) }, models.StatusConfirmed},
			{"cancel", func(id string) error { return svc.CancelAppointment(ctx, id) }, models.StatusCancelled},
		} {
			appt, err := svc.Repo.Create(ctx, models.Appointment{
				Date: "2025-03-10", Time: "10:00", Status: start,
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := step.do(appt.ID); err != nil {
				t.Fatalf("%s from %s: %v", step.name, start, err)
			}
			got, _ := svc.GetAppointment(ctx, appt.ID)
			if got.Status != step.want {
				t.Fatalf("%s from %s: want %s, got %s", step.name, start, step.want, got.Status)
			}
		}

		appt, _ := svc.Repo.Create(ctx, models.Appointment{
			Date: "2025-03-10", Time: "10:00", Status: start,
		})
		if err := svc.DeleteAppointment(ctx, appt.ID); err != nil {
			t.Fatalf("delete from %s: %v", start, err)
		}
	}
}

func TestTransition_UnknownIDIsNotFound(t *testing.T) {
	svc := newTestService(t)

	if err := svc.ConfirmAppointment(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppointment_PartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	newTime := "11:00"
	if err := svc.UpdateAppointment(ctx, appt.ID, models.AppointmentUpdate{Time: &newTime}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := svc.GetAppointment(ctx, appt.ID)
	if got.Time != "11:00" {
		t.Fatalf("time not updated: %s", got.Time)
	}
	if got.ClientName != "Dana" || got.Date != "2025-03-10" {
		t.Fatalf("untouched fields must survive a partial update: %+v", got)
	}
}

func TestDeleteAppointment_RemovesRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	appt := mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	if err := svc.DeleteAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetAppointment(ctx, appt.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListClientAppointments_FiltersByPhone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Dana", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	})
	mustCreate(t, svc, CreateAppointmentRequest{
		ServiceID: "1", ClientName: "Noa", ClientPhone: "0539998888",
		Date: "2025-03-10", Time: "11:00",
	})

	got, err := svc.ListClientAppointments(ctx, "0521112222")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].ClientName != "Dana" {
		t.Fatalf("expected only Dana's appointment, got %+v", got)
	}
}
