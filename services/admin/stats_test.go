package admin

import (
	"context"
	"testing"

	appointmentRepo "lapidclinic/database/repository/appointment"
	catalogRepo "lapidclinic/database/repository/catalog"
	"lapidclinic/models"
)

func seedStats(t *testing.T) *DefaultStatsService {
	t.Helper()
	ctx := context.Background()

	catalog := catalogRepo.NewMemoryServiceRepo()
	if err := catalog.Seed(ctx, models.DefaultServices()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	appts := appointmentRepo.NewMemoryAppointmentRepo()
	return &DefaultStatsService{Appointments: appts, Catalog: catalog}
}

func addAppt(t *testing.T, svc *DefaultStatsService, a models.Appointment) {
	t.Helper()
	if _, err := svc.Appointments.Create(context.Background(), a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
}

func TestClinicStats_RevenueCountsConfirmedOnly(t *testing.T) {
	svc := seedStats(t)
	ctx := context.Background()

	services, _ := svc.Catalog.GetAll(ctx)
	price := map[string]int{}
	for _, s := range services {
		price[s.ID] = s.Price
	}

	addAppt(t, svc, models.Appointment{ServiceID: "1", ClientEmail: "a@x", Date: "2030-01-01", Status: models.StatusConfirmed})
	addAppt(t, svc, models.Appointment{ServiceID: "2", ClientEmail: "b@x", Date: "2030-01-02", Status: models.StatusConfirmed})
	addAppt(t, svc, models.Appointment{ServiceID: "1", ClientEmail: "c@x", Date: "2030-01-03", Status: models.StatusPending})
	addAppt(t, svc, models.Appointment{ServiceID: "2", ClientEmail: "d@x", Date: "2030-01-04", Status: models.StatusCancelled})

	stats, err := svc.ClinicStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if want := price["1"] + price["2"]; stats.TotalRevenue != want {
		t.Fatalf("revenue: want %d, got %d", want, stats.TotalRevenue)
	}
	if stats.UpcomingAppointments != 2 {
		t.Fatalf("upcoming: want 2, got %d", stats.UpcomingAppointments)
	}
	if stats.ActiveClients != 2 {
		t.Fatalf("active clients: want 2, got %d", stats.ActiveClients)
	}
}

func TestClinicStats_TopServiceByConfirmedCount(t *testing.T) {
	svc := seedStats(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		addAppt(t, svc, models.Appointment{ServiceID: "2", ClientEmail: "a@x", Date: "2030-01-01", Status: models.StatusConfirmed})
	}
	addAppt(t, svc, models.Appointment{ServiceID: "1", ClientEmail: "a@x", Date: "2030-01-01", Status: models.StatusConfirmed})

	stats, err := svc.ClinicStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	byID := map[string]models.Service{}
	services, _ := svc.Catalog.GetAll(ctx)
	for _, s := range services {
		byID[s.ID] = s
	}
	if stats.TopService != string(byID["2"].Type) {
		t.Fatalf("top service: want %q, got %q", byID["2"].Type, stats.TopService)
	}
}

func TestClinicStats_EmptyClinicDefaults(t *testing.T) {
	svc := seedStats(t)

	stats, err := svc.ClinicStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalRevenue != 0 || stats.UpcomingAppointments != 0 || stats.ActiveClients != 0 {
		t.Fatalf("expected zeroed counters: %+v", stats)
	}
	if stats.TopService == "" {
		t.Fatalf("top service must fall back to a display default")
	}
	if stats.MonthlyGrowth != 12.5 {
		t.Fatalf("growth display value changed: %v", stats.MonthlyGrowth)
	}
}
