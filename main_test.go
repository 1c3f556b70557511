package main

import (
	"context"
	"testing"

	"lapidclinic/config"
	"lapidclinic/models"
)

func TestBuildRepositories_EmptyDatabaseURLUsesMemoryStore(t *testing.T) {
	prev := config.AppConfig.DatabaseURL
	config.AppConfig.DatabaseURL = ""
	defer func() { config.AppConfig.DatabaseURL = prev }()

	repos := buildRepositories()
	ctx := context.Background()

	// The in-memory adapters must serve a full round trip with no
	// database connection behind them.
	created, err := repos.Appointments.Create(ctx, models.Appointment{
		ClientName: "דנה", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00", Status: models.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repos.Appointments.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientName != "דנה" {
		t.Fatalf("round trip lost data: %+v", got)
	}

	if err := repos.Catalog.Seed(ctx, models.DefaultServices()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	services, err := repos.Catalog.GetAll(ctx)
	if err != nil {
		t.Fatalf("get services: %v", err)
	}
	if len(services) == 0 {
		t.Fatalf("expected the seeded catalog")
	}

	hours, err := repos.Hours.Get(ctx)
	if err != nil {
		t.Fatalf("get hours: %v", err)
	}
	if len(hours[0]) == 0 {
		t.Fatalf("expected default Sunday hours")
	}
}
