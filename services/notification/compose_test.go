package notification

import (
	"context"
	"strings"
	"testing"

	catalogRepo "lapidclinic/database/repository/catalog"
	settingsRepo "lapidclinic/database/repository/settings"
	"lapidclinic/models"
)

func newComposeService(t *testing.T) *DefaultNotificationService {
	t.Helper()
	catalog := catalogRepo.NewMemoryServiceRepo()
	if err := catalog.Seed(context.Background(), models.DefaultServices()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return &DefaultNotificationService{
		Settings: settingsRepo.NewMemorySettingsRepo(),
		Catalog:  catalog,
	}
}

func TestCompose_ResolvesServiceName(t *testing.T) {
	svc := newComposeService(t)
	ctx := context.Background()

	appt := models.Appointment{
		ServiceID: "1", ClientName: "דנה", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	}
	msg, err := svc.Compose(ctx, models.TemplateConfirmation, appt)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	catalogSvc, err := svc.Catalog.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get service: %v", err)
	}
	if !strings.Contains(msg.Text, string(catalogSvc.Type)) {
		t.Fatalf("service name not resolved into the text: %q", msg.Text)
	}
	if msg.Destination != "0521112222" {
		t.Fatalf("destination must be the client phone, got %q", msg.Destination)
	}
	if !strings.HasPrefix(msg.WhatsAppLink, "https://wa.me/972521112222?text=") {
		t.Fatalf("unexpected link: %q", msg.WhatsAppLink)
	}
}

func TestCompose_DanglingServiceUsesFallbackName(t *testing.T) {
	svc := newComposeService(t)

	appt := models.Appointment{
		ServiceID: "gone", ClientName: "דנה", ClientPhone: "0521112222",
		Date: "2025-03-10", Time: "10:00",
	}
	msg, err := svc.Compose(context.Background(), models.TemplateConfirmation, appt)
	if err != nil {
		t.Fatalf("compose must tolerate a dangling service id: %v", err)
	}
	if !strings.Contains(msg.Text, fallbackServiceName) {
		t.Fatalf("expected fallback service name in %q", msg.Text)
	}
}

func TestSetTemplates_RoundTrip(t *testing.T) {
	svc := newComposeService(t)
	ctx := context.Background()

	custom := models.MessageTemplates{Confirmation: "שלום {clientName}"}
	if err := svc.SetTemplates(ctx, custom); err != nil {
		t.Fatalf("set templates: %v", err)
	}
	got, err := svc.Templates(ctx)
	if err != nil {
		t.Fatalf("get templates: %v", err)
	}
	if got.Confirmation != "שלום {clientName}" {
		t.Fatalf("templates not persisted: %+v", got)
	}
}
