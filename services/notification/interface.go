package notification

import (
	"context"
	"errors"

	catalogRepo "lapidclinic/database/repository/catalog"
	settingsRepo "lapidclinic/database/repository/settings"
	"lapidclinic/models"
)

// fallbackServiceName is used when an appointment's ServiceID no longer
// resolves (service deletion leaves dangling references by design).
const fallbackServiceName = "מפגש"

// ComposedMessage is a ready-to-send notification: the text and the wa.me
// link that composes it. Delivery itself is out-of-band.
type ComposedMessage struct {
	Destination  string `json:"destination"`
	Text         string `json:"text"`
	WhatsAppLink string `json:"whatsappLink"`
}

// NotificationService renders notification texts from the stored templates.
type NotificationService interface {
	Compose(ctx context.Context, kind models.TemplateKind, appt models.Appointment) (ComposedMessage, error)
	Templates(ctx context.Context) (models.MessageTemplates, error)
	SetTemplates(ctx context.Context, templates models.MessageTemplates) error
}

// DefaultNotificationService resolves templates and service names from
// their repositories and delegates the rendering to FormatMessage.
type DefaultNotificationService struct {
	Settings settingsRepo.SettingsRepository
	Catalog  catalogRepo.ServiceRepository
}

// Compose renders the named template for the appointment.
func (s *DefaultNotificationService) Compose(ctx context.Context, kind models.TemplateKind, appt models.Appointment) (ComposedMessage, error) {
	templates, err := s.Settings.GetTemplates(ctx)
	if err != nil {
		return ComposedMessage{}, err
	}

	serviceName := fallbackServiceName
	svc, err := s.Catalog.GetByID(ctx, appt.ServiceID)
	if err != nil && !errors.Is(err, catalogRepo.ErrNotFound) {
		return ComposedMessage{}, err
	}
	if svc != nil {
		serviceName = string(svc.Type)
	}

	text := FormatMessage(templates.Get(kind), appt, serviceName)
	return ComposedMessage{
		Destination:  appt.ClientPhone,
		Text:         text,
		WhatsAppLink: WhatsAppLink(appt.ClientPhone, text),
	}, nil
}

// Templates returns the stored message templates.
func (s *DefaultNotificationService) Templates(ctx context.Context) (models.MessageTemplates, error) {
	return s.Settings.GetTemplates(ctx)
}

// SetTemplates replaces the stored message templates.
func (s *DefaultNotificationService) SetTemplates(ctx context.Context, templates models.MessageTemplates) error {
	return s.Settings.SetTemplates(ctx, templates)
}
