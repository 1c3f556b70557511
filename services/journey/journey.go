package journey

import (
	"context"
	"strings"

	journeyRepo "lapidclinic/database/repository/journey"
	"lapidclinic/models"
)

// JourneyService manages the per-client journey portal notes. Clients exist
// only implicitly as the set of distinct phone strings; no normalization is
// applied, so differently formatted numbers are different clients.
type JourneyService interface {
	// ListForClient returns a client's notes, newest first.
	ListForClient(ctx context.Context, phone string) ([]models.JourneyNote, error)
	// Add appends a note with a name snapshot taken at write time.
	Add(ctx context.Context, phone, clientName, content string) (models.JourneyNote, error)
}

// DefaultJourneyService is the production implementation.
type DefaultJourneyService struct {
	Repo journeyRepo.JourneyRepository
}

func (s *DefaultJourneyService) ListForClient(ctx context.Context, phone string) ([]models.JourneyNote, error) {
	return s.Repo.ListByPhone(ctx, phone)
}

func (s *DefaultJourneyService) Add(ctx context.Context, phone, clientName, content string) (models.JourneyNote, error) {
	if strings.TrimSpace(phone) == "" {
		return models.JourneyNote{}, &journeyValidationError{field: "clientPhone"}
	}
	if strings.TrimSpace(content) == "" {
		return models.JourneyNote{}, &journeyValidationError{field: "content"}
	}
	return s.Repo.Add(ctx, models.JourneyNote{
		ClientPhone: phone,
		ClientName:  clientName,
		Content:     content,
	})
}

type journeyValidationError struct {
	field string
}

func (e *journeyValidationError) Error() string {
	return "journey note " + e.field + " is required"
}

// IsValidation reports whether err is a journey validation error.
func IsValidation(err error) bool {
	_, ok := err.(*journeyValidationError)
	return ok
}
