package journeyRepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lapidclinic/models"
)

type memoryJourneyRepo struct {
	mu    sync.RWMutex
	notes []models.JourneyNote
}

// NewMemoryJourneyRepo returns a JourneyRepository held in memory.
func NewMemoryJourneyRepo() JourneyRepository {
	return &memoryJourneyRepo{}
}

func (r *memoryJourneyRepo) ListByPhone(ctx context.Context, phone string) ([]models.JourneyNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notes []models.JourneyNote
	// Entries are appended in arrival order; walk backwards for newest first.
	for i := len(r.notes) - 1; i >= 0; i-- {
		if r.notes[i].ClientPhone == phone {
			notes = append(notes, r.notes[i])
		}
	}
	return notes, nil
}

func (r *memoryJourneyRepo) Add(ctx context.Context, note models.JourneyNote) (models.JourneyNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	r.notes = append(r.notes, note)
	return note, nil
}
