package hoursRepo

import (
	"context"
	"sync"

	"lapidclinic/models"
)

type memoryHoursRepo struct {
	mu    sync.RWMutex
	hours models.DailyHours
}

// NewMemoryHoursRepo returns an HoursRepository held in memory, starting
// from the clinic defaults.
func NewMemoryHoursRepo() HoursRepository {
	return &memoryHoursRepo{hours: models.DefaultDailyHours()}
}

func (r *memoryHoursRepo) Get(ctx context.Context) (models.DailyHours, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hours := models.DailyHours{}
	for day, slots := range r.hours {
		copied := make([]string, len(slots))
		copy(copied, slots)
		hours[day] = copied
	}
	return hours, nil
}

func (r *memoryHoursRepo) Set(ctx context.Context, hours models.DailyHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hours = models.DailyHours{}
	for day, slots := range hours {
		copied := make([]string, len(slots))
		copy(copied, slots)
		r.hours[day] = copied
	}
	return nil
}
