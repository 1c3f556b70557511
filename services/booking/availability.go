package booking

import (
	"context"
	"time"

	"lapidclinic/models"
)

const dateLayout = "2006-01-02"

// Availability computes the free slots for a date: the weekday's configured
// pool minus the times of that date's non-cancelled appointments. A pending
// appointment holds its slot until the administrator decides; a cancelled
// one re-offers it immediately. Past dates compute mechanically the same
// way.
func (s *DefaultBookingService) Availability(ctx context.Context, date string) ([]string, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}

	hours, err := s.Hours.Get(ctx)
	if err != nil {
		return nil, &StoreError{Op: "availability", Err: err}
	}
	basePool := hours[int(day.Weekday())]
	if len(basePool) == 0 {
		// Closed day; the caller renders a "closed" state.
		return []string{}, nil
	}

	appts, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, &StoreError{Op: "availability", Err: err}
	}

	booked := make(map[string]bool, len(appts))
	for _, appt := range appts {
		if appt.Status != models.StatusCancelled {
			booked[appt.Time] = true
		}
	}

	free := make([]string, 0, len(basePool))
	for _, slot := range basePool {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

// WorkingHours returns the weekly slot configuration.
func (s *DefaultBookingService) WorkingHours(ctx context.Context) (models.DailyHours, error) {
	hours, err := s.Hours.Get(ctx)
	if err != nil {
		return nil, &StoreError{Op: "working hours", Err: err}
	}
	return hours, nil
}

// SetWorkingHours replaces the weekly slot configuration.
func (s *DefaultBookingService) SetWorkingHours(ctx context.Context, hours models.DailyHours) error {
	for day := range hours {
		if day < 0 || day > 6 {
			return &ValidationError{Field: "hours", Message: "weekday keys must be 0-6"}
		}
	}
	if err := s.Hours.Set(ctx, hours); err != nil {
		return &StoreError{Op: "set working hours", Err: err}
	}
	return nil
}
