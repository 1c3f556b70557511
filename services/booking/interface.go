package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "lapidclinic/database/repository/appointment"
	hoursRepo "lapidclinic/database/repository/hours"
	"lapidclinic/models"
)

// CreateAppointmentRequest carries the booking flow's input. Every new
// appointment starts pending; status is not a caller choice.
type CreateAppointmentRequest struct {
	ServiceID        string `json:"serviceId"`
	ClientName       string `json:"clientName"`
	ClientEmail      string `json:"clientEmail"`
	ClientPhone      string `json:"clientPhone"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	SpiritualInsight string `json:"spiritualInsight"`
}

// BookingService is the scheduling and appointment-lifecycle contract.
//
// There is no locking or transaction around the availability-then-create
// pattern: two near-simultaneous requests for the same slot can both
// succeed. The design assumes a single administrator reviewing pending
// requests; slot uniqueness, if wanted, belongs to the backing store.
type BookingService interface {
	// Availability returns the free "HH:MM" slots for a "YYYY-MM-DD"
	// date, preserving the weekday pool's order. A day with no
	// configured hours yields an empty list, not an error.
	Availability(ctx context.Context, date string) ([]string, error)

	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListClientAppointments(ctx context.Context, phone string) ([]models.Appointment, error)

	// ConfirmAppointment and CancelAppointment are idempotent and
	// permitted from any status; confirming a cancelled appointment is
	// the "restore" path.
	ConfirmAppointment(ctx context.Context, id string) error
	CancelAppointment(ctx context.Context, id string) error

	// UpdateAppointment overwrites only the provided fields. No check
	// that a changed date/time remains within availability.
	UpdateAppointment(ctx context.Context, id string, upd models.AppointmentUpdate) error

	// DeleteAppointment removes the record permanently.
	DeleteAppointment(ctx context.Context, id string) error

	WorkingHours(ctx context.Context) (models.DailyHours, error)
	SetWorkingHours(ctx context.Context, hours models.DailyHours) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo  appointmentRepo.AppointmentRepository
	Hours hoursRepo.HoursRepository
	// Cache, when non-nil, holds the last good appointment snapshot so
	// reads can degrade when the store is unreachable.
	Cache *redis.Client
}
