package appointmentRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/database"
	"lapidclinic/models"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository is the store contract for appointments. Any backing
// store supporting per-entity CRUD plus equality/ordering queries on the
// date field is interchangeable here.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll returns every appointment ordered by date descending.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByDate returns every appointment on the given "YYYY-MM-DD" date,
	// regardless of status.
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// GetByClientPhone returns a client's appointments, newest date first.
	GetByClientPhone(ctx context.Context, phone string) ([]models.Appointment, error)
	// Update overwrites only the fields set in upd.
	Update(ctx context.Context, id string, upd models.AppointmentUpdate) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns an AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
