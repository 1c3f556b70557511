package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/models"
)

// Create inserts a new appointment and returns it with its assigned id.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

// GetByID returns an appointment by its id.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// Update applies the non-nil fields of upd to the stored document. Field
// names are translated once, here, at the store boundary.
func (r *mongoAppointmentRepo) Update(ctx context.Context, id string, upd models.AppointmentUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{}
	if upd.ServiceID != nil {
		set["service_id"] = *upd.ServiceID
	}
	if upd.ClientName != nil {
		set["client_name"] = *upd.ClientName
	}
	if upd.ClientEmail != nil {
		set["client_email"] = *upd.ClientEmail
	}
	if upd.ClientPhone != nil {
		set["client_phone"] = *upd.ClientPhone
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Time != nil {
		set["time"] = *upd.Time
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.SpiritualInsight != nil {
		set["spiritual_insight"] = *upd.SpiritualInsight
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets the status field unconditionally.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment permanently.
func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
