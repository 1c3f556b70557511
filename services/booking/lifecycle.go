package booking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	appointmentRepo "lapidclinic/database/repository/appointment"
	"lapidclinic/models"
	"lapidclinic/utils"
)

const snapshotKey = "appointments:snapshot"

// CreateAppointment validates the request and stores a fresh pending
// appointment. The slot is not re-checked against availability here; the
// booking flow queries Availability just before calling this, and the race
// window in between is accepted.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (models.Appointment, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return models.Appointment{}, &ValidationError{Field: "clientName", Message: "required"}
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return models.Appointment{}, &ValidationError{Field: "clientPhone", Message: "required"}
	}
	if req.ServiceID == "" {
		return models.Appointment{}, &ValidationError{Field: "serviceId", Message: "required"}
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return models.Appointment{}, &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return models.Appointment{}, &ValidationError{Field: "time", Message: "must be HH:MM"}
	}

	appt := models.Appointment{
		ServiceID:        req.ServiceID,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ClientPhone:      req.ClientPhone,
		Date:             req.Date,
		Time:             req.Time,
		Status:           models.StatusPending,
		SpiritualInsight: req.SpiritualInsight,
		CreatedAt:        time.Now(),
	}

	created, err := s.Repo.Create(ctx, appt)
	if err != nil {
		return models.Appointment{}, &StoreError{Op: "create appointment", Err: err}
	}
	return created, nil
}

// GetAppointment returns an appointment by id.
func (s *DefaultBookingService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "get appointment", Err: err}
	}
	return appt, nil
}

// ListAppointments returns every appointment, date descending. On a store
// failure it falls back to the last cached snapshot when one exists.
func (s *DefaultBookingService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Repo.GetAll(ctx)
	if err != nil {
		if cached, ok := s.cachedSnapshot(ctx); ok {
			utils.GetLogger().Warn("appointment store unreachable, serving cached snapshot", zap.Error(err))
			return cached, nil
		}
		return nil, &StoreError{Op: "list appointments", Err: err}
	}
	s.storeSnapshot(ctx, appts)
	return appts, nil
}

// ListClientAppointments returns one client's appointments, newest first.
func (s *DefaultBookingService) ListClientAppointments(ctx context.Context, phone string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByClientPhone(ctx, phone)
	if err != nil {
		return nil, &StoreError{Op: "list client appointments", Err: err}
	}
	return appts, nil
}

// ConfirmAppointment sets status to confirmed regardless of the current
// status. Confirming twice is a no-op; confirming a cancelled appointment
// restores it.
func (s *DefaultBookingService) ConfirmAppointment(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.StatusConfirmed)
}

// CancelAppointment sets status to cancelled regardless of the current
// status. The slot is re-offered by Availability immediately.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.StatusCancelled)
}

func (s *DefaultBookingService) setStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	err := s.Repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &StoreError{Op: "update status", Err: err}
	}
	return nil
}

// UpdateAppointment overwrites only the provided fields.
func (s *DefaultBookingService) UpdateAppointment(ctx context.Context, id string, upd models.AppointmentUpdate) error {
	if upd.Status != nil && !upd.Status.IsValid() {
		return &ValidationError{Field: "status", Message: "unknown status"}
	}
	if upd.Date != nil {
		if _, err := time.Parse(dateLayout, *upd.Date); err != nil {
			return &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
		}
	}
	if upd.Time != nil {
		if _, err := time.Parse("15:04", *upd.Time); err != nil {
			return &ValidationError{Field: "time", Message: "must be HH:MM"}
		}
	}

	err := s.Repo.Update(ctx, id, upd)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &StoreError{Op: "update appointment", Err: err}
	}
	return nil
}

// DeleteAppointment removes the record permanently. There is no soft delete
// and no recovery.
func (s *DefaultBookingService) DeleteAppointment(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &StoreError{Op: "delete appointment", Err: err}
	}
	return nil
}

func (s *DefaultBookingService) storeSnapshot(ctx context.Context, appts []models.Appointment) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(appts)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, snapshotKey, data, 24*time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache appointment snapshot", zap.Error(err))
	}
}

func (s *DefaultBookingService) cachedSnapshot(ctx context.Context) ([]models.Appointment, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, snapshotKey).Result()
	if err != nil {
		return nil, false
	}
	var appts []models.Appointment
	if err := json.Unmarshal([]byte(data), &appts); err != nil {
		return nil, false
	}
	return appts, true
}
