package appointmentRepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"lapidclinic/models"
)

// memoryAppointmentRepo is the in-memory adapter, used in tests and when the
// server runs without a backing store.
type memoryAppointmentRepo struct {
	mu    sync.RWMutex
	appts map[string]models.Appointment
}

// NewMemoryAppointmentRepo returns an AppointmentRepository held in memory.
func NewMemoryAppointmentRepo() AppointmentRepository {
	return &memoryAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (r *memoryAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	r.appts[appt.ID] = appt
	return appt, nil
}

func (r *memoryAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appt, nil
}

func (r *memoryAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appts := make([]models.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		appts = append(appts, a)
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].Date > appts[j].Date })
	return appts, nil
}

func (r *memoryAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appts []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].Time < appts[j].Time })
	return appts, nil
}

func (r *memoryAppointmentRepo) GetByClientPhone(ctx context.Context, phone string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appts []models.Appointment
	for _, a := range r.appts {
		if a.ClientPhone == phone {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].Date > appts[j].Date })
	return appts, nil
}

func (r *memoryAppointmentRepo) Update(ctx context.Context, id string, upd models.AppointmentUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return ErrNotFound
	}
	if upd.ServiceID != nil {
		appt.ServiceID = *upd.ServiceID
	}
	if upd.ClientName != nil {
		appt.ClientName = *upd.ClientName
	}
	if upd.ClientEmail != nil {
		appt.ClientEmail = *upd.ClientEmail
	}
	if upd.ClientPhone != nil {
		appt.ClientPhone = *upd.ClientPhone
	}
	if upd.Date != nil {
		appt.Date = *upd.Date
	}
	if upd.Time != nil {
		appt.Time = *upd.Time
	}
	if upd.Status != nil {
		appt.Status = *upd.Status
	}
	if upd.SpiritualInsight != nil {
		appt.SpiritualInsight = *upd.SpiritualInsight
	}
	r.appts[id] = appt
	return nil
}

func (r *memoryAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return ErrNotFound
	}
	appt.Status = status
	r.appts[id] = appt
	return nil
}

func (r *memoryAppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appts[id]; !ok {
		return ErrNotFound
	}
	delete(r.appts, id)
	return nil
}
