package admin

import (
	"context"
	"time"

	appointmentRepo "lapidclinic/database/repository/appointment"
	catalogRepo "lapidclinic/database/repository/catalog"
	"lapidclinic/models"
)

// StatsService aggregates the dashboard numbers.
type StatsService interface {
	ClinicStats(ctx context.Context) (models.ClinicStats, error)
}

// DefaultStatsService computes stats over the full appointment list; the
// clinic's volume makes an aggregation pipeline unnecessary.
type DefaultStatsService struct {
	Appointments appointmentRepo.AppointmentRepository
	Catalog      catalogRepo.ServiceRepository
}

// ClinicStats derives revenue, upcoming load and client reach from the
// confirmed appointments. Growth is a fixed display value carried over from
// the dashboard design.
func (s *DefaultStatsService) ClinicStats(ctx context.Context) (models.ClinicStats, error) {
	appts, err := s.Appointments.GetAll(ctx)
	if err != nil {
		return models.ClinicStats{}, err
	}
	services, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return models.ClinicStats{}, err
	}

	priceByID := make(map[string]int, len(services))
	typeByID := make(map[string]models.ServiceType, len(services))
	for _, svc := range services {
		priceByID[svc.ID] = svc.Price
		typeByID[svc.ID] = svc.Type
	}

	today := time.Now().Format("2006-01-02")
	var revenue, upcoming int
	clients := map[string]bool{}
	countByService := map[string]int{}

	for _, appt := range appts {
		if appt.Status != models.StatusConfirmed {
			continue
		}
		revenue += priceByID[appt.ServiceID]
		if appt.Date >= today {
			upcoming++
		}
		clients[appt.ClientEmail] = true
		countByService[appt.ServiceID]++
	}

	topServiceID := "1"
	for id, count := range countByService {
		if count > countByService[topServiceID] {
			topServiceID = id
		}
	}
	topService := "כללי"
	if t, ok := typeByID[topServiceID]; ok {
		topService = string(t)
	}

	return models.ClinicStats{
		TotalRevenue:         revenue,
		UpcomingAppointments: upcoming,
		ActiveClients:        len(clients),
		TopService:           topService,
		MonthlyGrowth:        12.5,
	}, nil
}
