package hoursRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/database"
	"lapidclinic/models"
)

// HoursRepository stores the per-weekday working hours. A store that has
// never been written returns the clinic defaults.
type HoursRepository interface {
	Get(ctx context.Context) (models.DailyHours, error)
	Set(ctx context.Context, hours models.DailyHours) error
}

type mongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo returns an HoursRepository backed by MongoDB.
func NewMongoHoursRepo() HoursRepository {
	return &mongoHoursRepo{
		coll: database.DB().Collection("working_hours"),
	}
}
