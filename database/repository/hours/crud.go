package hoursRepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapidclinic/models"
)

const hoursDocID = "daily_hours"

// hoursDoc is the stored shape; BSON map keys must be strings, so weekday
// numbers are translated at this boundary.
type hoursDoc struct {
	ID   string              `bson:"id"`
	Days map[string][]string `bson:"days"`
}

// Get returns the configured weekly hours, or the defaults when none have
// been saved yet.
func (r *mongoHoursRepo) Get(ctx context.Context) (models.DailyHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc hoursDoc
	err := r.coll.FindOne(ctx, bson.M{"id": hoursDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultDailyHours(), nil
	}
	if err != nil {
		return nil, err
	}

	hours := models.DailyHours{}
	for key, slots := range doc.Days {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		hours[day] = slots
	}
	return hours, nil
}

// Set replaces the weekly hours document.
func (r *mongoHoursRepo) Set(ctx context.Context, hours models.DailyHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := hoursDoc{ID: hoursDocID, Days: map[string][]string{}}
	for day, slots := range hours {
		doc.Days[strconv.Itoa(day)] = slots
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": hoursDocID}, doc, opts)
	return err
}
