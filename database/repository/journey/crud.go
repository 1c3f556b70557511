package journeyRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapidclinic/models"
)

// ListByPhone returns a client's notes, newest first. The phone key is
// matched by exact string equality, with no format normalization.
func (r *mongoJourneyRepo) ListByPhone(ctx context.Context, phone string) ([]models.JourneyNote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"client_phone": phone}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.JourneyNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Add appends a new note and returns it with its assigned id.
func (r *mongoJourneyRepo) Add(ctx context.Context, note models.JourneyNote) (models.JourneyNote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return models.JourneyNote{}, err
	}
	return note, nil
}
