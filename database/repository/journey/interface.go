package journeyRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/database"
	"lapidclinic/models"
)

// JourneyRepository stores per-client journey notes. The public contract is
// append-only: notes are never edited or deleted.
type JourneyRepository interface {
	// ListByPhone returns a client's notes, newest first.
	ListByPhone(ctx context.Context, phone string) ([]models.JourneyNote, error)
	Add(ctx context.Context, note models.JourneyNote) (models.JourneyNote, error)
}

type mongoJourneyRepo struct {
	coll *mongo.Collection
}

// NewMongoJourneyRepo returns a JourneyRepository backed by MongoDB.
func NewMongoJourneyRepo() JourneyRepository {
	return &mongoJourneyRepo{
		coll: database.DB().Collection("journey_notes"),
	}
}
