package catalogRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/database"
	"lapidclinic/models"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository is the store contract for the service catalog.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, svc models.Service) (models.Service, error)
	Update(ctx context.Context, svc models.Service) error
	// Delete removes a service. Appointments referencing it keep their
	// ServiceID; dangling references are permitted.
	Delete(ctx context.Context, id string) error
	// Seed inserts the given services only if the catalog is empty.
	Seed(ctx context.Context, services []models.Service) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
