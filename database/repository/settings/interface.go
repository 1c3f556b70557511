package settingsRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"lapidclinic/database"
	"lapidclinic/models"
)

// ErrNotFound is returned when a gallery item id does not exist.
var ErrNotFound = errors.New("gallery item not found")

// SettingsRepository stores the administrator-edited site content: message
// templates, numerology insights and the image gallery. Unwritten templates
// and insights read back as the stock defaults.
type SettingsRepository interface {
	GetTemplates(ctx context.Context) (models.MessageTemplates, error)
	SetTemplates(ctx context.Context, templates models.MessageTemplates) error

	GetInsights(ctx context.Context) (models.NumerologyInsights, error)
	SetInsights(ctx context.Context, insights models.NumerologyInsights) error

	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
	AddGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error
}

type mongoSettingsRepo struct {
	settings *mongo.Collection
	gallery  *mongo.Collection
}

// NewMongoSettingsRepo returns a SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.DB()
	return &mongoSettingsRepo{
		settings: db.Collection("settings"),
		gallery:  db.Collection("gallery"),
	}
}
