package settingsRepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapidclinic/models"
)

const (
	templatesDocID = "message_templates"
	insightsDocID  = "numerology_insights"
)

type templatesDoc struct {
	ID        string                  `bson:"id"`
	Templates models.MessageTemplates `bson:"templates"`
}

type insightsDoc struct {
	ID    string            `bson:"id"`
	Years map[string]string `bson:"years"`
}

// GetTemplates returns the saved templates, or the stock Hebrew defaults
// when none have been saved yet.
func (r *mongoSettingsRepo) GetTemplates(ctx context.Context) (models.MessageTemplates, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc templatesDoc
	err := r.settings.FindOne(ctx, bson.M{"id": templatesDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultMessageTemplates(), nil
	}
	if err != nil {
		return models.MessageTemplates{}, err
	}
	return doc.Templates, nil
}

func (r *mongoSettingsRepo) SetTemplates(ctx context.Context, templates models.MessageTemplates) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := templatesDoc{ID: templatesDocID, Templates: templates}
	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, bson.M{"id": templatesDocID}, doc, opts)
	return err
}

// GetInsights returns the saved personal-year texts, or the defaults.
func (r *mongoSettingsRepo) GetInsights(ctx context.Context) (models.NumerologyInsights, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc insightsDoc
	err := r.settings.FindOne(ctx, bson.M{"id": insightsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultNumerologyInsights(), nil
	}
	if err != nil {
		return nil, err
	}

	insights := models.NumerologyInsights{}
	for key, text := range doc.Years {
		year, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		insights[year] = text
	}
	return insights, nil
}

func (r *mongoSettingsRepo) SetInsights(ctx context.Context, insights models.NumerologyInsights) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := insightsDoc{ID: insightsDocID, Years: map[string]string{}}
	for year, text := range insights {
		doc.Years[strconv.Itoa(year)] = text
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, bson.M{"id": insightsDocID}, doc, opts)
	return err
}

func (r *mongoSettingsRepo) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.gallery.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoSettingsRepo) AddGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, err := r.gallery.InsertOne(ctx, item); err != nil {
		return models.GalleryItem{}, err
	}
	return item, nil
}

func (r *mongoSettingsRepo) DeleteGalleryItem(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.gallery.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
