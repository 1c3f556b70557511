package settingsRepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lapidclinic/models"
)

type memorySettingsRepo struct {
	mu        sync.RWMutex
	templates models.MessageTemplates
	insights  models.NumerologyInsights
	gallery   []models.GalleryItem
}

// NewMemorySettingsRepo returns a SettingsRepository held in memory,
// starting from the stock defaults.
func NewMemorySettingsRepo() SettingsRepository {
	return &memorySettingsRepo{
		templates: models.DefaultMessageTemplates(),
		insights:  models.DefaultNumerologyInsights(),
	}
}

func (r *memorySettingsRepo) GetTemplates(ctx context.Context) (models.MessageTemplates, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templates, nil
}

func (r *memorySettingsRepo) SetTemplates(ctx context.Context, templates models.MessageTemplates) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = templates
	return nil
}

func (r *memorySettingsRepo) GetInsights(ctx context.Context) (models.NumerologyInsights, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insights := models.NumerologyInsights{}
	for year, text := range r.insights {
		insights[year] = text
	}
	return insights, nil
}

func (r *memorySettingsRepo) SetInsights(ctx context.Context, insights models.NumerologyInsights) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insights = models.NumerologyInsights{}
	for year, text := range insights {
		r.insights[year] = text
	}
	return nil
}

func (r *memorySettingsRepo) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.GalleryItem, len(r.gallery))
	copy(items, r.gallery)
	return items, nil
}

func (r *memorySettingsRepo) AddGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.gallery = append(r.gallery, item)
	return item, nil
}

func (r *memorySettingsRepo) DeleteGalleryItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.gallery {
		if item.ID == id {
			r.gallery = append(r.gallery[:i], r.gallery[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
