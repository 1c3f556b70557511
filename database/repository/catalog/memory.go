package catalogRepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"lapidclinic/models"
)

type memoryServiceRepo struct {
	mu       sync.RWMutex
	services map[string]models.Service
}

// NewMemoryServiceRepo returns a ServiceRepository held in memory.
func NewMemoryServiceRepo() ServiceRepository {
	return &memoryServiceRepo{services: make(map[string]models.Service)}
}

func (r *memoryServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (r *memoryServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &svc, nil
}

func (r *memoryServiceRepo) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	r.services[svc.ID] = svc
	return svc, nil
}

func (r *memoryServiceRepo) Update(ctx context.Context, svc models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[svc.ID]; !ok {
		return ErrNotFound
	}
	r.services[svc.ID] = svc
	return nil
}

func (r *memoryServiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *memoryServiceRepo) Seed(ctx context.Context, services []models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.services) > 0 {
		return nil
	}
	for _, svc := range services {
		r.services[svc.ID] = svc
	}
	return nil
}
