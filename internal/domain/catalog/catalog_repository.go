package catalog

import (
	"context"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Repository is the read boundary over the static catalog. Implementations
// must hand out data that callers can treat as immutable.
type Repository interface {
	Attractions(ctx context.Context) ([]types.Attraction, error)
	AttractionBySlug(ctx context.Context, slug string) (*types.Attraction, error)
	Dining(ctx context.Context) ([]types.DiningVenue, error)
	DiningBySlug(ctx context.Context, slug string) (*types.DiningVenue, error)
	Events(ctx context.Context) ([]types.Event, error)
	EventBySlug(ctx context.Context, slug string) (*types.Event, error)
}

// Ensure implementation satisfies the interface
var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository serves the catalog from slices loaded at startup.
type MemoryRepository struct {
	attractions []types.Attraction
	dining      []types.DiningVenue
	events      []types.Event
}

// NewMemoryRepository wraps the given catalog slices. The slices are not
// copied; callers must not mutate them afterwards.
func NewMemoryRepository(attractions []types.Attraction, dining []types.DiningVenue, events []types.Event) *MemoryRepository {
	return &MemoryRepository{
		attractions: attractions,
		dining:      dining,
		events:      events,
	}
}

func (r *MemoryRepository) Attractions(_ context.Context) ([]types.Attraction, error) {
	return r.attractions, nil
}

func (r *MemoryRepository) AttractionBySlug(_ context.Context, slug string) (*types.Attraction, error) {
	for i := range r.attractions {
		if r.attractions[i].Slug == slug {
			a := r.attractions[i]
			return &a, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *MemoryRepository) Dining(_ context.Context) ([]types.DiningVenue, error) {
	return r.dining, nil
}

func (r *MemoryRepository) DiningBySlug(_ context.Context, slug string) (*types.DiningVenue, error) {
	for i := range r.dining {
		if r.dining[i].Slug == slug {
			d := r.dining[i]
			return &d, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *MemoryRepository) Events(_ context.Context) ([]types.Event, error) {
	return r.events, nil
}

func (r *MemoryRepository) EventBySlug(_ context.Context, slug string) (*types.Event, error) {
	for i := range r.events {
		if r.events[i].Slug == slug {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, types.ErrNotFound
}
