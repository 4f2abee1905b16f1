package review

import (
	"context"
	"sync"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Repository stores attraction reviews. The in-memory implementation is the
// one mutable store in the process; a durable backend can replace it without
// touching call sites.
type Repository interface {
	ListByAttraction(ctx context.Context, slug string) ([]types.Review, error)
	Append(ctx context.Context, slug string, review types.Review) error
}

// Ensure implementation satisfies the interface
var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps reviews per attraction slug, seeded from the static
// catalog. New reviews are prepended so the most recent shows first.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews map[string][]types.Review
}

func NewMemoryRepository(attractions []types.Attraction) *MemoryRepository {
	reviews := make(map[string][]types.Review, len(attractions))
	for _, a := range attractions {
		seeded := make([]types.Review, len(a.Reviews))
		copy(seeded, a.Reviews)
		reviews[a.Slug] = seeded
	}
	return &MemoryRepository{reviews: reviews}
}

func (r *MemoryRepository) ListByAttraction(_ context.Context, slug string) ([]types.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.reviews[slug]
	if !ok {
		return nil, types.ErrNotFound
	}
	out := make([]types.Review, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *MemoryRepository) Append(_ context.Context, slug string, review types.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.reviews[slug]
	if !ok {
		return types.ErrNotFound
	}
	r.reviews[slug] = append([]types.Review{review}, stored...)
	return nil
}
