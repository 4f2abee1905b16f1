package booking

import (
	"context"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// OptionRepository is the read boundary over the slug-keyed booking option
// map. Option IDs are unique within a single item's list, so lookup is by the
// (slug, option id) pair.
type OptionRepository interface {
	Options(ctx context.Context, slug string) ([]types.BookingOption, error)
	Option(ctx context.Context, slug, optionID string) (*types.BookingOption, error)
	HasBookableServices(ctx context.Context, slug string) (bool, error)
}

// Ensure implementation satisfies the interface
var _ OptionRepository = (*MemoryOptionRepository)(nil)

// MemoryOptionRepository serves booking options from the static map.
type MemoryOptionRepository struct {
	options map[string][]types.BookingOption
}

func NewMemoryOptionRepository(options map[string][]types.BookingOption) *MemoryOptionRepository {
	return &MemoryOptionRepository{options: options}
}

// Options returns the item's option list. Unknown slugs yield an empty list,
// not an error; absence of options is a valid state.
func (r *MemoryOptionRepository) Options(_ context.Context, slug string) ([]types.BookingOption, error) {
	return r.options[slug], nil
}

func (r *MemoryOptionRepository) Option(_ context.Context, slug, optionID string) (*types.BookingOption, error) {
	for i := range r.options[slug] {
		if r.options[slug][i].ID == optionID {
			opt := r.options[slug][i]
			return &opt, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *MemoryOptionRepository) HasBookableServices(_ context.Context, slug string) (bool, error) {
	return len(r.options[slug]) > 0, nil
}
