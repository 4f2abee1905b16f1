// Package gallery serves the photo gallery pages: category/search filtering
// with fixed nine-per-page pagination.
package gallery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Filters are the gallery page query parameters. Category "all" or "" means
// no category filtering.
type Filters struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// DefaultLimit is the gallery grid size.
const DefaultLimit = 9

// Service answers gallery queries over the static image catalog.
type Service interface {
	Fetch(ctx context.Context, filters Filters) (*types.GalleryPage, error)
	Categories(ctx context.Context) []types.GalleryCategory
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	images     []types.GalleryImage
	categories []types.GalleryCategory
	logger     *slog.Logger
}

func NewServiceImpl(images []types.GalleryImage, categories []types.GalleryCategory, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		images:     images,
		categories: categories,
		logger:     logger,
	}
}

// Fetch returns one page of gallery images plus navigation hints.
func (s *ServiceImpl) Fetch(ctx context.Context, filters Filters) (*types.GalleryPage, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := make([]types.GalleryImage, 0, len(s.images))
	search := strings.ToLower(filters.Search)
	for _, img := range s.images {
		if filters.Category != "" && filters.Category != "all" && img.Category != filters.Category {
			continue
		}
		if search != "" && !imageMatches(img, search) {
			continue
		}
		filtered = append(filtered, img)
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start, end = total, total
	} else if end > total {
		end = total
	}

	s.logger.DebugContext(ctx, "Fetched gallery page",
		slog.String("category", filters.Category),
		slog.Int("total", total),
		slog.Int("page", page),
	)

	return &types.GalleryPage{
		Images:     filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// Categories returns the selectable gallery category list.
func (s *ServiceImpl) Categories(_ context.Context) []types.GalleryCategory {
	return s.categories
}

func imageMatches(img types.GalleryImage, search string) bool {
	for _, f := range []string{img.Title, img.Location, img.Description, img.Photographer} {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
