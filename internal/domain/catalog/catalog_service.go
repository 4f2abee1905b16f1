package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Query carries the list-page filter parameters. Empty slices and strings mean
// "no filtering on that dimension". Page and PageSize must already be
// sanitized by the caller boundary; the service applies them as given.
type Query struct {
	Search     string
	Categories []string
	Locations  []string
	// Month filters events by calendar month ("1".."12"). "" or "all"
	// disables it. Ignored for attractions and dining.
	Month    string
	Page     int
	PageSize int
}

// Service is the catalog query contract used by the list and detail pages.
type Service interface {
	FilterAttractions(ctx context.Context, q Query) (*types.Page[types.Attraction], error)
	FilterDining(ctx context.Context, q Query) (*types.Page[types.DiningVenue], error)
	FilterEvents(ctx context.Context, q Query) (*types.Page[types.Event], error)

	GetAttractionBySlug(ctx context.Context, slug string) (*types.Attraction, error)
	GetDiningBySlug(ctx context.Context, slug string) (*types.DiningVenue, error)
	GetEventBySlug(ctx context.Context, slug string) (*types.Event, error)

	FeaturedAttractions(ctx context.Context) ([]types.Attraction, error)
	UpcomingEvents(ctx context.Context, now time.Time, limit int) ([]types.Event, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	repo   Repository
	logger *slog.Logger
	cache  *gocache.Cache
}

// NewServiceImpl builds the catalog service. Filtered pages are cached for
// five minutes per normalized query key.
func NewServiceImpl(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		logger: logger,
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// FilterAttractions returns one page of attractions matching the query.
func (s *ServiceImpl) FilterAttractions(ctx context.Context, q Query) (*types.Page[types.Attraction], error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "FilterAttractions")
	defer span.End()

	key := q.cacheKey("attractions")
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*types.Page[types.Attraction]), nil
	}

	l := s.logger.With(slog.String("method", "FilterAttractions"))
	all, err := s.repo.Attractions(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load attractions", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load attractions")
		return nil, fmt.Errorf("error loading attractions: %w", err)
	}

	filtered := filter(all, func(a types.Attraction) bool {
		return matchesSearch(q.Search, a.Name, a.Description, a.Location) &&
			matchesAny(q.Categories, a.Category) &&
			matchesAny(q.Locations, a.Location)
	})
	page := paginate(filtered, q.Page, q.PageSize)

	s.cache.Set(key, page, gocache.DefaultExpiration)
	l.InfoContext(ctx, "Filtered attractions",
		slog.Int("total", page.Total),
		slog.Int("page_items", len(page.Items)),
	)
	return page, nil
}

// FilterDining returns one page of dining venues matching the query.
func (s *ServiceImpl) FilterDining(ctx context.Context, q Query) (*types.Page[types.DiningVenue], error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "FilterDining")
	defer span.End()

	key := q.cacheKey("dining")
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*types.Page[types.DiningVenue]), nil
	}

	l := s.logger.With(slog.String("method", "FilterDining"))
	all, err := s.repo.Dining(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load dining venues", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load dining venues")
		return nil, fmt.Errorf("error loading dining venues: %w", err)
	}

	filtered := filter(all, func(d types.DiningVenue) bool {
		return matchesSearch(q.Search, d.Name, d.Description, d.Location) &&
			matchesAny(q.Categories, d.Category) &&
			matchesAny(q.Locations, d.Location)
	})
	page := paginate(filtered, q.Page, q.PageSize)

	s.cache.Set(key, page, gocache.DefaultExpiration)
	l.InfoContext(ctx, "Filtered dining venues",
		slog.Int("total", page.Total),
		slog.Int("page_items", len(page.Items)),
	)
	return page, nil
}

// FilterEvents returns one page of events matching the query, including the
// month filter.
func (s *ServiceImpl) FilterEvents(ctx context.Context, q Query) (*types.Page[types.Event], error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "FilterEvents")
	defer span.End()

	key := q.cacheKey("events")
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*types.Page[types.Event]), nil
	}

	l := s.logger.With(slog.String("method", "FilterEvents"))
	all, err := s.repo.Events(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load events", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load events")
		return nil, fmt.Errorf("error loading events: %w", err)
	}

	filtered := filter(all, func(e types.Event) bool {
		return matchesSearch(q.Search, e.Name, e.Description, e.Location) &&
			matchesAny(q.Categories, e.Category) &&
			matchesAny(q.Locations, e.Location) &&
			matchesMonth(q.Month, e.Date)
	})
	page := paginate(filtered, q.Page, q.PageSize)

	s.cache.Set(key, page, gocache.DefaultExpiration)
	l.InfoContext(ctx, "Filtered events",
		slog.Int("total", page.Total),
		slog.Int("page_items", len(page.Items)),
	)
	return page, nil
}

func (s *ServiceImpl) GetAttractionBySlug(ctx context.Context, slug string) (*types.Attraction, error) {
	a, err := s.repo.AttractionBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("error fetching attraction %q: %w", slug, err)
	}
	return a, nil
}

func (s *ServiceImpl) GetDiningBySlug(ctx context.Context, slug string) (*types.DiningVenue, error) {
	d, err := s.repo.DiningBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("error fetching dining venue %q: %w", slug, err)
	}
	return d, nil
}

func (s *ServiceImpl) GetEventBySlug(ctx context.Context, slug string) (*types.Event, error) {
	e, err := s.repo.EventBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("error fetching event %q: %w", slug, err)
	}
	return e, nil
}

// FeaturedAttractions returns the attractions flagged for the home page.
func (s *ServiceImpl) FeaturedAttractions(ctx context.Context) ([]types.Attraction, error) {
	all, err := s.repo.Attractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading attractions: %w", err)
	}
	return filter(all, func(a types.Attraction) bool { return a.Featured }), nil
}

// UpcomingEvents returns up to limit events dated on or after now, in catalog
// order. Events with unparsable dates are skipped.
func (s *ServiceImpl) UpcomingEvents(ctx context.Context, now time.Time, limit int) ([]types.Event, error) {
	all, err := s.repo.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading events: %w", err)
	}
	today := now.Truncate(24 * time.Hour)
	upcoming := filter(all, func(e types.Event) bool {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return false
		}
		return !d.Before(today)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// filter returns a new slice with the elements of items that satisfy keep,
// preserving order. The source slice is never modified.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// paginate slices one page out of the filtered collection. Total always
// reflects the full filtered count; a page past the end yields an empty slice.
func paginate[T any](filtered []T, page, pageSize int) *types.Page[T] {
	total := len(filtered)
	start := (page - 1) * pageSize
	end := page * pageSize
	if start < 0 || start > total {
		return &types.Page[T]{Items: []T{}, Total: total}
	}
	if end > total {
		end = total
	}
	return &types.Page[T]{Items: filtered[start:end], Total: total}
}

// matchesSearch reports whether the term is a case-insensitive substring of
// any of the given fields. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesAny reports whether value is in the selected set. An empty set
// disables filtering on that dimension.
func matchesAny(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// matchesMonth compares an event's calendar month (1-12) with the filter
// value. "" and "all" match everything; an unparsable date never matches.
func matchesMonth(month, date string) bool {
	if month == "" || month == "all" {
		return true
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return strconv.Itoa(int(d.Month())) == month
}

func (q Query) cacheKey(kind string) string {
	return strings.Join([]string{
		kind,
		q.Search,
		strings.Join(q.Categories, ","),
		strings.Join(q.Locations, ","),
		q.Month,
		strconv.Itoa(q.Page),
		strconv.Itoa(q.PageSize),
	}, "|")
}
