package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// SubmitParams is the input to a review submission.
type SubmitParams struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Service lists and accepts attraction reviews.
type Service interface {
	ListReviews(ctx context.Context, slug string) ([]types.Review, error)
	SubmitReview(ctx context.Context, slug string, params SubmitParams) (*types.Review, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewServiceImpl(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// ListReviews returns the reviews for an attraction, newest first.
func (s *ServiceImpl) ListReviews(ctx context.Context, slug string) ([]types.Review, error) {
	l := s.logger.With(slog.String("method", "ListReviews"), slog.String("slug", slug))

	reviews, err := s.repo.ListByAttraction(ctx, slug)
	if err != nil {
		l.WarnContext(ctx, "Failed to list reviews", slog.Any("error", err))
		return nil, fmt.Errorf("error listing reviews for %q: %w", slug, err)
	}

	l.DebugContext(ctx, "Listed reviews", slog.Int("count", len(reviews)))
	return reviews, nil
}

// SubmitReview validates and stores a new review. Submitted reviews are never
// marked verified.
func (s *ServiceImpl) SubmitReview(ctx context.Context, slug string, params SubmitParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "SubmitReview")
	defer span.End()

	l := s.logger.With(slog.String("method", "SubmitReview"), slog.String("slug", slug))

	if err := validateParams(params); err != nil {
		l.InfoContext(ctx, "Review rejected", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid review")
		return nil, err
	}

	review := types.Review{
		ID:      uuid.NewString(),
		Author:  strings.TrimSpace(params.Author),
		Date:    s.now().Format("January 2, 2006"),
		Rating:  params.Rating,
		Comment: strings.TrimSpace(params.Comment),
	}

	if err := s.repo.Append(ctx, slug, review); err != nil {
		l.ErrorContext(ctx, "Failed to store review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store review")
		return nil, fmt.Errorf("error storing review for %q: %w", slug, err)
	}

	l.InfoContext(ctx, "Review submitted", slog.Int("rating", review.Rating))
	span.SetStatus(codes.Ok, "review submitted")
	return &review, nil
}

func validateParams(params SubmitParams) error {
	if strings.TrimSpace(params.Author) == "" {
		return fmt.Errorf("%w: author is required", types.ErrBadRequest)
	}
	if params.Rating < 1 || params.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", types.ErrBadRequest)
	}
	if strings.TrimSpace(params.Comment) == "" {
		return fmt.Errorf("%w: comment is required", types.ErrBadRequest)
	}
	return nil
}
