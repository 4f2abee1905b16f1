package review

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// MockReviewRepo is a mock implementation of Repository
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) ListByAttraction(ctx context.Context, slug string) ([]types.Review, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Review), args.Error(1)
}

func (m *MockReviewRepo) Append(ctx context.Context, slug string, review types.Review) error {
	args := m.Called(ctx, slug, review)
	return args.Error(0)
}

func newTestService(repo Repository) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	service := NewServiceImpl(repo, logger)
	service.now = func() time.Time { return time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC) }
	return service
}

func TestListReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("known attraction", func(t *testing.T) {
		mockRepo := new(MockReviewRepo)
		mockRepo.On("ListByAttraction", mock.Anything, "lake-kivu").Return([]types.Review{
			{ID: "1", Author: "Lisa Anderson", Rating: 5},
		}, nil).Once()
		service := newTestService(mockRepo)

		reviews, err := service.ListReviews(ctx, "lake-kivu")

		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Lisa Anderson", reviews[0].Author)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown attraction", func(t *testing.T) {
		mockRepo := new(MockReviewRepo)
		mockRepo.On("ListByAttraction", mock.Anything, "nope").Return(nil, types.ErrNotFound).Once()
		service := newTestService(mockRepo)

		_, err := service.ListReviews(ctx, "nope")

		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("valid review is stored unverified", func(t *testing.T) {
		mockRepo := new(MockReviewRepo)
		mockRepo.On("Append", mock.Anything, "lake-kivu", mock.MatchedBy(func(r types.Review) bool {
			return r.Author == "Jean" && r.Rating == 4 && !r.Verified && r.ID != ""
		})).Return(nil).Once()
		service := newTestService(mockRepo)

		review, err := service.SubmitReview(ctx, "lake-kivu", SubmitParams{
			Author:  "  Jean  ",
			Rating:  4,
			Comment: "Lovely sunset cruise.",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jean", review.Author)
		assert.Equal(t, "September 1, 2025", review.Date)
		assert.False(t, review.Verified)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejected input never hits the repository", func(t *testing.T) {
		tests := []struct {
			name   string
			params SubmitParams
		}{
			{name: "missing author", params: SubmitParams{Rating: 4, Comment: "ok"}},
			{name: "rating too low", params: SubmitParams{Author: "Jean", Rating: 0, Comment: "ok"}},
			{name: "rating too high", params: SubmitParams{Author: "Jean", Rating: 6, Comment: "ok"}},
			{name: "missing comment", params: SubmitParams{Author: "Jean", Rating: 4}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := new(MockReviewRepo)
				service := newTestService(mockRepo)

				_, err := service.SubmitReview(ctx, "lake-kivu", tc.params)

				assert.ErrorIs(t, err, types.ErrBadRequest)
				mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("unknown attraction", func(t *testing.T) {
		mockRepo := new(MockReviewRepo)
		mockRepo.On("Append", mock.Anything, "nope", mock.Anything).Return(types.ErrNotFound).Once()
		service := newTestService(mockRepo)

		_, err := service.SubmitReview(ctx, "nope", SubmitParams{Author: "Jean", Rating: 4, Comment: "ok"})

		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository([]types.Attraction{
		{
			Slug: "lake-kivu",
			Reviews: []types.Review{
				{ID: "1", Author: "Lisa Anderson", Rating: 5, Verified: true},
			},
		},
	})

	t.Run("seeded from the catalog", func(t *testing.T) {
		reviews, err := repo.ListByAttraction(ctx, "lake-kivu")
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.True(t, reviews[0].Verified)
	})

	t.Run("new reviews show first", func(t *testing.T) {
		err := repo.Append(ctx, "lake-kivu", types.Review{ID: "2", Author: "Jean", Rating: 4})
		require.NoError(t, err)

		reviews, err := repo.ListByAttraction(ctx, "lake-kivu")
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "Jean", reviews[0].Author)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := repo.ListByAttraction(ctx, "nope")
		assert.ErrorIs(t, err, types.ErrNotFound)

		err = repo.Append(ctx, "nope", types.Review{})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
