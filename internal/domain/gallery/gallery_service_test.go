package gallery

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

func testImages() []types.GalleryImage {
	return []types.GalleryImage{
		{ID: "1", Title: "Silverback at dawn", Location: "Volcanoes National Park", Category: "wildlife", Photographer: "A. Uwase"},
		{ID: "2", Title: "Canopy walkway", Location: "Nyungwe Forest", Category: "landscape", Photographer: "B. Nshuti"},
		{ID: "3", Title: "Sunset over the lake", Location: "Lake Kivu", Category: "landscape", Photographer: "A. Uwase"},
		{ID: "4", Title: "Intore dancers", Location: "Kigali", Category: "culture", Photographer: "C. Keza"},
		{ID: "5", Title: "Crowned crane", Location: "Akagera", Category: "wildlife", Photographer: "B. Nshuti"},
	}
}

func newTestService(images []types.GalleryImage) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	categories := []types.GalleryCategory{
		{Value: "all", Label: "All"},
		{Value: "wildlife", Label: "Wildlife"},
	}
	return NewServiceImpl(images, categories, logger)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	service := newTestService(testImages())

	t.Run("no filters returns everything", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		assert.Len(t, page.Images, 5)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrev)
	})

	t.Run("category filter", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Category: "wildlife", Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		for _, img := range page.Images {
			assert.Equal(t, "wildlife", img.Category)
		}
	})

	t.Run("all category disables filtering", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Category: "all", Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("search spans title location and photographer", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Search: "uwase", Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)

		page, err = service.Fetch(ctx, Filters{Search: "KIVU", Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "3", page.Images[0].ID)
	})

	t.Run("category and search combine", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Category: "landscape", Search: "uwase", Page: 1, Limit: DefaultLimit})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "3", page.Images[0].ID)
	})

	t.Run("pagination hints", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page.Images, 2)
		assert.Equal(t, 3, page.TotalPages)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrev)

		page, err = service.Fetch(ctx, Filters{Page: 3, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page.Images, 1)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Page: 10, Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, page.Images)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("defaults applied to bad paging input", func(t *testing.T) {
		page, err := service.Fetch(ctx, Filters{Page: -1, Limit: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Images, 5)
	})
}

func TestCategories(t *testing.T) {
	service := newTestService(testImages())

	categories := service.Categories(context.Background())

	require.Len(t, categories, 2)
	assert.Equal(t, "all", categories[0].Value)
}
