package catalog

import (
	"context"
	"errors"
	"testing"

	"bandcatalog/internal/paging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, c *Catalog, pageSize int) *Service {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Load(gomock.Any()).Return(c, nil).AnyTimes()

	svc, err := NewService(src, pageSize)
	require.NoError(t, err)
	return svc
}

func TestNewService_InvalidPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, size := range []int{0, -1} {
		svc, err := NewService(NewMockSource(ctrl), size)
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, paging.ErrInvalidPageSize)
	}
}

func TestService_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("first page", func(t *testing.T) {
		svc := newTestService(t, scenarioCatalog(), 1)

		res, err := svc.Browse(ctx, Query{Genre: "all", Page: 1})
		require.NoError(t, err)

		assert.Equal(t, []string{"Alpha"}, recordTitles(res.Albums))
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 3, res.PageCount)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, []string{"Jazz", "Rock"}, res.Index.Genres)
		assert.Equal(t, []string{"Anna", "Ben", "Cleo"}, res.Index.Members)
	})

	t.Run("song title search", func(t *testing.T) {
		svc := newTestService(t, scenarioCatalog(), 1)

		res, err := svc.Browse(ctx, Query{Q: "blue", Page: 1})
		require.NoError(t, err)

		assert.Equal(t, []string{"1-0"}, recordIDs(res.Albums))
		assert.Equal(t, "Gamma", res.Albums[0].Title)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("genre", func(t *testing.T) {
		svc := newTestService(t, scenarioCatalog(), 1)

		res, err := svc.Browse(ctx, Query{Genre: "Jazz", Page: 1})
		require.NoError(t, err)

		assert.Equal(t, []string{"1-0"}, recordIDs(res.Albums))
	})

	t.Run("page past the end clamps", func(t *testing.T) {
		svc := newTestService(t, scenarioCatalog(), 1)

		res, err := svc.Browse(ctx, Query{Page: 99})
		require.NoError(t, err)

		assert.Equal(t, 3, res.Page)
		assert.Equal(t, 3, res.Query.Page)
		assert.Equal(t, []string{"Gamma"}, recordTitles(res.Albums))
	})

	t.Run("empty catalog", func(t *testing.T) {
		svc := newTestService(t, &Catalog{Bands: []Band{}}, 3)

		res, err := svc.Browse(ctx, Query{Page: 1})
		require.NoError(t, err)

		assert.NotNil(t, res.Albums)
		assert.Empty(t, res.Albums)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 1, res.PageCount)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Index.Genres)
		assert.Empty(t, res.Index.Members)
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := NewMockSource(ctrl)
		src.EXPECT().Load(gomock.Any()).Return(nil, ErrSourceNotFound)
		svc, err := NewService(src, 3)
		require.NoError(t, err)

		_, err = svc.Browse(ctx, Query{Page: 1})
		assert.True(t, errors.Is(err, ErrSourceNotFound))
	})
}

func TestService_PagesCoverFilteredResult(t *testing.T) {
	bands := make([]Band, 5)
	for i := range bands {
		bands[i] = Band{Name: "Band", Albums: make([]Album, i+1)}
	}
	svc := newTestService(t, &Catalog{Bands: bands}, 4)
	ctx := context.Background()

	first, err := svc.Browse(ctx, Query{Page: 1})
	require.NoError(t, err)

	var all []string
	for p := 1; p <= first.PageCount; p++ {
		res, err := svc.Browse(ctx, Query{Page: p})
		require.NoError(t, err)
		all = append(all, recordIDs(res.Albums)...)
	}

	assert.Equal(t, recordIDs(Flatten(bands)), all)
	assert.Equal(t, 15, first.Total)
	assert.Equal(t, 4, first.PageCount)
}

func TestService_Filters(t *testing.T) {
	svc := newTestService(t, scenarioCatalog(), 3)

	idx, err := svc.Filters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Index{Genres: []string{"Jazz", "Rock"}, Members: []string{"Anna", "Ben", "Cleo"}}, idx)
}
