package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

func widget(productID string) models.Product {
	return models.Product{
		ProductID: productID,
		Name:      "Widget",
		Category:  "Tools",
		Price:     1000,
		ImageURL:  "http://x/y.png",
		Specs:     models.Specs{"color": "red"},
	}
}

// runProductRepositoryContract checks behaviour every ProductRepository backend must share.
// newRepo must return an empty repository.
func runProductRepositoryContract(t *testing.T, newRepo func(t *testing.T) repo.ProductRepository) {
	ctx := context.Background()

	t.Run("create then fetch round-trips caller fields", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, widget("P1"))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := r.GetByProductID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "P1", got.ProductID)
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, "Tools", got.Category)
		assert.Equal(t, int64(1000), got.Price)
		assert.Equal(t, "http://x/y.png", got.ImageURL)
		assert.Equal(t, "red", got.Specs["color"])

		again, err := r.GetByProductID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, got.ID, again.ID)
	})

	t.Run("missing product", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.GetByProductID(ctx, "nope")
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("duplicate productId rejected", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Create(ctx, widget("P1"))
		require.NoError(t, err)
		_, err = r.Create(ctx, widget("P1"))
		assert.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)

		all, err := r.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("get many skips absent keys", func(t *testing.T) {
		r := newRepo(t)

		for _, id := range []string{"A", "B", "C"} {
			_, err := r.Create(ctx, widget(id))
			require.NoError(t, err)
		}

		found, err := r.GetMany(ctx, []string{"A", "C", "Z"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Equal(t, "A", found["A"].ProductID)
		assert.Equal(t, "C", found["C"].ProductID)
		_, ok := found["Z"]
		assert.False(t, ok)

		empty, err := r.GetMany(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("get all lists every product", func(t *testing.T) {
		r := newRepo(t)

		all, err := r.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		_, err = r.Create(ctx, widget("A"))
		require.NoError(t, err)
		_, err = r.Create(ctx, widget("B"))
		require.NoError(t, err)

		all, err = r.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "A", all[0].ProductID)
		assert.Equal(t, "B", all[1].ProductID)
	})
}

// runScanRepositoryContract checks behaviour every ScanRepository backend must share.
func runScanRepositoryContract(t *testing.T, newRepo func(t *testing.T) repo.ScanRepository) {
	ctx := context.Background()

	t.Run("create keeps supplied timestamp", func(t *testing.T) {
		r := newRepo(t)
		at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

		created, err := r.Create(ctx, models.ScannedData{QrID: "P1", ScannedAt: at})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.True(t, at.Equal(created.ScannedAt), "expected %v, got %v", at, created.ScannedAt)

		got, err := r.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "P1", got.QrID)
		assert.True(t, at.Equal(got.ScannedAt))
	})

	t.Run("create defaults timestamp to now", func(t *testing.T) {
		r := newRepo(t)
		before := time.Now().Add(-time.Minute)

		created, err := r.Create(ctx, models.ScannedData{QrID: "P1"})
		require.NoError(t, err)
		assert.False(t, created.ScannedAt.IsZero())
		assert.True(t, created.ScannedAt.After(before))
	})

	t.Run("get by qrId returns first inserted", func(t *testing.T) {
		r := newRepo(t)

		first, err := r.Create(ctx, models.ScannedData{QrID: "P1"})
		require.NoError(t, err)
		_, err = r.Create(ctx, models.ScannedData{QrID: "P2"})
		require.NoError(t, err)
		_, err = r.Create(ctx, models.ScannedData{QrID: "P1"})
		require.NoError(t, err)

		got, err := r.GetByQrID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "P1", got.QrID)
	})

	t.Run("missing scan", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.GetByQrID(ctx, "nope")
		assert.True(t, errors.Is(err, repo.ErrScanNotFound))
		_, err = r.GetByID(ctx, 4242)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("get all in insertion order", func(t *testing.T) {
		r := newRepo(t)

		for _, qr := range []string{"C", "A", "B"} {
			_, err := r.Create(ctx, models.ScannedData{QrID: qr})
			require.NoError(t, err)
		}

		all, err := r.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "C", all[0].QrID)
		assert.Equal(t, "A", all[1].QrID)
		assert.Equal(t, "B", all[2].QrID)
	})
}
