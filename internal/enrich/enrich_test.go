package enrich_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/qr-tracker/internal/enrich"
	"github.com/rogerio-castellano/qr-tracker/internal/models"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
	"github.com/rogerio-castellano/qr-tracker/internal/repo/mocks"
)

func product(id string) models.Product {
	return models.Product{ProductID: id, Name: "Name " + id, Category: "Cat", Price: 100, ImageURL: "http://x/" + id + ".png", Specs: models.Specs{}}
}

func seededCatalog(t *testing.T, ids ...string) *repo.InMemoryProductRepository {
	t.Helper()
	r := repo.NewInMemoryProductRepository()
	for _, id := range ids {
		_, err := r.Create(context.Background(), product(id))
		require.NoError(t, err)
	}
	return r
}

func TestEnrichOne_ReturnsMatchingProduct(t *testing.T) {
	ids := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		ids = append(ids, fmt.Sprintf("P%02d", i))
	}
	svc := enrich.NewService(seededCatalog(t, ids...), 0)
	scan := models.ScannedData{ID: 7, QrID: "P17", ScannedAt: time.Now()}

	for i := 0; i < 3; i++ {
		view, err := svc.EnrichOne(context.Background(), scan)
		require.NoError(t, err)
		assert.Equal(t, scan, view.ScannedData)
		assert.Equal(t, "P17", view.Product.ProductID)
		assert.Equal(t, "Name P17", view.Product.Name)
	}
}

func TestEnrichOne_MissingProduct(t *testing.T) {
	svc := enrich.NewService(seededCatalog(t, "P1"), 0)

	view, err := svc.EnrichOne(context.Background(), models.ScannedData{ID: 1, QrID: "UNKNOWN"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	var notFound *enrich.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "UNKNOWN", notFound.QrID)
	assert.Equal(t, models.ScannedDataWithProduct{}, view)
}

func TestEnrichOne_StoreError(t *testing.T) {
	products := new(mocks.MockProductRepository)
	products.On("GetByProductID", mock.Anything, "P1").Return(models.Product{}, errors.New("connection reset")).Once()
	svc := enrich.NewService(products, 0)

	_, err := svc.EnrichOne(context.Background(), models.ScannedData{QrID: "P1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
	products.AssertExpectations(t)
}

func TestEnrichAll_PreservesInputOrder(t *testing.T) {
	products := new(mocks.MockProductRepository)
	// Batches resolve in reverse order of submission.
	products.On("GetMany", mock.Anything, []string{"A"}).After(60*time.Millisecond).
		Return(map[string]models.Product{"A": product("A")}, nil).Once()
	products.On("GetMany", mock.Anything, []string{"B"}).After(30*time.Millisecond).
		Return(map[string]models.Product{"B": product("B")}, nil).Once()
	products.On("GetMany", mock.Anything, []string{"C"}).
		Return(map[string]models.Product{"C": product("C")}, nil).Once()
	svc := enrich.NewService(products, 1)

	scans := []models.ScannedData{{ID: 1, QrID: "A"}, {ID: 2, QrID: "B"}, {ID: 3, QrID: "C"}}
	views, err := svc.EnrichAll(context.Background(), scans)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for i, v := range views {
		assert.Equal(t, scans[i], v.ScannedData)
		assert.Equal(t, scans[i].QrID, v.Product.ProductID)
	}
	products.AssertExpectations(t)
}

func TestEnrichAll_FailsOnFirstMissingInInputOrder(t *testing.T) {
	svc := enrich.NewService(seededCatalog(t, "A", "B"), 1)

	scans := []models.ScannedData{{ID: 1, QrID: "A"}, {ID: 2, QrID: "X"}, {ID: 3, QrID: "B"}, {ID: 4, QrID: "Y"}}
	views, err := svc.EnrichAll(context.Background(), scans)
	assert.Nil(t, views)

	var notFound *enrich.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "X", notFound.QrID)
}

func TestEnrichAll_DeduplicatesKeys(t *testing.T) {
	products := new(mocks.MockProductRepository)
	products.On("GetMany", mock.Anything, []string{"A", "B"}).
		Return(map[string]models.Product{"A": product("A"), "B": product("B")}, nil).Once()
	svc := enrich.NewService(products, 10)

	views, err := svc.EnrichAll(context.Background(), []models.ScannedData{{ID: 1, QrID: "A"}, {ID: 2, QrID: "A"}, {ID: 3, QrID: "B"}})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, 1, views[0].ID)
	assert.Equal(t, 2, views[1].ID)
	assert.Equal(t, "A", views[1].Product.ProductID)
	products.AssertNumberOfCalls(t, "GetMany", 1)
}

func TestEnrichAll_StoreErrorPropagates(t *testing.T) {
	products := new(mocks.MockProductRepository)
	products.On("GetMany", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	svc := enrich.NewService(products, 2)

	_, err := svc.EnrichAll(context.Background(), []models.ScannedData{{QrID: "A"}, {QrID: "B"}, {QrID: "C"}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
}

func TestEnrichAll_Empty(t *testing.T) {
	svc := enrich.NewService(repo.NewInMemoryProductRepository(), 0)

	views, err := svc.EnrichAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
