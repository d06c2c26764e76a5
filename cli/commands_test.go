package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/qr-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/qr-tracker/internal/http/router"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

func startServer(t *testing.T) (string, *repo.InMemoryProductRepository) {
	t.Helper()

	products := repo.NewInMemoryProductRepository()
	handlers.SetProductRepo(products)
	handlers.SetScanRepo(repo.NewInMemoryScanRepository())

	srv := httptest.NewServer(router.NewRouter())
	t.Cleanup(srv.Close)
	return srv.URL, products
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestProductsAdd_NormalizesPrice(t *testing.T) {
	server, products := startServer(t)

	out, err := run(t, server, "products", "add",
		"--id", "P1", "--name", "Widget", "--category", "Tools",
		"--price", "99.99", "--image-url", "http://x/y.png", "--specs", `{"color":"red"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "created P1")

	p, err := products.GetByProductID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, int64(9999), p.Price)
	assert.Equal(t, "red", p.Specs["color"])
}

func TestProductsAdd_GeneratesID(t *testing.T) {
	server, products := startServer(t)

	_, err := run(t, server, "products", "add",
		"--name", "Lamp", "--category", "Home", "--price", "12", "--image-url", "http://x/l.png")
	require.NoError(t, err)

	all, err := products.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Regexp(t, `^PRODUCT-[0-9A-F]{8}$`, all[0].ProductID)
	assert.Equal(t, int64(1200), all[0].Price)
}

func TestProductsAdd_RejectsBadInput(t *testing.T) {
	server, _ := startServer(t)

	_, err := run(t, server, "products", "add",
		"--name", "Lamp", "--category", "Home", "--price", "-1", "--image-url", "http://x/l.png")
	assert.Error(t, err)

	_, err = run(t, server, "products", "add",
		"--name", "Lamp", "--category", "Home", "--price", "1", "--image-url", "http://x/l.png", "--specs", "[1]")
	assert.ErrorContains(t, err, "invalid --specs")
}

func TestScanFlow(t *testing.T) {
	server, _ := startServer(t)

	_, err := run(t, server, "seed")
	require.NoError(t, err)

	out, err := run(t, server, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 of 3")

	out, err = run(t, server, "scan", "MS-PRODUCT-002", "--at", "2024-03-01 10:00:00")
	require.NoError(t, err)
	assert.Contains(t, out, `"qrId": "MS-PRODUCT-002"`)
	assert.Contains(t, out, "2024-03-01T10:00:00Z")

	out, err = run(t, server, "scans", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Xbox Series X")
	assert.Contains(t, out, "499.99")

	_, err = run(t, server, "scan", "UNKNOWN")
	assert.ErrorContains(t, err, "no product is registered")

	out, err = run(t, server, "metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "products:  3")
	assert.Contains(t, out, "top:       MS-PRODUCT-002 (Xbox Series X, 1 scans)")
}
