package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/qr-tracker/internal/db"
	handler "github.com/rogerio-castellano/qr-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/qr-tracker/internal/http/router"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

type backend struct {
	name  string
	setup func(t *testing.T)
}

// backends lists the durable stores to run against. Postgres joins the list only
// when TEST_DATABASE_URL points at a disposable database.
func backends() []backend {
	list := []backend{{name: "redis", setup: useRedis}}
	if os.Getenv("TEST_DATABASE_URL") != "" {
		list = append(list, backend{name: "postgres", setup: usePostgres})
	}
	return list
}

func useRedis(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	handler.SetProductRepo(repo.NewRedisProductRepository(rdb, 0))
	handler.SetScanRepo(repo.NewRedisScanRepository(rdb, 0))
	handler.SetMetricsRepo(nil)
}

func usePostgres(t *testing.T) {
	t.Helper()

	database, err := db.Connect(os.Getenv("TEST_DATABASE_URL"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.CreateSchema(database))
	truncate(t, database)

	handler.SetProductRepo(repo.NewPostgresProductRepository(database, 0))
	handler.SetScanRepo(repo.NewPostgresScanRepository(database, 0))
	handler.SetMetricsRepo(repo.NewPostgresMetricsRepository(database, 0))
}

func truncate(t *testing.T, database *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE scanned_data, products RESTART IDENTITY")
	require.NoError(t, err)
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func newRouter() http.Handler {
	return router.NewRouter()
}
