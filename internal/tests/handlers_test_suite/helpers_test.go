package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/qr-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/qr-tracker/internal/http/router"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

var (
	productRepo *repo.InMemoryProductRepository
	scanRepo    *repo.InMemoryScanRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	scanRepo = repo.NewInMemoryScanRepository()
	handler.SetScanRepo(scanRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, scanRepo)
	handler.SetMetricsRepo(metricsRepo)

	handler.SetQRServiceURL("https://qr.example.test/render")
}

func clearAll() {
	productRepo.Clear()
	scanRepo.Clear()
}

func newRouter() http.Handler {
	return router.NewRouter()
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const widgetJSON = `{"productId":"P1","name":"Widget","category":"Tools","price":1000,"imageUrl":"http://x/y.png","specs":{"color":"red"}}`

func createWidget(r http.Handler) *httptest.ResponseRecorder {
	return postJSON(r, "/api/products", widgetJSON)
}

func productJSON(productID, name string) string {
	body, _ := json.Marshal(map[string]any{
		"productId": productID,
		"name":      name,
		"category":  "Tools",
		"price":     500,
		"imageUrl":  "http://x/" + productID + ".png",
		"specs":     map[string]any{"sku": productID},
	})
	return string(body)
}
