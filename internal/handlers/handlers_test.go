package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/repository"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/service"
	"github.com/Lixing-Zhang/ecommerce-backend/pkg/logger"
)

type testServer struct {
	router   http.Handler
	products *repository.InMemoryProductRepository
}

func newTestServer() *testServer {
	log := logger.New("error")
	products := repository.NewInMemoryProductRepository()
	orders := repository.NewInMemoryOrderRepository()

	r := chi.NewRouter()
	RegisterRoutes(r,
		NewProductHandler(service.NewProductService(products, log), log),
		NewOrderHandler(service.NewOrderService(orders, products, log), log),
	)

	return &testServer{router: r, products: products}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createProduct(t *testing.T, name string, price float64, sizes ...string) string {
	t.Helper()

	sz := []map[string]interface{}{}
	for _, size := range sizes {
		sz = append(sz, map[string]interface{}{"size": size, "quantity": 5})
	}

	w := s.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":  name,
		"price": price,
		"sizes": sz,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.ID
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}
