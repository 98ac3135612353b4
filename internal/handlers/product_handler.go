package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("rejected product request", "error", err)
		writeRequestError(w, err, h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, product, h.logger)
}

// ListProducts handles GET /products
// Optional query parameters: name (partial, case-insensitive), size (exact),
// limit and offset.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	window, err := parseWindow(q)
	if err != nil {
		writeRequestError(w, err, h.logger)
		return
	}

	filter := models.ProductFilter{
		Name: q.Get("name"),
		Size: q.Get("size"),
	}

	result, err := h.service.ListProducts(r.Context(), filter, window)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
}
