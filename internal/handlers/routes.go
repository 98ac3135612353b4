package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the product and order endpoints on r
func RegisterRoutes(r chi.Router, products *ProductHandler, orders *OrderHandler) {
	r.Post("/products", products.CreateProduct)
	r.Get("/products", products.ListProducts)

	r.Post("/orders", orders.CreateOrder)
	r.Get("/orders/{userId}", orders.ListUserOrders)
}
