package models

// OrderItem references a product by ID and carries the ordered quantity
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Qty       int    `json:"qty" bson:"qty"`
}

// Order is a placed order as stored. Total is the price snapshot taken at
// creation time and is never recomputed.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"userId"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
}

// OrderRequest is the body of POST /orders
type OrderRequest struct {
	UserID *string            `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,dive"`
}

type OrderItemRequest struct {
	ProductID *string `json:"productId" validate:"required"`
	Qty       int     `json:"qty" validate:"gt=0"`
}

// ToOrder converts a validated request into an unpriced order, keeping items in input order
func (r OrderRequest) ToOrder() Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, OrderItem{ProductID: deref(it.ProductID), Qty: it.Qty})
	}
	return Order{UserID: deref(r.UserID), Items: items}
}

// OrderCreated is the response of POST /orders
type OrderCreated struct {
	ID string `json:"id"`
}

// ProductDetails is the product data joined into listed order items
type ProductDetails struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrderItemView struct {
	ProductID      string         `json:"productId"`
	Qty            int            `json:"qty"`
	ProductDetails ProductDetails `json:"productDetails"`
}

// OrderView is an order with its items joined against the current catalog
type OrderView struct {
	ID    string          `json:"id"`
	Items []OrderItemView `json:"items"`
	Total float64         `json:"total"`
}
