package models

// ProductSize is the stock held for one size of a product
type ProductSize struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Product is a catalog entry as stored
type Product struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price float64       `json:"price"`
	Sizes []ProductSize `json:"sizes,omitempty"`
}

// ProductRequest is the body of POST /products.
// Pointer fields distinguish a missing value from a zero value.
type ProductRequest struct {
	Name  *string              `json:"name" validate:"required"`
	Price *float64             `json:"price" validate:"required,gte=0"`
	Sizes []ProductSizeRequest `json:"sizes" validate:"required,dive"`
}

type ProductSizeRequest struct {
	Size     *string `json:"size" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required,gte=0"`
}

// ToProduct converts a validated request into a product without an ID
func (r ProductRequest) ToProduct() Product {
	sizes := make([]ProductSize, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, ProductSize{Size: deref(s.Size), Quantity: deref(s.Quantity)})
	}

	return Product{
		Name:  deref(r.Name),
		Price: deref(r.Price),
		Sizes: sizes,
	}
}

// ProductSummary is the projection returned by create and list
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Summary drops the sizes from a product
func (p Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price}
}

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	Name string // case-insensitive substring of the name
	Size string // exact match against any sizes[].size
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
