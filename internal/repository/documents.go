package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
)

type productDocument struct {
	ID    primitive.ObjectID   `bson:"_id"`
	Name  string               `bson:"name"`
	Price float64              `bson:"price"`
	Sizes []models.ProductSize `bson:"sizes"`
}

func newProductDocument(p models.Product) productDocument {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []models.ProductSize{}
	}
	return productDocument{
		ID:    primitive.NewObjectID(),
		Name:  p.Name,
		Price: p.Price,
		Sizes: sizes,
	}
}

func (d productDocument) toModel() models.Product {
	return models.Product{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Price: d.Price,
		Sizes: d.Sizes,
	}
}

// orderDocument keeps item product IDs as the strings the caller sent.
type orderDocument struct {
	ID     primitive.ObjectID `bson:"_id"`
	UserID string             `bson:"userId"`
	Items  []models.OrderItem `bson:"items"`
	Total  float64            `bson:"total"`
}

func newOrderDocument(o models.Order) orderDocument {
	items := o.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	return orderDocument{
		ID:     primitive.NewObjectID(),
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total,
	}
}

func (d orderDocument) toModel() models.Order {
	return models.Order{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		Items:  d.Items,
		Total:  d.Total,
	}
}
