package shop

import "github.com/Madhav-Gupta-28/noemie-shop-go/models"

// Catalog is the list of products shown with add-to-cart buttons.
type Catalog []models.Product

// Find returns the product with the given id.
func (c Catalog) Find(id string) (models.Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Resolve prices a posted cart line from the catalog. When the id names a
// catalog product its name and price replace the posted ones; other ids keep
// what the client sent.
func (c Catalog) Resolve(item models.CartItem) models.CartItem {
	if p, ok := c.Find(item.ID); ok {
		item.Name = p.Name
		item.Price = p.Price
	}
	return item
}

func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "1", Name: "Linen Shirt", Description: "Loose-fit shirt in washed linen.", Price: 120},
		{ID: "2", Name: "Summer Dress", Description: "Cotton midi dress with side pockets.", Price: 240},
		{ID: "3", Name: "Silk Scarf", Description: "Hand-rolled edges, 70x70.", Price: 60},
		{ID: "4", Name: "Canvas Tote", Description: "Heavy canvas with leather handles.", Price: 85},
		{ID: "5", Name: "Leather Belt", Description: "Vegetable-tanned, brass buckle.", Price: 150},
	}
}
