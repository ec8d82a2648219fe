package models

// CartItem is one line of the cart.
type CartItem struct {
	ID    string  `json:"id" bson:"id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Qty   int     `json:"qty" bson:"qty"`
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Qty)
}

// Cart is the ordered list of line items, one entry per ID.
type Cart []CartItem

// Count sums the quantities of every line.
func (c Cart) Count() int {
	n := 0
	for _, it := range c {
		n += it.Qty
	}
	return n
}

// Index returns the position of the item with the given ID, or -1.
func (c Cart) Index(id string) int {
	for i, it := range c {
		if it.ID == id {
			return i
		}
	}
	return -1
}

type Totals struct {
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Shipping float64 `json:"shipping" bson:"shipping"`
	Grand    float64 `json:"grand" bson:"grand"`
}
