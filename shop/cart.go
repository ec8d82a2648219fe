package shop

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Madhav-Gupta-28/noemie-shop-go/apperror"
	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
)

const (
	// MaxQuantity caps the quantity of one cart line.
	MaxQuantity = 999
	// MaxPrice caps the unit price accepted for a cart line.
	MaxPrice = 1_000_000
)

func clampQuantity(n int) int {
	return min(MaxQuantity, max(1, n))
}

// addQuantity sums two quantities, saturating at MaxQuantity.
func addQuantity(a, b int) int {
	return clampQuantity(clampQuantity(a) + clampQuantity(b))
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= MaxPrice
}

// ReadCart returns the session's cart, or an empty cart when none is stored
// or the stored value cannot be read. Lines with an out-of-range price are
// dropped and quantities are clamped to [1, MaxQuantity].
func (s *Service) ReadCart(ctx context.Context, sid string) models.Cart {
	var stored models.Cart
	if !s.load(ctx, sid, storage.KeyCart, &stored) || stored == nil {
		return models.Cart{}
	}

	cart := make(models.Cart, 0, len(stored))
	for _, it := range stored {
		if !validPrice(it.Price) {
			continue
		}
		it.Qty = clampQuantity(it.Qty)
		cart = append(cart, it)
	}
	return cart
}

// WriteCart replaces the whole cart and returns the new item count.
func (s *Service) WriteCart(ctx context.Context, sid string, cart models.Cart) (int, error) {
	if cart == nil {
		cart = models.Cart{}
	}
	if err := s.save(ctx, sid, storage.KeyCart, cart); err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// CartCount sums the quantities in the session's cart.
func (s *Service) CartCount(ctx context.Context, sid string) int {
	return s.ReadCart(ctx, sid).Count()
}

// AddToCart increments the quantity of a line with the same id, or appends
// a new line. A non-positive quantity counts as 1 and line quantities never
// exceed MaxQuantity.
func (s *Service) AddToCart(ctx context.Context, sid string, item models.CartItem) (int, error) {
	item.Qty = clampQuantity(item.Qty)

	cart := s.ReadCart(ctx, sid)
	if i := cart.Index(item.ID); i >= 0 {
		cart[i].Qty = addQuantity(cart[i].Qty, item.Qty)
	} else {
		cart = append(cart, item)
	}

	n, err := s.WriteCart(ctx, sid, cart)
	if err != nil {
		return 0, err
	}
	s.rec.ItemAdded(item.Qty)
	return n, nil
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context, sid string) error {
	_, err := s.WriteCart(ctx, sid, models.Cart{})
	return err
}

// updateItem applies fn to the line with the given id and persists the cart.
// Unknown ids leave the cart untouched.
func (s *Service) updateItem(ctx context.Context, sid, id string, fn func(models.Cart, int) models.Cart) (int, error) {
	cart := s.ReadCart(ctx, sid)
	i := cart.Index(id)
	if i < 0 {
		return cart.Count(), nil
	}
	return s.WriteCart(ctx, sid, fn(cart, i))
}

func (s *Service) Increment(ctx context.Context, sid, id string) (int, error) {
	return s.updateItem(ctx, sid, id, func(c models.Cart, i int) models.Cart {
		c[i].Qty = addQuantity(c[i].Qty, 1)
		return c
	})
}

// Decrement lowers the quantity by one, never below 1.
func (s *Service) Decrement(ctx context.Context, sid, id string) (int, error) {
	return s.updateItem(ctx, sid, id, func(c models.Cart, i int) models.Cart {
		c[i].Qty = clampQuantity(c[i].Qty - 1)
		return c
	})
}

// SetQuantity sets the quantity, clamped to [1, MaxQuantity].
func (s *Service) SetQuantity(ctx context.Context, sid, id string, qty int) (int, error) {
	return s.updateItem(ctx, sid, id, func(c models.Cart, i int) models.Cart {
		c[i].Qty = clampQuantity(qty)
		return c
	})
}

func (s *Service) Remove(ctx context.Context, sid, id string) (int, error) {
	return s.updateItem(ctx, sid, id, func(c models.Cart, i int) models.Cart {
		return append(c[:i], c[i+1:]...)
	})
}

// ParseQuantity reads the leading integer of raw. Unparseable input reads as
// 1 and the result is clamped to [1, MaxQuantity].
func ParseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}

	// Atoi saturates on ErrRange, which the clamp then bounds.
	n, err := strconv.Atoi(raw[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	return clampQuantity(n)
}

// NewItem validates a cart line. The id is required and the price must be a
// number in [0, MaxPrice]. The quantity is clamped to [1, MaxQuantity].
func NewItem(id, name string, price float64, qty int) (models.CartItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.CartItem{}, apperror.BadRequest("missing product id")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return models.CartItem{}, apperror.BadRequest("invalid price")
	}
	if price < 0 {
		return models.CartItem{}, apperror.BadRequest("price must not be negative")
	}
	if price > MaxPrice {
		return models.CartItem{}, apperror.BadRequest("price exceeds the maximum")
	}

	return models.CartItem{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Price: price,
		Qty:   clampQuantity(qty),
	}, nil
}

// ParseItem builds a cart line from add-to-cart form values. A missing price
// reads as 0 and a missing quantity as 1.
func ParseItem(id, name, price, qty string) (models.CartItem, error) {
	p := 0.0
	if price = strings.TrimSpace(price); price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return models.CartItem{}, apperror.BadRequest("invalid price")
		}
		p = v
	}

	q := 1
	if strings.TrimSpace(qty) != "" {
		q = ParseQuantity(qty)
	}

	return NewItem(id, name, p, q)
}
