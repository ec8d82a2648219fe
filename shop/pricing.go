package shop

import (
	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/shopspring/decimal"
)

// ShippingPolicy prices delivery. The cart page waives shipping above
// FreeOver; the checkout page charges Flat on any non-empty cart unless
// CheckoutThreshold is set.
type ShippingPolicy struct {
	Flat              float64
	FreeOver          float64
	CheckoutThreshold bool
}

func DefaultShipping() ShippingPolicy {
	return ShippingPolicy{Flat: 25, FreeOver: 300}
}

func subtotal(cart models.Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range cart {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return sum
}

func totals(sub, shipping decimal.Decimal) models.Totals {
	return models.Totals{
		Subtotal: sub.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Grand:    sub.Add(shipping).InexactFloat64(),
	}
}

// CartTotals applies the cart page rule.
func (p ShippingPolicy) CartTotals(cart models.Cart) models.Totals {
	sub := subtotal(cart)
	shipping := decimal.Zero
	if !sub.GreaterThan(decimal.NewFromFloat(p.FreeOver)) && len(cart) > 0 {
		shipping = decimal.NewFromFloat(p.Flat)
	}
	return totals(sub, shipping)
}

// CheckoutTotals applies the checkout page rule.
func (p ShippingPolicy) CheckoutTotals(cart models.Cart) models.Totals {
	sub := subtotal(cart)
	shipping := decimal.Zero
	if len(cart) > 0 {
		shipping = decimal.NewFromFloat(p.Flat)
		if p.CheckoutThreshold && sub.GreaterThan(decimal.NewFromFloat(p.FreeOver)) {
			shipping = decimal.Zero
		}
	}
	return totals(sub, shipping)
}
