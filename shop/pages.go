package shop

import (
	"context"
	"fmt"

	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
	"github.com/Madhav-Gupta-28/noemie-shop-go/utils"
)

// CartLine is one rendered row of the cart table.
type CartLine struct {
	Item      models.CartItem
	LineTotal float64
}

type CartView struct {
	Empty  bool
	Lines  []CartLine
	Totals models.Totals
	Count  int
}

type CheckoutView struct {
	Empty    bool
	Lines    []string
	Total    float64
	Customer models.Customer
	Count    int
}

type ConfirmationView struct {
	Found    bool
	OrderID  string
	Lines    []string
	Total    float64
	Customer string
}

// SummaryLine renders one checkout line: name, quantity and line total.
func SummaryLine(it models.CartItem) string {
	return fmt.Sprintf("%s × %d — %s", it.Name, it.Qty, utils.FormatMoney(it.LineTotal()))
}

// CustomerSummary renders the one-line customer block of the confirmation.
func CustomerSummary(c models.Customer) string {
	return fmt.Sprintf("Name: %s %s — Phone: %s — Address: %s, %s %s — Email: %s",
		c.Field("firstName"), c.Field("lastName"),
		c.Field("phone"),
		c.Field("street"), c.Field("city"), c.Field("zip"),
		c.Field("email"),
	)
}

// CartPage builds the cart table. A non-empty cart also has its totals
// computed with the cart rule and persisted for checkout.
func (s *Service) CartPage(ctx context.Context, sid string) (CartView, error) {
	cart := s.ReadCart(ctx, sid)
	view := CartView{Count: cart.Count()}
	if len(cart) == 0 {
		view.Empty = true
		return view, nil
	}

	view.Lines = make([]CartLine, 0, len(cart))
	for _, it := range cart {
		view.Lines = append(view.Lines, CartLine{Item: it, LineTotal: it.LineTotal()})
	}

	view.Totals = s.shipping.CartTotals(cart)
	if err := s.save(ctx, sid, storage.KeyTotals, view.Totals); err != nil {
		return view, err
	}
	return view, nil
}

// CheckoutSummary builds the read-only order summary shown next to the
// customer form. Totals use the checkout rule and are persisted unless the
// cart is empty.
func (s *Service) CheckoutSummary(ctx context.Context, sid string) (CheckoutView, error) {
	cart := s.ReadCart(ctx, sid)
	view := CheckoutView{
		Count:    cart.Count(),
		Customer: s.ReadCustomer(ctx, sid),
	}
	if len(cart) == 0 {
		view.Empty = true
		return view, nil
	}

	for _, it := range cart {
		view.Lines = append(view.Lines, SummaryLine(it))
	}

	t := s.shipping.CheckoutTotals(cart)
	view.Total = t.Grand
	if err := s.save(ctx, sid, storage.KeyTotals, t); err != nil {
		return view, err
	}
	return view, nil
}

// ReadOrder returns the last order placed in the session.
func (s *Service) ReadOrder(ctx context.Context, sid string) (models.Order, bool) {
	var order models.Order
	if !s.load(ctx, sid, storage.KeyOrder, &order) {
		return models.Order{}, false
	}
	return order, true
}

// Confirmation renders the stored order; Found is false when there is none.
func (s *Service) Confirmation(ctx context.Context, sid string) ConfirmationView {
	order, ok := s.ReadOrder(ctx, sid)
	if !ok {
		return ConfirmationView{}
	}

	view := ConfirmationView{
		Found:    true,
		OrderID:  order.ID,
		Total:    order.Totals.Grand,
		Customer: CustomerSummary(order.Customer),
	}
	for _, it := range order.Items {
		view.Lines = append(view.Lines, SummaryLine(it))
	}
	return view
}
