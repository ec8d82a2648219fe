package shop

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
	"github.com/Madhav-Gupta-28/noemie-shop-go/utils"
	"github.com/go-playground/validator/v10"
)

// PaymentDetails is the simulated card form. Fields are checked in
// declaration order and the first failure is reported.
type PaymentDetails struct {
	CardNumber string `form:"cardNumber" validate:"min=12,number"`
	Exp        string `form:"exp" validate:"expiry"`
	CVV        string `form:"cvv" validate:"number,min=3,max=4"`
}

// ValidationError names the payment field that blocked submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var fieldMessages = map[string]string{
	"cardNumber": "Invalid card number",
	"exp":        "Invalid expiry date",
	"cvv":        "Invalid CVV",
}

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

func newPaymentValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// Normalize strips whitespace from the card number and trims the rest.
func (d PaymentDetails) Normalize() PaymentDetails {
	return PaymentDetails{
		CardNumber: strings.Join(strings.Fields(d.CardNumber), ""),
		Exp:        strings.TrimSpace(d.Exp),
		CVV:        strings.TrimSpace(d.CVV),
	}
}

// ValidatePayment returns a *ValidationError for the first invalid field.
func (s *Service) ValidatePayment(d PaymentDetails) error {
	err := s.validate.Struct(d.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	return &ValidationError{Field: field, Message: fieldMessages[field]}
}

// PlaceOrder validates the payment details, snapshots cart, totals and
// customer into a new order, stores it and empties the cart. Nothing is
// written when validation fails.
func (s *Service) PlaceOrder(ctx context.Context, sid string, d PaymentDetails) (models.Order, error) {
	if err := s.ValidatePayment(d); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.rec.PaymentRejected(verr.Field)
		}
		return models.Order{}, err
	}

	var t models.Totals
	if !s.load(ctx, sid, storage.KeyTotals, &t) {
		t = models.Totals{}
	}

	now := s.now()
	order := models.Order{
		ID:       utils.OrderID(now),
		Items:    s.ReadCart(ctx, sid),
		Totals:   t,
		Customer: s.ReadCustomer(ctx, sid),
		TS:       now.UnixMilli(),
	}

	if err := s.save(ctx, sid, storage.KeyOrder, order); err != nil {
		return models.Order{}, err
	}
	if err := s.ClearCart(ctx, sid); err != nil {
		return models.Order{}, err
	}

	s.rec.OrderCreated()
	logger.Info().Str("session", sid).Str("order", order.ID).Float64("grand", t.Grand).Msg("order created")
	return order, nil
}
