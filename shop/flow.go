package shop

import (
	"errors"
	"fmt"
)

// State is a stage of the shopping flow.
type State int

const (
	Browsing State = iota
	Cart
	Customer
	Payment
	Confirmed
)

var stateNames = [...]string{"browsing", "cart", "customer", "payment", "confirmed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Path is the page that renders the state.
func (s State) Path() string {
	switch s {
	case Cart:
		return "/cart"
	case Customer:
		return "/checkout"
	case Payment:
		return "/payment"
	case Confirmed:
		return "/confirmation"
	default:
		return "/products"
	}
}

// Event is a user action that moves the flow.
type Event int

const (
	AddItem Event = iota
	ViewCart
	EditCart
	StartCheckout
	SubmitCustomer
	SubmitPayment
	ContinueShopping
)

var ErrInvalidTransition = errors.New("invalid flow transition")

var transitions = map[State]map[Event]State{
	Browsing: {
		AddItem:       Browsing,
		ViewCart:      Cart,
		StartCheckout: Customer,
	},
	Cart: {
		AddItem:          Cart,
		EditCart:         Cart,
		StartCheckout:    Customer,
		ContinueShopping: Browsing,
	},
	Customer: {
		SubmitCustomer: Payment,
		ViewCart:       Cart,
	},
	Payment: {
		SubmitPayment: Confirmed,
		ViewCart:      Cart,
	},
	Confirmed: {
		ContinueShopping: Browsing,
	},
}

// Next returns the state reached from s on e.
func Next(s State, e Event) (State, error) {
	to, ok := transitions[s][e]
	if !ok {
		return s, fmt.Errorf("%w: %d from %s", ErrInvalidTransition, e, s)
	}
	return to, nil
}
