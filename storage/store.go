// Package storage holds the per-session key/value stores backing the shop.
// Every visitor session owns an isolated namespace of keys, each holding a
// JSON document.
package storage

import (
	"context"
	"errors"
)

// Keys under which the shop persists its documents.
const (
	KeyCart     = "noemie_cart_v2"
	KeyTotals   = "noemie_totals"
	KeyCustomer = "noemie_customer"
	KeyOrder    = "noemie_order"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a session-scoped key/value store.
type Store interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Put(ctx context.Context, session, key string, value []byte) error
	Delete(ctx context.Context, session, key string) error
}
