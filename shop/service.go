// Package shop implements the storefront's cart and checkout pipeline on top
// of a session-scoped storage.Store. Every operation works on one visitor
// session and reads or writes whole documents.
package shop

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/apperror"
	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
	"github.com/go-playground/validator/v10"
)

// Recorder receives business events for metrics.
type Recorder interface {
	ItemAdded(qty int)
	OrderCreated()
	PaymentRejected(field string)
}

type nopRecorder struct{}

func (nopRecorder) ItemAdded(int)          {}
func (nopRecorder) OrderCreated()          {}
func (nopRecorder) PaymentRejected(string) {}

type Options struct {
	Shipping ShippingPolicy
	// Timeout bounds every storage call. Zero means 10s.
	Timeout  time.Duration
	Now      func() time.Time
	Recorder Recorder
	Catalog  Catalog
}

// Service is the repository object injected into every page handler.
type Service struct {
	store    storage.Store
	shipping ShippingPolicy
	timeout  time.Duration
	now      func() time.Time
	rec      Recorder
	validate *validator.Validate
	catalog  Catalog
}

func New(store storage.Store, opts Options) *Service {
	s := &Service{
		store:    store,
		shipping: opts.Shipping,
		timeout:  opts.Timeout,
		now:      opts.Now,
		rec:      opts.Recorder,
		validate: newPaymentValidator(),
		catalog:  opts.Catalog,
	}
	if s.timeout <= 0 {
		s.timeout = 10 * time.Second
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rec == nil {
		s.rec = nopRecorder{}
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	return s
}

// Catalog returns the products offered on the catalog page.
func (s *Service) Catalog() Catalog {
	return s.catalog
}

// load decodes the document under key into dst. It reports false when the key
// is absent, unreadable or corrupt; those cases are never surfaced.
func (s *Service) load(ctx context.Context, sid, key string, dst any) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.store.Get(ctx, sid, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn().Err(err).Str("session", sid).Str("key", key).Msg("storage read failed, using default")
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn().Err(err).Str("session", sid).Str("key", key).Msg("stored value is corrupt, using default")
		return false
	}
	return true
}

func (s *Service) save(ctx context.Context, sid, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Put(ctx, sid, key, raw); err != nil {
		logger.Error().Err(err).Str("session", sid).Str("key", key).Msg("storage write failed")
		return apperror.WrapStorage(err)
	}
	return nil
}
