package shop

import (
	"context"
	"strings"

	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
)

// ReadCustomer returns the stored customer record, or an empty one.
func (s *Service) ReadCustomer(ctx context.Context, sid string) models.Customer {
	var c models.Customer
	if !s.load(ctx, sid, storage.KeyCustomer, &c) || c == nil {
		return models.Customer{}
	}
	return c
}

// SaveCustomer stores every named form field, trimmed, replacing the previous
// record. When a name repeats the last value wins.
func (s *Service) SaveCustomer(ctx context.Context, sid string, form map[string][]string) (models.Customer, error) {
	c := models.Customer{}
	for name, values := range form {
		if name == "" || len(values) == 0 {
			continue
		}
		c[name] = strings.TrimSpace(values[len(values)-1])
	}

	if err := s.save(ctx, sid, storage.KeyCustomer, c); err != nil {
		return nil, err
	}
	return c, nil
}
