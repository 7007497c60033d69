// Package store provides the volatile payment registry storage.
package store

import (
	"context"
	"sync"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/payment/models"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/platform/sentinel"
)

// InMemory keeps at most one payment per payor email, guarded by its own
// RWMutex. The lock is independent of the user store's so a payment write
// never nests inside a user-registry lock.
type InMemory struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
}

func NewInMemory() *InMemory {
	return &InMemory{payments: make(map[string]models.Payment)}
}

// Save stores the payment under its payor email, replacing any prior record
// for that payor.
func (s *InMemory) Save(_ context.Context, payment models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.PayorEmail] = payment
	return nil
}

// FindByPayor returns the current payment for the payor, or ErrNotFound.
func (s *InMemory) FindByPayor(_ context.Context, payorEmail string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if payment, ok := s.payments[payorEmail]; ok {
		return payment, nil
	}
	return models.Payment{}, sentinel.ErrNotFound
}

// List returns all current payments in unspecified order.
func (s *InMemory) List(_ context.Context) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Payment, 0, len(s.payments))
	for _, payment := range s.payments {
		out = append(out, payment)
	}
	return out, nil
}
