// Package storage provides order persistence implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/validation"
)

// Compile-time interface check.
var _ domain.OrderStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory order store. Safe for concurrent access.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	log    *logger.Logger
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		orders: make(map[string]*domain.Order),
		log:    log,
	}
}

// Save validates and persists an order. Overwrites if it already exists.
// Orders without an ID get a generated one; a missing status means pending.
func (s *MemoryStore) Save(ctx context.Context, order *domain.Order) error {
	candidate := *order
	if candidate.Status == "" {
		candidate.Status = domain.OrderPending
	}
	if err := validation.Struct(&candidate, domain.ErrInvalidOrder); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order.Status = candidate.Status
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	s.log.Debug("saving order %s (customer=%s, items=%d, status=%s)", order.ID, order.CustomerName, len(order.Items), order.Status)
	s.orders[order.ID] = order
	return nil
}

// Load retrieves an order by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		s.log.Debug("order not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// Delete removes an order by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.orders, id)
	s.log.Debug("deleted order %s", id)
	return nil
}

// List returns every order, by date and then customer name.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CustomerName < out[j].CustomerName
	})
	s.log.Debug("listing orders, count=%d", len(out))
	return out, nil
}
