package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// OrderStore holds every order created during the process lifetime.
// Orders are never deleted; their status only moves forward.
type OrderStore struct {
	mu   sync.RWMutex
	seq  atomic.Int64
	byID map[string]*models.Order
	ids  []string // creation order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]*models.Order)}
}

// Create records a new order with a fresh ORD-<n> identifier and the
// current timestamp. Field values come from the execution engine's
// decision; the store itself applies no business rules.
func (s *OrderStore) Create(symbol string, side domain.Side, orderType domain.OrderType, quantity int64, price decimal.Decimal, status domain.OrderStatus) models.Order {
	o := &models.Order{
		OrderID:   fmt.Sprintf("ORD-%d", s.seq.Add(1)),
		Symbol:    symbol,
		Side:      side,
		OrderType: orderType,
		Quantity:  quantity,
		Price:     price,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.byID[o.OrderID] = o
	s.ids = append(s.ids, o.OrderID)
	s.mu.Unlock()
	return *o
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, domain.ErrOrderNotFound
	}
	return *o, nil
}

// SetStatus advances an order's status. Only legal forward transitions
// are applied; terminal states are never left.
func (s *OrderStore) SetStatus(id string, next domain.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, domain.ErrOrderNotFound
	}
	if !o.Status.CanTransition(next) {
		return models.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return *o, nil
}

// List returns all orders, newest first.
func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.ids))
	for i := len(s.ids) - 1; i >= 0; i-- {
		out = append(out, *s.byID[s.ids[i]])
	}
	return out
}
