package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s := NewOrderStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		o := s.Create("RELIANCE", domain.SideBuy, domain.OrderTypeMarket, 1, decimal.NewFromInt(100), domain.StatusPlaced)
		assert.True(t, strings.HasPrefix(o.OrderID, "ORD-"))
		assert.False(t, seen[o.OrderID], "duplicate id %s", o.OrderID)
		seen[o.OrderID] = true
		assert.False(t, o.CreatedAt.IsZero())
	}
}

func TestGetRoundTrip(t *testing.T) {
	s := NewOrderStore()
	created := s.Create("TCS", domain.SideSell, domain.OrderTypeLimit, 5, decimal.NewFromInt(3600), domain.StatusPlaced)

	got, err := s.Get(created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUnknownOrder(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get("ORD-999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestSetStatusForwardOnly(t *testing.T) {
	s := NewOrderStore()
	o := s.Create("INFY", domain.SideBuy, domain.OrderTypeMarket, 1, decimal.NewFromInt(1500), domain.StatusPlaced)

	executed, err := s.SetStatus(o.OrderID, domain.StatusExecuted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, executed.Status)

	// terminal states are never left
	_, err = s.SetStatus(o.OrderID, domain.StatusCancelled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	got, err := s.Get(o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, got.Status)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	s := NewOrderStore()

	_, err := s.SetStatus("ORD-1", domain.StatusExecuted)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestListNewestFirst(t *testing.T) {
	s := NewOrderStore()
	first := s.Create("RELIANCE", domain.SideBuy, domain.OrderTypeMarket, 1, decimal.NewFromInt(100), domain.StatusPlaced)
	second := s.Create("TCS", domain.SideBuy, domain.OrderTypeMarket, 2, decimal.NewFromInt(200), domain.StatusPlaced)

	rows := s.List()
	require.Len(t, rows, 2)
	assert.Equal(t, second.OrderID, rows[0].OrderID)
	assert.Equal(t, first.OrderID, rows[1].OrderID)
}
