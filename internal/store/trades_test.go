package store

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
)

func TestAppendCopiesOrderFields(t *testing.T) {
	orders := NewOrderStore()
	ledger := NewTradeLedger()

	o := orders.Create("RELIANCE", domain.SideBuy, domain.OrderTypeMarket, 10, decimal.RequireFromString("2450.75"), domain.StatusPlaced)
	o, err := orders.SetStatus(o.OrderID, domain.StatusExecuted)
	require.NoError(t, err)

	tr := ledger.Append(o, decimal.RequireFromString("2450.75"))
	assert.True(t, strings.HasPrefix(tr.TradeID, "TRD-"))
	assert.Equal(t, o.OrderID, tr.OrderID)
	assert.Equal(t, o.Symbol, tr.Symbol)
	assert.Equal(t, o.Side, tr.Side)
	assert.Equal(t, o.Quantity, tr.Quantity)
	assert.Equal(t, "2450.75", tr.Price.String())
	assert.False(t, tr.ExecutedAt.Before(o.CreatedAt), "executed_at must not precede created_at")
}

func TestListChronological(t *testing.T) {
	orders := NewOrderStore()
	ledger := NewTradeLedger()

	var ids []string
	for i := 0; i < 5; i++ {
		o := orders.Create("TCS", domain.SideBuy, domain.OrderTypeMarket, 1, decimal.NewFromInt(3500), domain.StatusPlaced)
		tr := ledger.Append(o, decimal.NewFromInt(3500))
		ids = append(ids, tr.TradeID)
	}

	rows := ledger.List(0)
	require.Len(t, rows, 5)
	for i, tr := range rows {
		assert.Equal(t, ids[i], tr.TradeID)
		if i > 0 {
			assert.False(t, tr.ExecutedAt.Before(rows[i-1].ExecutedAt))
		}
	}
}

func TestListLimitKeepsMostRecent(t *testing.T) {
	orders := NewOrderStore()
	ledger := NewTradeLedger()

	for i := 0; i < 5; i++ {
		o := orders.Create("INFY", domain.SideBuy, domain.OrderTypeMarket, 1, decimal.NewFromInt(1500), domain.StatusPlaced)
		ledger.Append(o, decimal.NewFromInt(1500))
	}

	rows := ledger.List(2)
	require.Len(t, rows, 2)
	assert.Equal(t, "TRD-4", rows[0].TradeID)
	assert.Equal(t, "TRD-5", rows[1].TradeID)
	assert.Equal(t, 5, ledger.Len())
}

func TestListIdempotent(t *testing.T) {
	orders := NewOrderStore()
	ledger := NewTradeLedger()
	o := orders.Create("SBIN", domain.SideBuy, domain.OrderTypeMarket, 3, decimal.NewFromInt(800), domain.StatusPlaced)
	ledger.Append(o, decimal.NewFromInt(800))

	assert.Equal(t, ledger.List(0), ledger.List(0))
}
