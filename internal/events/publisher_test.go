package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

func TestNewPublisherDisabledWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, "trades", zap.NewNop())
	assert.Nil(t, p)

	// nil publisher is safe to use
	p.Publish(context.Background(), models.Trade{TradeID: "TRD-1"})
	assert.NoError(t, p.Close())
}

func TestMessageKeyedBySymbol(t *testing.T) {
	tr := models.Trade{
		TradeID:    "TRD-7",
		OrderID:    "ORD-7",
		Symbol:     "RELIANCE",
		Side:       domain.SideBuy,
		Quantity:   10,
		Price:      decimal.RequireFromString("2450.75"),
		ExecutedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	msg, err := message(tr)
	require.NoError(t, err)
	assert.Equal(t, []byte("RELIANCE"), msg.Key)
	assert.Equal(t, tr.ExecutedAt, msg.Time)

	var decoded models.Trade
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, tr.TradeID, decoded.TradeID)
	assert.Equal(t, tr.Symbol, decoded.Symbol)
	assert.True(t, decoded.Price.Equal(tr.Price))
}
