package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsPairsSidesInOrder(t *testing.T) {
	depth := NewMarketDepth("BTCUSDT", 1)
	require.NoError(t, depth.AddBid("100.5", "10"))
	require.NoError(t, depth.AddBid("100.0", "20"))
	require.NoError(t, depth.AddBid("99.5", "30"))
	require.NoError(t, depth.AddAsk("101.0", "1"))
	require.NoError(t, depth.AddAsk("101.5", "2"))

	assert.Equal(t, []BookLevel{
		{Level: 1, BidQuantity: 10, Bid: 100.5, Offer: 101.0, OfferQuantity: 1},
		{Level: 2, BidQuantity: 20, Bid: 100.0, Offer: 101.5, OfferQuantity: 2},
	}, depth.Levels(0))
	assert.Len(t, depth.Levels(1), 1)
	assert.Len(t, depth.Levels(10), 2)

	assert.Equal(t, 0.5, depth.Spread())
	assert.Equal(t, 100.75, depth.CenterPrice())
}

func TestLevelsEmptySide(t *testing.T) {
	depth := NewMarketDepth("BTCUSDT", 1)
	require.NoError(t, depth.AddBid("1", "1"))

	assert.Empty(t, depth.Levels(0))
	assert.Equal(t, 0.0, depth.Spread())
}

func TestAddBidRejectsGarbage(t *testing.T) {
	depth := NewMarketDepth("BTCUSDT", 1)
	assert.Error(t, depth.AddBid("1", "x"))
	assert.Error(t, depth.AddAsk("", "1"))
	assert.Empty(t, depth.Bids)
}

func TestBarColor(t *testing.T) {
	assert.Equal(t, AlignRight, BarColorBlue.Alignment())
	assert.Equal(t, AlignLeft, BarColorRed.Alignment())
	assert.Equal(t, "#4887bb", BarColorBlue.Fill())
	assert.Equal(t, "#e12e2e", BarColorRed.Fill())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "↑", DirectionUp.Glyph())
	assert.Equal(t, "↓", DirectionDown.Glyph())
	assert.Equal(t, "", DirectionNone.Glyph())
	assert.Equal(t, "down", DirectionDown.String())
}

func TestBidAtAskAt(t *testing.T) {
	depth := NewMarketDepth("BTCUSDT", 1)
	require.NoError(t, depth.AddBid("100", "1"))
	require.NoError(t, depth.AddAsk("101", "2"))

	bid, ok := depth.BidAt(0)
	assert.True(t, ok)
	assert.Equal(t, 100.0, bid.Price)
	ask, ok := depth.AskAt(0)
	assert.True(t, ok)
	assert.Equal(t, 2.0, ask.Quantity)

	_, ok = depth.BidAt(1)
	assert.False(t, ok)
	_, ok = depth.AskAt(-1)
	assert.False(t, ok)
}

func TestAlgoStateActiveChildOrders(t *testing.T) {
	state := AlgoState{ChildOrders: []ChildOrder{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}}

	active := state.ActiveChildOrders()
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)

	cancel := CancelChildOrder(active[1], "moved")
	assert.Equal(t, ActionCancel, cancel.Type)
	assert.Equal(t, int64(3), cancel.OrderID)
}
