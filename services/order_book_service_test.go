package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AODepthView/models"
)

func TestOrderBookServiceAddAndCancel(t *testing.T) {
	orderBook := NewOrderBookService()

	first := orderBook.AddOpenOrder(models.SideTypeBuy, 101, 80)
	second := orderBook.AddOpenOrder(models.SideTypeSell, 102, 100)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 1, orderBook.OpenBuyOrdersCount())
	assert.Equal(t, 1, orderBook.OpenSellOrdersCount())

	assert.True(t, orderBook.CancelOrder(first.ID))
	assert.False(t, orderBook.CancelOrder(first.ID))
	assert.False(t, orderBook.CancelOrder(42))
	assert.Equal(t, 0, orderBook.OpenBuyOrdersCount())

	orders := orderBook.ChildOrders()
	assert.Len(t, orders, 2)
	assert.False(t, orders[0].Active)
	assert.True(t, orders[1].Active)

	// callers get a copy
	orders[1].Active = false
	assert.Equal(t, 1, orderBook.OpenSellOrdersCount())
}
