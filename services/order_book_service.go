package services

import (
	"sync"

	"gitlab.com/aoterocom/AODepthView/models"
)

// OrderBookService keeps the algo's child orders. Orders are not sent anywhere; they stay active
// until cancelled.
type OrderBookService struct {
	childOrders []models.ChildOrder
	nextID      int64
	mutex       *sync.Mutex
}

func NewOrderBookService() *OrderBookService {
	return &OrderBookService{mutex: &sync.Mutex{}}
}

func (ob *OrderBookService) AddOpenOrder(side models.SideType, price float64, quantity float64) models.ChildOrder {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	ob.nextID++
	order := models.ChildOrder{ID: ob.nextID, Side: side, Price: price, Quantity: quantity, Active: true}
	ob.childOrders = append(ob.childOrders, order)
	return order
}

// CancelOrder marks the order inactive. It reports false for unknown or already cancelled orders.
func (ob *OrderBookService) CancelOrder(id int64) bool {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	for i := range ob.childOrders {
		if ob.childOrders[i].ID == id && ob.childOrders[i].Active {
			ob.childOrders[i].Active = false
			return true
		}
	}
	return false
}

func (ob *OrderBookService) ChildOrders() []models.ChildOrder {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	return append([]models.ChildOrder(nil), ob.childOrders...)
}

func (ob *OrderBookService) OpenSellOrdersCount() int {
	return ob.openOrdersCount(models.SideTypeSell)
}

func (ob *OrderBookService) OpenBuyOrdersCount() int {
	return ob.openOrdersCount(models.SideTypeBuy)
}

func (ob *OrderBookService) openOrdersCount(side models.SideType) int {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	count := 0
	for _, order := range ob.childOrders {
		if order.Active && order.Side == side {
			count++
		}
	}
	return count
}
