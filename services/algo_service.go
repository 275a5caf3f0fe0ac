package services

import (
	"fmt"

	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/interfaces"
	"gitlab.com/aoterocom/AODepthView/models"
)

// AlgoService runs a strategy over every depth snapshot and applies its decision to the child
// order book.
type AlgoService struct {
	strategy  interfaces.AlgoLogic
	orderBook *OrderBookService
	metrics   *MetricsService
}

func NewAlgoService(strategy interfaces.AlgoLogic, orderBook *OrderBookService, metrics *MetricsService) *AlgoService {
	return &AlgoService{
		strategy:  strategy,
		orderBook: orderBook,
		metrics:   metrics,
	}
}

func (as *AlgoService) Evaluate(depth models.MarketDepth) models.Action {
	helpers.Logger.Debugln(fmt.Sprintf("%s: %s update %d, center %.2f, spread %.2f",
		as.strategy.Name(), depth.Symbol, depth.LastUpdateID, depth.CenterPrice(), depth.Spread()))

	action := as.strategy.Evaluate(models.AlgoState{Depth: depth, ChildOrders: as.orderBook.ChildOrders()})

	switch action.Type {
	case models.ActionCreate:
		order := as.orderBook.AddOpenOrder(action.Side, action.Price, action.Quantity)
		action.OrderID = order.ID
		helpers.Logger.Infoln(fmt.Sprintf("%s: %s order %d, %v @ %.2f (%s)", as.strategy.Name(),
			order.Side, order.ID, order.Quantity, order.Price, action.Reason))
	case models.ActionCancel:
		if !as.orderBook.CancelOrder(action.OrderID) {
			helpers.Logger.Warnln(fmt.Sprintf("%s: order %d is not active", as.strategy.Name(), action.OrderID))
			action = models.NoAction("cancel of inactive order")
			break
		}
		helpers.Logger.Infoln(fmt.Sprintf("%s: cancelled %s order %d @ %.2f (%s)", as.strategy.Name(),
			action.Side, action.OrderID, action.Price, action.Reason))
	default:
		if action.Reason != "" {
			helpers.Logger.Debugln(fmt.Sprintf("%s: no action, %s", as.strategy.Name(), action.Reason))
		}
	}

	as.metrics.AlgoAction(as.strategy.Name(), string(action.Type))
	as.metrics.OpenOrders(as.orderBook.OpenBuyOrdersCount(), as.orderBook.OpenSellOrdersCount())
	return action
}
