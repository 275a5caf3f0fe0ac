package strategies

import (
	"fmt"
	"math"

	"gitlab.com/aoterocom/AODepthView/models"
)

const spreadStrategyQuantity = 80

// SpreadStrategy joins the best ask while the book is tight and pulls orders that drift more than
// PriceThreshold away from the best bid.
type SpreadStrategy struct {
	params      Params
	targetPrice float64
}

func NewSpreadStrategy(params Params) SpreadStrategy {
	return SpreadStrategy{
		params:      params,
		targetPrice: params.BuyTarget,
	}
}

func (s *SpreadStrategy) Name() string {
	return SpreadStrategyName
}

func (s *SpreadStrategy) Evaluate(state models.AlgoState) models.Action {
	if len(state.ChildOrders) > s.params.MaxChildOrders {
		return models.NoAction("child order limit reached")
	}

	bestBid, okBid := state.Depth.BidAt(0)
	bestAsk, okAsk := state.Depth.AskAt(0)
	if !okBid || !okAsk {
		return models.NoAction("missing best bid or ask")
	}
	_, okBid = state.Depth.BidAt(2)
	_, okAsk = state.Depth.AskAt(2)
	if !okBid || !okAsk {
		return models.NoAction("less than 3 levels on a side")
	}

	if spread := state.Depth.Spread(); spread > s.params.SpreadThreshold {
		return models.NoAction(fmt.Sprintf("spread %.2f over %.2f", spread, s.params.SpreadThreshold))
	}

	active := state.ActiveChildOrders()
	if len(active) < s.params.MaxActiveOrders && bestAsk.Price != s.targetPrice {
		s.targetPrice = bestAsk.Price
		return models.CreateChildOrder(models.SideTypeBuy, spreadStrategyQuantity, bestAsk.Price,
			"new best ask")
	}

	for _, order := range active {
		if math.Abs(bestBid.Price-order.Price) > s.params.PriceThreshold {
			return models.CancelChildOrder(order, fmt.Sprintf("%.2f away from best bid",
				math.Abs(bestBid.Price-order.Price)))
		}
	}

	return models.NoAction("")
}
