package strategies

import (
	"fmt"
	"math"

	"gitlab.com/aoterocom/AODepthView/models"
)

const (
	profitStrategyQuantity = 100
	volatilityMultiplier   = 2
)

// ProfitStrategy buys at or under a falling buy target and sells once the best bid reaches the
// sell target, which sits ProfitMargin (scaled by volatility) over the best bid. After it cancels
// a buy it stops buying.
type ProfitStrategy struct {
	params                    Params
	targetBuyPrice            float64
	targetSellPrice           float64
	recentlyCancelledBuyOrder bool
}

func NewProfitStrategy(params Params) ProfitStrategy {
	return ProfitStrategy{
		params:          params,
		targetBuyPrice:  params.BuyTarget,
		targetSellPrice: params.SellTarget,
	}
}

func (s *ProfitStrategy) Name() string {
	return ProfitStrategyName
}

func (s *ProfitStrategy) Evaluate(state models.AlgoState) models.Action {
	if len(state.ChildOrders) > s.params.MaxChildOrders {
		return models.NoAction("child order limit reached")
	}

	bestBid, okBid := state.Depth.BidAt(0)
	bestAsk, okAsk := state.Depth.AskAt(0)
	if !okBid || !okAsk {
		return models.NoAction("missing best bid or ask")
	}

	if spread := state.Depth.Spread(); spread > s.params.SpreadThreshold {
		return models.NoAction(fmt.Sprintf("spread %.2f over %.2f", spread, s.params.SpreadThreshold))
	}

	s.updateTargets(bestBid.Price, bestAsk.Price)

	active := state.ActiveChildOrders()
	if !s.recentlyCancelledBuyOrder && !hasBuyAt(active, bestAsk.Price) &&
		bestAsk.Price <= s.targetBuyPrice && len(active) < s.params.MaxActiveOrders {
		return models.CreateChildOrder(models.SideTypeBuy, profitStrategyQuantity, bestAsk.Price,
			fmt.Sprintf("ask at or under buy target %.2f", s.targetBuyPrice))
	}

	if bestBid.Price >= s.targetSellPrice && len(active) > 0 {
		return models.CreateChildOrder(models.SideTypeSell, profitStrategyQuantity, bestBid.Price,
			fmt.Sprintf("bid at or over sell target %.2f", s.targetSellPrice))
	}

	for _, order := range active {
		if math.Abs(bestBid.Price-order.Price) > s.params.PriceThreshold {
			s.recentlyCancelledBuyOrder = order.Side == models.SideTypeBuy
			return models.CancelChildOrder(order, fmt.Sprintf("%.2f away from best bid",
				math.Abs(bestBid.Price-order.Price)))
		}
	}

	return models.NoAction("")
}

func (s *ProfitStrategy) updateTargets(bestBid float64, bestAsk float64) {
	// volatility is not measured yet, a factor of 1 keeps the margin at its base
	volatility := 1.0
	s.targetBuyPrice = math.Min(s.targetBuyPrice, bestAsk)
	s.targetSellPrice = roundToCents(bestBid * (1 + s.params.ProfitMargin*(1+volatility*volatilityMultiplier)))
}

func hasBuyAt(orders []models.ChildOrder, price float64) bool {
	for _, order := range orders {
		if order.Side == models.SideTypeBuy && order.Price == price {
			return true
		}
	}
	return false
}
