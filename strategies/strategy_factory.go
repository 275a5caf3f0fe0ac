package strategies

import (
	"fmt"

	"gitlab.com/aoterocom/AODepthView/interfaces"
)

const (
	SpreadStrategyName = "spread"
	ProfitStrategyName = "profit"
)

func StrategyFactory(strategyName string, params Params) (interfaces.AlgoLogic, error) {

	switch strategyName {
	case SpreadStrategyName:
		spreadStrategy := NewSpreadStrategy(params)
		return interfaces.AlgoLogic(&spreadStrategy), nil
	case ProfitStrategyName:
		profitStrategy := NewProfitStrategy(params)
		return interfaces.AlgoLogic(&profitStrategy), nil
	default:
		return nil, fmt.Errorf("%s is not a known strategy", strategyName)
	}

}
