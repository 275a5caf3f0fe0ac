package strategies

import "math"

// Params holds the thresholds shared by the depth strategies.
type Params struct {
	SpreadThreshold float64
	PriceThreshold  float64
	MaxChildOrders  int
	MaxActiveOrders int
	BuyTarget       float64
	SellTarget      float64
	ProfitMargin    float64
}

func DefaultParams() Params {
	return Params{
		SpreadThreshold: 5,
		PriceThreshold:  3,
		MaxChildOrders:  20,
		MaxActiveOrders: 6,
		BuyTarget:       100,
		SellTarget:      102,
		ProfitMargin:    0.005,
	}
}

func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}
