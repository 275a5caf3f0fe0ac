package mocks

import (
	"context"

	"gitlab.com/aoterocom/AODepthView/models"
)

// ProviderMock replays a fixed list of snapshots and then waits for cancellation.
type ProviderMock struct {
	Snapshots []models.MarketDepth
	Err       error
	Pairs     []string
}

func NewProviderMock(snapshots ...models.MarketDepth) *ProviderMock {
	return &ProviderMock{Snapshots: snapshots}
}

func (providerMock *ProviderMock) Name() string {
	return "mock"
}

func (providerMock *ProviderMock) DepthMonitor(ctx context.Context, pair string, levels int,
	out chan<- models.MarketDepth) error {
	providerMock.Pairs = append(providerMock.Pairs, pair)
	if providerMock.Err != nil {
		return providerMock.Err
	}

	for _, snapshot := range providerMock.Snapshots {
		select {
		case out <- snapshot:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	<-ctx.Done()
	return ctx.Err()
}

// Depth builds a snapshot from bid and ask prices with a constant quantity.
func Depth(bids []float64, asks []float64, quantity float64) models.MarketDepth {
	depth := models.NewMarketDepth("BTCUSDT", 1)
	for _, price := range bids {
		depth.Bids = append(depth.Bids, models.PriceLevel{Price: price, Quantity: quantity})
	}
	for _, price := range asks {
		depth.Asks = append(depth.Asks, models.PriceLevel{Price: price, Quantity: quantity})
	}
	return depth
}
