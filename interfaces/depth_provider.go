package interfaces

import (
	"context"

	"gitlab.com/aoterocom/AODepthView/models"
)

type DepthProvider interface {
	Name() string
	// DepthMonitor sends snapshots of the top levels of pair to out until ctx is done.
	DepthMonitor(ctx context.Context, pair string, levels int, out chan<- models.MarketDepth) error
}
