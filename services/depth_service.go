package services

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/interfaces"
	"gitlab.com/aoterocom/AODepthView/models"
)

// DepthService follows a provider and turns each snapshot into table rows.
type DepthService struct {
	provider interfaces.DepthProvider
	metrics  *MetricsService
	pair     string
	levels   int
	algo     *AlgoService
}

func NewDepthService(provider interfaces.DepthProvider, metrics *MetricsService, pair string, levels int) *DepthService {
	return &DepthService{
		provider: provider,
		metrics:  metrics,
		pair:     pair,
		levels:   levels,
	}
}

// WithAlgo makes every snapshot go through the algo before its rows are forwarded.
func (ds *DepthService) WithAlgo(algo *AlgoService) *DepthService {
	ds.algo = algo
	return ds
}

// Start runs the provider in the background. The returned channel carries the rows of every
// snapshot and is closed when the provider returns; a provider failure other than cancellation
// is reported on the error channel.
func (ds *DepthService) Start(ctx context.Context) (<-chan []models.BookLevel, <-chan error) {
	snapshots := make(chan models.MarketDepth)
	rows := make(chan []models.BookLevel)
	errC := make(chan error, 1)

	go func() {
		defer close(snapshots)
		err := ds.provider.DepthMonitor(ctx, ds.pair, ds.levels, snapshots)
		if err != nil && !errors.Is(err, context.Canceled) {
			errC <- fmt.Errorf("%s depth monitor: %w", ds.provider.Name(), err)
		}
		close(errC)
	}()

	go func() {
		defer close(rows)
		for snapshot := range snapshots {
			ds.metrics.Snapshot(ds.provider.Name())
			levels := snapshot.Levels(ds.levels)
			helpers.Logger.Traceln(fmt.Sprintf("depth: %s update %d, %d levels",
				snapshot.Symbol, snapshot.LastUpdateID, len(levels)))
			if ds.algo != nil {
				ds.algo.Evaluate(snapshot)
			}

			select {
			case rows <- levels:
			case <-ctx.Done():
				// drain so the provider can observe cancellation
				for range snapshots {
				}
				return
			}
		}
	}()

	return rows, errC
}
