package paper

import (
	"context"
	"math"
	"math/rand"
	"time"

	"gitlab.com/aoterocom/AODepthView/models"
)

// PaperService simulates a book around a drifting center price. Every tick each level moves by a
// few cents and its quantity is redrawn, which is enough to exercise the arrows and bars.
type PaperService struct {
	interval    time.Duration
	centerPrice float64
	tickSize    float64
	maxQuantity float64
	random      *rand.Rand
	updateID    int64
}

func NewPaperService(interval time.Duration, seed int64) *PaperService {
	return &PaperService{
		interval:    interval,
		centerPrice: 101.50,
		tickSize:    0.25,
		maxQuantity: 7500,
		random:      rand.New(rand.NewSource(seed)),
	}
}

func (paperService *PaperService) Name() string {
	return "paper"
}

func (paperService *PaperService) DepthMonitor(ctx context.Context, pair string, levels int,
	out chan<- models.MarketDepth) error {

	ticker := time.NewTicker(paperService.interval)
	defer ticker.Stop()

	for {
		select {
		case out <- paperService.Snapshot(pair, levels):
		case <-ctx.Done():
			return ctx.Err()
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Snapshot advances the simulation one step and returns the book.
func (paperService *PaperService) Snapshot(pair string, levels int) models.MarketDepth {
	paperService.updateID++
	drift := float64(paperService.random.Intn(3)-1) * paperService.tickSize
	paperService.centerPrice = math.Max(paperService.tickSize*float64(levels+1), paperService.centerPrice+drift)

	depth := models.NewMarketDepth(pair, paperService.updateID)
	for i := 0; i < levels; i++ {
		offset := paperService.tickSize/2 + float64(i)*paperService.tickSize
		depth.Bids = append(depth.Bids, models.PriceLevel{
			Price:    round2(paperService.centerPrice - offset),
			Quantity: paperService.quantity(),
		})
		depth.Asks = append(depth.Asks, models.PriceLevel{
			Price:    round2(paperService.centerPrice + offset),
			Quantity: paperService.quantity(),
		})
	}
	return depth
}

func (paperService *PaperService) quantity() float64 {
	return math.Round(paperService.random.Float64() * paperService.maxQuantity)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
