package binance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AODepthView/models"
)

func TestPartialDepthToMarketDepth(t *testing.T) {
	event := &binance.WsPartialDepthEvent{
		LastUpdateID: 160,
		Bids: []binance.Bid{
			{Price: "101.50", Quantity: "2500"},
			{Price: "101.25", Quantity: "1200.5"},
		},
		Asks: []binance.Ask{
			{Price: "101.75", Quantity: "6000"},
			{Price: "102.00", Quantity: "10"},
		},
	}

	depth, err := partialDepthToMarketDepth("BTCUSDT", event)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", depth.Symbol)
	assert.Equal(t, int64(160), depth.LastUpdateID)
	assert.Equal(t, []models.BookLevel{
		{Level: 1, BidQuantity: 2500, Bid: 101.50, Offer: 101.75, OfferQuantity: 6000},
		{Level: 2, BidQuantity: 1200.5, Bid: 101.25, Offer: 102.00, OfferQuantity: 10},
	}, depth.Levels(0))
}

func TestPartialDepthToMarketDepthRejectsBadPrice(t *testing.T) {
	event := &binance.WsPartialDepthEvent{
		Bids: []binance.Bid{{Price: "n/a", Quantity: "1"}},
	}

	_, err := partialDepthToMarketDepth("BTCUSDT", event)
	assert.Error(t, err)
}

type fakeStream struct {
	mu       sync.Mutex
	attempts int
	opened   chan int
}

// serve plays one scripted connection per attempt: a failed dial, a stream that reports an error
// after one event, a stream that closes on its own, then a stream that lives until stopped.
func (f *fakeStream) serve(symbol string, levels string, handler binance.WsPartialDepthHandler,
	errHandler binance.ErrHandler) (chan struct{}, chan struct{}, error) {

	f.mu.Lock()
	f.attempts++
	attempt := f.attempts
	f.mu.Unlock()
	f.opened <- attempt

	doneC, stopC := make(chan struct{}), make(chan struct{})
	switch attempt {
	case 1:
		return nil, nil, errors.New("dial tcp: connection refused")
	case 2:
		go func() {
			handler(&binance.WsPartialDepthEvent{
				LastUpdateID: 2,
				Bids:         []binance.Bid{{Price: "100", Quantity: "1"}},
				Asks:         []binance.Ask{{Price: "101", Quantity: "1"}},
			})
			errHandler(errors.New("websocket: close 1006"))
			close(doneC)
		}()
	case 3:
		close(doneC)
	default:
		go func() {
			<-stopC
			close(doneC)
		}()
	}
	return doneC, stopC, nil
}

func newTestService(stream *fakeStream, retryDelay time.Duration) *BinanceService {
	return &BinanceService{
		serveDepth: stream.serve,
		snapshot: func(ctx context.Context, pair string, levels int) (models.MarketDepth, error) {
			depth := models.NewMarketDepth(pair, 1)
			depth.Bids = []models.PriceLevel{{Price: 99, Quantity: 1}}
			depth.Asks = []models.PriceLevel{{Price: 100, Quantity: 1}}
			return depth, nil
		},
		retryDelay: retryDelay,
	}
}

func TestDepthMonitorReopensStreamUntilCancelled(t *testing.T) {
	stream := &fakeStream{opened: make(chan int, 10)}
	binanceService := newTestService(stream, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan models.MarketDepth)
	errC := make(chan error, 1)
	go func() { errC <- binanceService.DepthMonitor(ctx, "BTCUSDT", 5, out) }()

	snapshot := <-out
	assert.Equal(t, int64(1), snapshot.LastUpdateID, "REST snapshot comes first")
	streamed := <-out
	assert.Equal(t, int64(2), streamed.LastUpdateID)

	for want := 1; want <= 4; want++ {
		select {
		case attempt := <-stream.opened:
			assert.Equal(t, want, attempt)
		case <-time.After(time.Second):
			t.Fatalf("stream attempt %d not opened", want)
		}
	}

	cancel()
	select {
	case err := <-errC:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestDepthMonitorStopsDuringRetryDelay(t *testing.T) {
	stream := &fakeStream{opened: make(chan int, 10)}
	binanceService := newTestService(stream, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan models.MarketDepth, 1)
	errC := make(chan error, 1)
	go func() { errC <- binanceService.DepthMonitor(ctx, "BTCUSDT", 5, out) }()

	require.Equal(t, 1, <-stream.opened)
	cancel()

	select {
	case err := <-errC:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("monitor kept waiting for the retry delay")
	}
	stream.mu.Lock()
	defer stream.mu.Unlock()
	assert.Equal(t, 1, stream.attempts)
}
