package binance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/models"
)

const defaultRetryDelay = 2 * time.Second

type partialDepthServer func(symbol string, levels string, handler binance.WsPartialDepthHandler,
	errHandler binance.ErrHandler) (doneC, stopC chan struct{}, err error)

type BinanceService struct {
	binanceClient *binance.Client
	serveDepth    partialDepthServer
	snapshot      func(ctx context.Context, pair string, levels int) (models.MarketDepth, error)
	retryDelay    time.Duration
}

func NewBinanceService(apiKey, apiSecret string) *BinanceService {
	binanceService := &BinanceService{
		binanceClient: binance.NewClient(apiKey, apiSecret),
		serveDepth:    binance.WsPartialDepthServe,
		retryDelay:    defaultRetryDelay,
	}
	binanceService.snapshot = binanceService.GetDepth
	return binanceService
}

func (binanceService *BinanceService) Name() string {
	return "binance"
}

// GetDepth fetches a REST snapshot of the book.
func (binanceService *BinanceService) GetDepth(ctx context.Context, pair string, levels int) (models.MarketDepth, error) {
	res, err := binanceService.binanceClient.NewDepthService().Symbol(pair).Limit(levels).Do(ctx)
	if err != nil {
		return models.MarketDepth{}, fmt.Errorf("error getting depth for %s: %w", pair, err)
	}

	depth := models.NewMarketDepth(pair, res.LastUpdateID)
	for _, bid := range res.Bids {
		if err := depth.AddBid(bid.Price, bid.Quantity); err != nil {
			return models.MarketDepth{}, err
		}
	}
	for _, ask := range res.Asks {
		if err := depth.AddAsk(ask.Price, ask.Quantity); err != nil {
			return models.MarketDepth{}, err
		}
	}
	return depth, nil
}

// DepthMonitor publishes a REST snapshot and then follows the partial depth stream. When the
// stream fails it is opened again after the retry delay.
func (binanceService *BinanceService) DepthMonitor(ctx context.Context, pair string, levels int,
	out chan<- models.MarketDepth) error {

	depth, err := binanceService.snapshot(ctx, pair, levels)
	if err != nil {
		helpers.Logger.Warnln("binance: " + err.Error())
	} else {
		select {
		case out <- depth:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for {
		err := binanceService.serve(ctx, pair, levels, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("Error in Binance depth monitor on pair %s: %v", pair, err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(binanceService.retryDelay):
		}
	}
}

func (binanceService *BinanceService) serve(ctx context.Context, pair string, levels int,
	out chan<- models.MarketDepth) error {

	errC := make(chan error, 1)
	handler := func(event *binance.WsPartialDepthEvent) {
		depth, err := partialDepthToMarketDepth(pair, event)
		if err != nil {
			helpers.Logger.Warnln("binance: " + err.Error())
			return
		}
		select {
		case out <- depth:
		case <-ctx.Done():
		}
	}
	errHandler := func(err error) {
		select {
		case errC <- err:
		default:
		}
	}

	doneC, stopC, err := binanceService.serveDepth(pair, strconv.Itoa(levels), handler, errHandler)
	if err != nil {
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("binance: depth stream on %s opened (%d levels)", pair, levels))

	select {
	case <-ctx.Done():
		close(stopC)
		<-doneC
		return nil
	case err := <-errC:
		close(stopC)
		<-doneC
		return err
	case <-doneC:
		select {
		case err := <-errC:
			return err
		default:
			return fmt.Errorf("stream closed")
		}
	}
}

func partialDepthToMarketDepth(pair string, event *binance.WsPartialDepthEvent) (models.MarketDepth, error) {
	depth := models.NewMarketDepth(pair, event.LastUpdateID)
	for _, bid := range event.Bids {
		if err := depth.AddBid(bid.Price, bid.Quantity); err != nil {
			return models.MarketDepth{}, err
		}
	}
	for _, ask := range event.Asks {
		if err := depth.AddAsk(ask.Price, ask.Quantity); err != nil {
			return models.MarketDepth{}, err
		}
	}
	return depth, nil
}
