package models

import (
	"fmt"
	"strconv"
)

// PriceLevel is a single price/quantity pair on one side of the book.
type PriceLevel struct {
	Price    float64
	Quantity float64
}

type MarketDepth struct {
	Symbol       string
	LastUpdateID int64
	Bids         []PriceLevel
	Asks         []PriceLevel
}

func NewMarketDepth(symbol string, lastUpdateID int64) MarketDepth {
	return MarketDepth{
		Symbol:       symbol,
		LastUpdateID: lastUpdateID,
	}
}

// AddBid parses an exchange price level given as strings and appends it to the bid side.
func (s *MarketDepth) AddBid(price, quantity string) error {
	level, err := parsePriceLevel(price, quantity)
	if err != nil {
		return fmt.Errorf("bid: %w", err)
	}
	s.Bids = append(s.Bids, level)
	return nil
}

// AddAsk parses an exchange price level given as strings and appends it to the ask side.
func (s *MarketDepth) AddAsk(price, quantity string) error {
	level, err := parsePriceLevel(price, quantity)
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}
	s.Asks = append(s.Asks, level)
	return nil
}

// Levels pairs bid[i] with ask[i] as ranked rows, keeping the order given by the provider.
// The result is cut to the shorter side and to max when max > 0.
func (s *MarketDepth) Levels(max int) []BookLevel {
	n := len(s.Bids)
	if len(s.Asks) < n {
		n = len(s.Asks)
	}
	if max > 0 && max < n {
		n = max
	}

	levels := make([]BookLevel, 0, n)
	for i := 0; i < n; i++ {
		levels = append(levels, BookLevel{
			Level:         i + 1,
			BidQuantity:   s.Bids[i].Quantity,
			Bid:           s.Bids[i].Price,
			Offer:         s.Asks[i].Price,
			OfferQuantity: s.Asks[i].Quantity,
		})
	}
	return levels
}

// BidAt returns the bid level at depth i, best first.
func (s *MarketDepth) BidAt(i int) (PriceLevel, bool) {
	if i < 0 || i >= len(s.Bids) {
		return PriceLevel{}, false
	}
	return s.Bids[i], true
}

func (s *MarketDepth) AskAt(i int) (PriceLevel, bool) {
	if i < 0 || i >= len(s.Asks) {
		return PriceLevel{}, false
	}
	return s.Asks[i], true
}

// Spread between the best ask and the best bid, zero when a side is empty
func (s *MarketDepth) Spread() float64 {
	if len(s.Bids) == 0 || len(s.Asks) == 0 {
		return 0
	}
	return s.Asks[0].Price - s.Bids[0].Price
}

func (s *MarketDepth) CenterPrice() float64 {
	if len(s.Bids) == 0 || len(s.Asks) == 0 {
		return 0
	}
	return s.Asks[0].Price - s.Spread()/2
}

func parsePriceLevel(price, quantity string) (PriceLevel, error) {
	p, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return PriceLevel{}, fmt.Errorf("parsing price %q: %w", price, err)
	}
	q, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return PriceLevel{}, fmt.Errorf("parsing quantity %q: %w", quantity, err)
	}
	return PriceLevel{Price: p, Quantity: q}, nil
}
