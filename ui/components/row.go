package components

import (
	"strconv"

	"gitlab.com/aoterocom/AODepthView/models"
)

type RowView struct {
	Level         string
	BidQuantity   QuantityView
	Bid           PriceView
	Offer         PriceView
	OfferQuantity QuantityView
}

// Row renders one book level. The price cells are owned by the row, so a row must stay bound
// to the same table position between renders.
type Row struct {
	bidQuantity   QuantityCell
	bid           PriceCell
	offer         PriceCell
	offerQuantity QuantityCell
}

func NewRow(options Options) *Row {
	return &Row{
		bidQuantity:   NewQuantityCell(models.BarColorBlue, options),
		offerQuantity: NewQuantityCell(models.BarColorRed, options),
	}
}

func (r *Row) Render(level models.BookLevel) RowView {
	return RowView{
		Level:         strconv.Itoa(level.Level),
		BidQuantity:   r.bidQuantity.Render(level.BidQuantity),
		Bid:           r.bid.Render(level.Bid),
		Offer:         r.offer.Render(level.Offer),
		OfferQuantity: r.offerQuantity.Render(level.OfferQuantity),
	}
}
