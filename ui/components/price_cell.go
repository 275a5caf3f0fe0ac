package components

import (
	"github.com/shopspring/decimal"
	"gitlab.com/aoterocom/AODepthView/models"
)

type PriceView struct {
	Price     float64
	Text      string
	Direction models.Direction
}

// PriceCell remembers the price of its previous render to show which way it moved.
type PriceCell struct {
	last   float64
	seeded bool
}

func (c *PriceCell) Render(price float64) PriceView {
	if !c.seeded {
		c.last = price
		c.seeded = true
	}

	direction := models.DirectionNone
	if price > c.last {
		direction = models.DirectionUp
	} else if price < c.last {
		direction = models.DirectionDown
	}
	c.last = price

	return PriceView{
		Price:     price,
		Text:      decimal.NewFromFloat(price).StringFixed(2),
		Direction: direction,
	}
}
