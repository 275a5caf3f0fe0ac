package components

import (
	"strconv"

	"gitlab.com/aoterocom/AODepthView/models"
)

type QuantityView struct {
	Quantity float64
	Text     string
	Color    models.BarColor
	Align    models.Alignment
	// WidthPct is the bar length in percent of the cell, within [0, 100].
	WidthPct float64
	Padding  int
}

type QuantityCell struct {
	Color      models.BarColor
	Saturation float64
	Padding    int
}

func NewQuantityCell(color models.BarColor, options Options) QuantityCell {
	return QuantityCell{
		Color:      color,
		Saturation: options.Saturation,
		Padding:    options.CellPadding,
	}
}

func (c QuantityCell) Render(quantity float64) QuantityView {
	return QuantityView{
		Quantity: quantity,
		Text:     strconv.FormatFloat(quantity, 'f', -1, 64),
		Color:    c.Color,
		Align:    c.Color.Alignment(),
		WidthPct: BarWidth(quantity, c.Saturation),
		Padding:  c.Padding,
	}
}

// BarWidth returns min(100, quantity/saturation*100).
func BarWidth(quantity, saturation float64) float64 {
	width := quantity / saturation * 100
	if width > 100 {
		return 100
	}
	return width
}
