package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AODepthView/models"
)

func TestQuantityCellBid(t *testing.T) {
	cell := NewQuantityCell(models.BarColorBlue, DefaultOptions())

	view := cell.Render(2500)
	assert.Equal(t, 50.0, view.WidthPct)
	assert.Equal(t, models.AlignRight, view.Align)
	assert.Equal(t, "#4887bb", view.Color.Fill())
	assert.Equal(t, "2500", view.Text)
	assert.Equal(t, 60, view.Padding)

	assert.Equal(t, 100.0, cell.Render(6000).WidthPct)
}

func TestQuantityCellAsk(t *testing.T) {
	cell := NewQuantityCell(models.BarColorRed, DefaultOptions())

	view := cell.Render(1234.5)
	assert.Equal(t, models.AlignLeft, view.Align)
	assert.Equal(t, "#e12e2e", view.Color.Fill())
	assert.Equal(t, "1234.5", view.Text)
	assert.InDelta(t, 24.69, view.WidthPct, 1e-9)
}

func TestBarWidthIsMonotonicAndClamped(t *testing.T) {
	previous := -1.0
	for q := 0.0; q <= 8000; q += 250 {
		width := BarWidth(q, DefaultSaturation)
		assert.GreaterOrEqual(t, width, previous, "quantity %v", q)
		assert.LessOrEqual(t, width, 100.0)
		if q >= DefaultSaturation {
			assert.Equal(t, 100.0, width)
		}
		previous = width
	}
	assert.Equal(t, 0.0, BarWidth(0, DefaultSaturation))
	assert.Equal(t, 100.0, BarWidth(5000, DefaultSaturation))
}

func TestBarWidthCustomSaturation(t *testing.T) {
	assert.Equal(t, 50.0, BarWidth(50, 100))
	assert.Equal(t, 100.0, BarWidth(150, 100))
}
