package models

type BarColor string

const (
	BarColorBlue BarColor = "blue"
	BarColorRed  BarColor = "red"
)

type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Fill returns the css colour of the bar
func (c BarColor) Fill() string {
	if c == BarColorBlue {
		return "#4887bb"
	}
	return "#e12e2e"
}

// Alignment of the quantity text inside the bar. Bids grow towards the price column from the
// right, asks from the left.
func (c BarColor) Alignment() Alignment {
	if c == BarColorBlue {
		return AlignRight
	}
	return AlignLeft
}
