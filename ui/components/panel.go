package components

import "gitlab.com/aoterocom/AODepthView/models"

// HeaderCell is a table heading spanning Span columns.
type HeaderCell struct {
	Text string
	Span int
}

type PanelView struct {
	Headline string
	Headers  [][]HeaderCell
	Rows     []RowView
}

var headers = [][]HeaderCell{
	{{Text: "Level", Span: 1}, {Text: "Bid", Span: 2}, {Text: "Ask", Span: 2}},
	{{Text: "", Span: 1}, {Text: "Quantity", Span: 1}, {Text: "Price", Span: 1}, {Text: "Price", Span: 1}, {Text: "Quantity", Span: 1}},
}

// Panel owns the table shell and one Row per position.
type Panel struct {
	options Options
	rows    []*Row
}

func NewPanel(options Options) *Panel {
	return &Panel{options: options}
}

func (p *Panel) Options() Options {
	return p.options
}

// Render projects levels into rows in the order given. Row i keeps its price memory across
// renders; rows beyond len(levels) are dropped, so a position that reappears starts fresh.
func (p *Panel) Render(levels []models.BookLevel) PanelView {
	if len(levels) < len(p.rows) {
		for i := len(levels); i < len(p.rows); i++ {
			p.rows[i] = nil
		}
		p.rows = p.rows[:len(levels)]
	}
	for len(p.rows) < len(levels) {
		p.rows = append(p.rows, NewRow(p.options))
	}

	view := PanelView{
		Headline: p.options.Headline,
		Headers:  headers,
		Rows:     make([]RowView, len(levels)),
	}
	for i, level := range levels {
		view.Rows[i] = p.rows[i].Render(level)
	}
	return view
}

// Moves returns how many price cells of the view carry an up or down indicator.
func (v PanelView) Moves() (up int, down int) {
	for _, row := range v.Rows {
		for _, price := range []PriceView{row.Bid, row.Offer} {
			switch price.Direction {
			case models.DirectionUp:
				up++
			case models.DirectionDown:
				down++
			}
		}
	}
	return up, down
}
