package terminal

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/models"
	"gitlab.com/aoterocom/AODepthView/services"
	"gitlab.com/aoterocom/AODepthView/ui/components"
)

const (
	defaultBarWidth = 20
	headerLines     = 2
	borderLines     = 2
)

type UserInterface struct {
	panel    *components.Panel
	metrics  *services.MetricsService
	barWidth int
	offset   int
	view     components.PanelView
}

func NewUserInterface(panel *components.Panel, metrics *services.MetricsService) *UserInterface {
	return &UserInterface{
		panel:    panel,
		metrics:  metrics,
		barWidth: defaultBarWidth,
	}
}

// Run owns the terminal until q or <C-c> is pressed, ctx is done or rows is closed. Every
// received slice of rows renders the panel once.
func (ui *UserInterface) Run(ctx context.Context, rows <-chan []models.BookLevel) error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.Update(nil)
	ui.draw()

	uiEvents := termui.PollEvents()
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				helpers.Logger.Infoln("Exited by keyboard interrupt")
				return nil
			case "j", "<Down>":
				ui.Scroll(1)
				ui.draw()
			case "k", "<Up>":
				ui.Scroll(-1)
				ui.draw()
			case "<Resize>":
				termui.Clear()
				ui.draw()
			}
		case levels, ok := <-rows:
			if !ok {
				return nil
			}
			ui.Update(levels)
			ui.draw()
		case <-ctx.Done():
			return nil
		}
	}
}

// Update renders the panel with a new set of rows.
func (ui *UserInterface) Update(levels []models.BookLevel) {
	ui.view = ui.panel.Render(levels)
	up, down := ui.view.Moves()
	ui.metrics.Render("terminal", len(ui.view.Rows), up, down)
	ui.Scroll(0)
}

// Scroll moves the first visible row by delta, kept within the rendered rows.
func (ui *UserInterface) Scroll(delta int) {
	ui.offset += delta
	if ui.offset > len(ui.view.Rows)-1 {
		ui.offset = len(ui.view.Rows) - 1
	}
	if ui.offset < 0 {
		ui.offset = 0
	}
}

func (ui *UserInterface) draw() {
	width, height := termui.TerminalDimensions()
	visible := height - borderLines - headerLines
	if visible < 1 {
		visible = 1
	}

	table := widgets.NewTable()
	table.Title = ui.view.Headline
	table.TitleStyle = termui.NewStyle(termui.ColorYellow, termui.ColorClear, termui.ModifierBold)
	table.BorderStyle.Fg = termui.ColorYellow
	table.TextAlignment = termui.AlignCenter
	table.RowSeparator = false
	table.RowStyles = map[int]termui.Style{
		0: termui.NewStyle(termui.ColorWhite, termui.ColorClear, termui.ModifierBold),
		1: termui.NewStyle(termui.ColorWhite, termui.ColorClear, termui.ModifierBold),
	}
	table.Rows = TableRows(ui.view, ui.offset, visible, ui.barWidth)
	table.SetRect(0, 0, width, height)

	termui.Render(table)
}

// TableRows lays out the header rows followed by at most visible body rows starting at offset.
func TableRows(view components.PanelView, offset int, visible int, barWidth int) [][]string {
	rows := make([][]string, 0, headerLines+visible)
	for _, header := range view.Headers {
		var cells []string
		for _, cell := range header {
			cells = append(cells, cell.Text)
			for i := 1; i < cell.Span; i++ {
				cells = append(cells, "")
			}
		}
		rows = append(rows, cells)
	}

	for i := offset; i < len(view.Rows) && i < offset+visible; i++ {
		row := view.Rows[i]
		rows = append(rows, []string{
			row.Level,
			QuantityText(row.BidQuantity, barWidth),
			PriceText(row.Bid),
			PriceText(row.Offer),
			QuantityText(row.OfferQuantity, barWidth),
		})
	}
	return rows
}

// BarFill is the number of bar glyphs for a width percentage.
func BarFill(widthPct float64, barWidth int) int {
	fill := int(math.Round(widthPct * float64(barWidth) / 100))
	if fill > barWidth {
		return barWidth
	}
	if fill < 0 {
		return 0
	}
	return fill
}

// QuantityText draws the bar next to the quantity. Bid bars end at the price column, ask bars
// start at it.
func QuantityText(v components.QuantityView, barWidth int) string {
	fill := BarFill(v.WidthPct, barWidth)
	gap := strings.Repeat(" ", barWidth-fill)
	bar := ""
	if fill > 0 {
		bar = fmt.Sprintf("[%s](fg:%s)", strings.Repeat("█", fill), v.Color)
	}

	if v.Align == models.AlignRight {
		return v.Text + " " + gap + bar
	}
	return bar + gap + " " + v.Text
}

func PriceText(v components.PriceView) string {
	switch v.Direction {
	case models.DirectionUp:
		return fmt.Sprintf("[%s](fg:green) %s", v.Direction.Glyph(), v.Text)
	case models.DirectionDown:
		return fmt.Sprintf("[%s](fg:red) %s", v.Direction.Glyph(), v.Text)
	}
	return v.Text
}
