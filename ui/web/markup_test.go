package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AODepthView/models"
	"gitlab.com/aoterocom/AODepthView/ui/components"
)

func render(t *testing.T, view components.PanelView) string {
	var buf bytes.Buffer
	require.NoError(t, Markup(&buf, view))
	return buf.String()
}

func TestMarkupShell(t *testing.T) {
	html := render(t, components.NewPanel(components.DefaultOptions()).Render(nil))

	assert.Contains(t, html, `<div class="market-depth-container">`)
	assert.Contains(t, html, `<h2 class="headline">My Trading Algo</h2>`)
	assert.Contains(t, html, `<table class="MarketDepthPanel">`)
	assert.Contains(t, html, `<tr><th>Level</th><th colspan="2">Bid</th><th colspan="2">Ask</th></tr>`)
	assert.Contains(t, html, `<tr><th></th><th>Quantity</th><th>Price</th><th>Price</th><th>Quantity</th></tr>`)
	assert.Equal(t, 2, strings.Count(html, "<tr>"))
}

func TestMarkupEscapesHeadline(t *testing.T) {
	options := components.DefaultOptions()
	options.Headline = "<b>BTC</b>"
	html := render(t, components.NewPanel(options).Render(nil))

	assert.Contains(t, html, "&lt;b&gt;BTC&lt;/b&gt;")
	assert.NotContains(t, html, "<b>")
}

func TestMarkupRows(t *testing.T) {
	panel := components.NewPanel(components.DefaultOptions())
	panel.Render([]models.BookLevel{{Level: 1, BidQuantity: 100, Bid: 101.5, Offer: 102, OfferQuantity: 100}})

	html := render(t, panel.Render([]models.BookLevel{
		{Level: 1, BidQuantity: 2500, Bid: 101.75, Offer: 101.5, OfferQuantity: 6000},
		{Level: 2, BidQuantity: 10, Bid: 101.25, Offer: 102.5, OfferQuantity: 10},
	}))

	assert.Equal(t, 4, strings.Count(html, "<tr>"))
	assert.Less(t, strings.Index(html, "101.75"), strings.Index(html, "101.25"), "rows keep input order")

	assert.Contains(t, html, `<div class="blue-bar" style="width: 50%; background-color: #4887bb; color: white; text-align: right; padding: 2px 60px; border-radius: 4px">2500</div>`)
	assert.Contains(t, html, `<div class="red-bar" style="width: 100%; background-color: #e12e2e; color: white; text-align: left; padding: 2px 60px; border-radius: 4px">6000</div>`)
	assert.Contains(t, html, `<span class="arrow-up">↑</span>101.75</td>`)
	assert.Contains(t, html, `<span class="arrow-down">↓</span>101.50</td>`)
	assert.Contains(t, html, `justify-content: center">101.25</td>`, "new row has no arrow")
}
