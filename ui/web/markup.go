package web

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"gitlab.com/aoterocom/AODepthView/models"
	"gitlab.com/aoterocom/AODepthView/ui/components"
)

var funcs = template.FuncMap{
	"barStyle":   barStyle,
	"arrowClass": arrowClass,
}

var templates = template.Must(template.New("depthview").Funcs(funcs).Parse(`
{{- define "quantity" -}}
<div class="{{.Color}}-bar" style="{{barStyle .}}">{{.Text}}</div>
{{- end -}}

{{- define "price" -}}
<td style="text-align: center; font-weight: bold; display: flex; align-items: center; justify-content: center">
{{- with arrowClass .Direction}}<span class="{{.}}">{{$.Direction.Glyph}}</span>{{end}}{{.Text}}</td>
{{- end -}}

{{- define "panel" -}}
<div class="market-depth-container">
<h2 class="headline">{{.Headline}}</h2>
<div class="scrollable-container">
<table class="MarketDepthPanel">
<thead>
{{- range .Headers}}
<tr>{{range .}}<th{{if gt .Span 1}} colspan="{{.Span}}"{{end}}>{{.Text}}</th>{{end}}</tr>
{{- end}}
</thead>
<tbody>
{{- range .Rows}}
<tr><td style="padding: 5px; text-align: center">{{.Level}}</td><td>{{template "quantity" .BidQuantity}}</td>{{template "price" .Bid}}{{template "price" .Offer}}<td>{{template "quantity" .OfferQuantity}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
</div>
{{- end -}}

{{- define "page" -}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>{{.Title}}</title>
<style>
.arrow-up { color: #2e9e4f; margin-right: 4px; }
.arrow-down { color: #e12e2e; margin-right: 4px; }
.scrollable-container { max-height: 80vh; overflow-y: auto; }
</style>
</head>
<body>
{{.Panel}}
</body>
</html>
{{- end -}}
`))

// Markup writes the panel as an HTML fragment for embedding in a host page.
func Markup(w io.Writer, view components.PanelView) error {
	if err := templates.ExecuteTemplate(w, "panel", view); err != nil {
		return fmt.Errorf("error rendering panel: %w", err)
	}
	return nil
}

type page struct {
	Title   string
	Refresh int
	Panel   template.HTML
}

func writePage(w io.Writer, title string, refreshSeconds int, panel []byte) error {
	return templates.ExecuteTemplate(w, "page", page{
		Title:   title,
		Refresh: refreshSeconds,
		Panel:   template.HTML(panel),
	})
}

func barStyle(v components.QuantityView) template.CSS {
	return template.CSS(fmt.Sprintf(
		"width: %s%%; background-color: %s; color: white; text-align: %s; padding: 2px %dpx; border-radius: 4px",
		strconv.FormatFloat(v.WidthPct, 'f', -1, 64), v.Color.Fill(), v.Align, v.Padding))
}

func arrowClass(d models.Direction) string {
	switch d {
	case models.DirectionUp:
		return "arrow-up"
	case models.DirectionDown:
		return "arrow-down"
	}
	return ""
}
