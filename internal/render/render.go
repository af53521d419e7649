package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"club-booking/internal/dto/response"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TariffList  = "tariffs.html"
	SeatMap     = "seatmap.html"
	SessionList = "sessions.html"
)

// Renderer builds the HTML fragments the browser swaps into the booking page.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("fragments").Funcs(template.FuncMap{
		"money":     func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"status":    statusLabel,
		"seatClass": seatClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func seatClass(s response.SeatResponse) string {
	classes := []string{"seat"}
	switch {
	case s.Selected:
		classes = append(classes, "seat--selected")
	case s.Occupied:
		classes = append(classes, "seat--occupied")
	case !s.Enabled:
		classes = append(classes, "seat--disabled")
	case s.Selectable:
		classes = append(classes, "seat--free")
	default:
		classes = append(classes, "seat--locked")
	}
	return strings.Join(classes, " ")
}

func statusLabel(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
