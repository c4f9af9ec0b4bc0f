package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Abdullahever182/travel-recomend/internal/ui"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

// PageRenderer projects a ui.State into the complete HTML page.
type PageRenderer struct {
	tmpl  *template.Template
	cards Renderer
}

// pageView is the data handed to the template.
type pageView struct {
	State      ui.State
	Pages      []ui.Page
	Cards      []Card
	ShowSearch bool
}

// NewPageRenderer parses the embedded page template. Result cards are
// produced by cards.
func NewPageRenderer(cards Renderer) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("render.NewPageRenderer: %w", err)
	}
	return &PageRenderer{tmpl: tmpl, cards: cards}, nil
}

// Render writes the page for s to w.
func (r *PageRenderer) Render(w io.Writer, s ui.State) error {
	view := pageView{
		State:      s,
		Pages:      ui.Pages,
		Cards:      r.cards.Render(s.Results),
		ShowSearch: s.SearchVisible(),
	}
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render.PageRenderer.Render: %w", err)
	}
	return nil
}
