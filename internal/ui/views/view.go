package views

import (
	"fmt"
	"strings"

	"searchbox/internal/domain"
	"searchbox/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string // rendered textinput, prompt excluded
	Query          domain.QueryState
	CursorIndex    int // highlighted dropdown row, -1 for none
	ShowPrices     bool
	ShowThumbnails bool
	StatusMessage  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("searchbox"))
	content.WriteString("\n")

	input := r.styles.Prompt.Render("Search: ") + state.InputView
	content.WriteString(r.styles.InputBox.Render(input))
	content.WriteString("\n")

	switch {
	case state.Query.IsLoading:
		content.WriteString(r.styles.Loading.Render("Searching…"))
		content.WriteString("\n")
	case state.Query.ErrorMessage != "":
		content.WriteString(r.styles.Error.Render(state.Query.ErrorMessage))
		content.WriteString("\n")
	case state.Query.DropdownVisible:
		content.WriteString(r.renderDropdown(state))
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Count.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("↑/↓ navigate · enter select · esc dismiss · f1 help · ctrl+c quit"))

	return content.String()
}

// renderDropdown renders the suggestion rows below the input
func (r *Renderer) renderDropdown(state ViewState) string {
	var b strings.Builder

	for i, product := range state.Query.Results {
		row := r.renderTitle(product.Title, state.Query.InputText)
		if state.ShowPrices && product.Price > 0 {
			row += "  " + r.styles.Price.Render(fmt.Sprintf("$%.2f", product.Price))
		}
		if product.Brand != "" {
			row += "  " + r.styles.Brand.Render(product.Brand)
		}
		if state.ShowThumbnails && product.Thumbnail != "" {
			row += "  " + r.styles.Thumb.Render(product.Thumbnail)
		}

		prefix := "  "
		if i == state.CursorIndex {
			prefix = "> "
			row = r.styles.RowSelected.Render(row)
		}
		b.WriteString(prefix + row + "\n")
	}

	count := len(state.Query.Results)
	label := "results"
	if count == 1 {
		label = "result"
	}
	b.WriteString(r.styles.Count.Render(fmt.Sprintf("%d %s", count, label)))
	b.WriteString("\n")

	return b.String()
}

// renderTitle styles a result title, emphasizing every case-insensitive
// occurrence of the current input text
func (r *Renderer) renderTitle(title, query string) string {
	segments := logic.HighlightSegments(title, query)

	var parts []string
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if seg.Match {
			parts = append(parts, r.styles.Highlight.Render(seg.Text))
		} else {
			parts = append(parts, r.styles.Row.Render(seg.Text))
		}
	}
	return strings.Join(parts, "")
}
