package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// ContentRenderer turns a slide's body text into terminal output at a given width.
type ContentRenderer interface {
	Render(text string, width int) string
}

// PlainRenderer word-wraps text with the content style.
type PlainRenderer struct{}

// Render implements ContentRenderer.
func (PlainRenderer) Render(text string, width int) string {
	return Styles.Content.Width(width).Render(text)
}

// MarkdownRenderer renders body text as markdown with glamour.
// Renderers are built lazily per wrap width.
type MarkdownRenderer struct {
	byWidth map[int]*glamour.TermRenderer
	options []glamour.TermRendererOption
}

// NewMarkdownRenderer uses glamour's auto style unless options are given.
func NewMarkdownRenderer(options ...glamour.TermRendererOption) *MarkdownRenderer {
	if len(options) == 0 {
		options = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	return &MarkdownRenderer{
		byWidth: make(map[int]*glamour.TermRenderer),
		options: options,
	}
}

// Render implements ContentRenderer. On a glamour error it falls back to plain text.
func (m *MarkdownRenderer) Render(text string, width int) string {
	r, ok := m.byWidth[width]
	if !ok {
		opts := append([]glamour.TermRendererOption{}, m.options...)
		opts = append(opts, glamour.WithWordWrap(width))
		var err error
		r, err = glamour.NewTermRenderer(opts...)
		if err != nil {
			return PlainRenderer{}.Render(text, width)
		}
		m.byWidth[width] = r
	}
	out, err := r.Render(text)
	if err != nil {
		return PlainRenderer{}.Render(text, width)
	}
	// glamour pads every line with a left margin and surrounds the block with blank lines.
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}
