package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for card borders, bullet markers
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Darker gray - for disabled controls
	ColorSubtitle  = "147" // Lavender - for subtitles
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Slide card
	Card       lipgloss.Style // Rounded box around the active slide
	Title      lipgloss.Style // Bold accent color
	TitleHero  lipgloss.Style // Intro/outro titles
	Subtitle   lipgloss.Style // Lighter, italic
	Content    lipgloss.Style // Body text
	BulletMark lipgloss.Style // "•" in front of each bullet
	Bullet     lipgloss.Style // Bullet text
	BulletList lipgloss.Style // Box around the bullet list
	Image      lipgloss.Style // Framed image reference

	// Chrome
	Header         lipgloss.Style // Deck title row
	Hint           lipgloss.Style // Help/hint text (muted color)
	Counter        lipgloss.Style // "3 / 22"
	Button         lipgloss.Style // Enabled prev/next control
	ButtonDisabled lipgloss.Style // Control that would be a no-op
	HelpBox        lipgloss.Style // Help overlay frame
}{
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 3),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleHero: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorSubtitle)),
	Content: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	BulletMark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	BulletList: lipgloss.NewStyle().
		Padding(0, 1),
	Image: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
}
