package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over a KeybindRegistry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns one binding per described action.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings()
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// RenderHelpBar renders the one-line key hint bar.
func RenderHelpBar(registry *KeybindRegistry, width int) string {
	h := newHelpModel()
	h.Width = width
	return h.View(NewKeyMap(registry))
}

// HelpView is the full keybinding reference shown as an overlay.
type HelpView struct {
	registry *KeybindRegistry
	help     help.Model
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates a help overlay for registry.
func NewHelpView(registry *KeybindRegistry) *HelpView {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpView{registry: registry, help: h}
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.help.Width = msg.Width
	}
	return v, nil
}

// View implements View.
func (v *HelpView) View() string {
	body := v.help.View(NewKeyMap(v.registry))
	footer := Styles.Hint.Render("Swipe: drag the mouse left or right.  Esc or ? closes.")
	return Styles.HelpBox.Render(Styles.Title.Render("Keys") + "\n\n" + body + "\n\n" + footer)
}
