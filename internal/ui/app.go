package ui

import (
	"strings"

	"deckview/internal/deck"
	"deckview/internal/input"
	"deckview/internal/nav"
	"deckview/internal/progress"
	"deckview/internal/trace"
	"deckview/internal/ui/textutil"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a presentation.
type Options struct {
	Animate     bool
	Content     ContentRenderer // nil means PlainRenderer
	CellWidthPx float64         // swipe scaling; <= 0 uses input.DefaultCellWidthPx
	Keys        *KeybindRegistry
	Recorder    *trace.Recorder // nil disables session tracing
	Logger      *zap.Logger     // nil means no logging
}

// AppModel is the root model. Every input ends in navigate, the single
// place the navigation controller is driven from.
type AppModel struct {
	Deck     *deck.Deck
	Nav      *nav.Controller
	Slides   []*SlideView
	Controls *ControlsView
	Keys     *KeybindRegistry
	Pointer  *input.Pointer
	Overlays OverlayStack
	Layout   Layout
	Recorder *trace.Recorder
	Logger   *zap.Logger

	width, height int
	pending       []tea.Cmd // commands produced by change observers
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds a presentation of d positioned at its first slide,
// which starts active.
func NewAppModel(d *deck.Deck, opts Options) (*AppModel, error) {
	controller, err := nav.NewController(d.Len())
	if err != nil {
		return nil, err
	}
	keys := opts.Keys
	if keys == nil {
		keys = DefaultKeybinds()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = trace.NewRecorder(nil)
	}

	a := &AppModel{
		Deck:     d,
		Nav:      controller,
		Controls: NewControlsView(progress.Of(0, d.Len()), opts.Animate),
		Keys:     keys,
		Pointer:  input.NewPointer(opts.CellWidthPx),
		Layout:   PresentationLayout{},
		Recorder: recorder,
		Logger:   logger,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for i, s := range d.All() {
		a.Slides = append(a.Slides, NewSlideView(s, i, opts.Animate, opts.Content))
	}
	controller.OnChange(a.onChange)

	a.queue(a.Slides[0].Activate())
	a.queue(a.Controls.SetProgress(progress.Of(0, d.Len())))
	return a, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// ActiveIndex returns the position of the visible slide.
func (m *AppModel) ActiveIndex() int {
	return m.Nav.Index()
}

// onChange swaps the active slide and refreshes the derived controls.
func (m *AppModel) onChange(ch nav.Change) {
	m.Slides[ch.From].Deactivate()
	m.queue(m.Slides[ch.To].Activate())
	m.queue(m.Controls.SetProgress(progress.Of(ch.To, m.Nav.Total())))
	m.Recorder.Navigated(ch, m.Slides[ch.To].Slide())
	m.Logger.Debug("navigate",
		zap.Stringer("command", ch.Command),
		zap.Int("from", ch.From),
		zap.Int("to", ch.To),
		zap.Int("slide_id", m.Slides[ch.To].Slide().ID),
	)
}

func (m *AppModel) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *AppModel) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// navigate applies cmd and returns any follow-up commands (animation frames).
func (m *AppModel) navigate(cmd nav.Command) tea.Cmd {
	if cmd == nav.None {
		return nil
	}
	m.Nav.Apply(cmd)
	return m.drain()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.drain()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		slideMsg := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-chromeRows, 1)}
		for _, s := range a.Slides {
			s.Update(slideMsg)
		}
		a.Controls.Update(msg)
		a.Overlays.UpdateTop(msg)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case slideFrameMsg:
		if msg.Index < 0 || msg.Index >= len(a.Slides) {
			return a, nil
		}
		_, cmd := a.Slides[msg.Index].Update(msg)
		return a, cmd
	case progressbar.FrameMsg:
		_, cmd := a.Controls.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := a.Keys.LookupKey(msg)
	if action == ActionQuit {
		return tea.Quit
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	switch action {
	case ActionNext:
		return a.navigate(nav.Advance)
	case ActionPrev:
		return a.navigate(nav.Retreat)
	case ActionHelp:
		help := NewHelpView(a.Keys)
		help.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Overlays.Push(Overlay{View: help, Dismiss: []string{"esc", "?"}})
		a.Pointer.Cancel()
	}
	return nil
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}
	ev := a.Pointer.Handle(msg)
	if ev.Command != nav.None {
		return a.navigate(ev.Command)
	}
	if !ev.Click {
		return nil
	}
	controls, ok := a.Layout.Panel(PanelControls)
	if !ok {
		return nil
	}
	if lx, _, inside := controls.Contains(ev.X, ev.Y, a.width, a.height); inside {
		return a.navigate(a.Controls.HitTest(lx))
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	rows := make([]string, 0, 5)
	for _, p := range a.Layout.Panels() {
		_, _, w, h := p.Bounds(a.width, a.height)
		rows = append(rows, a.renderPanel(p.ID, w, h))
	}
	return strings.Join(rows, "\n")
}

func (a *appModelAdapter) renderPanel(id string, w, h int) string {
	fit := lipgloss.NewStyle().MaxWidth(w).MaxHeight(h)
	switch id {
	case PanelProgress:
		return fit.Render(a.Controls.BarView())
	case PanelHeader:
		title := Styles.Header.Render(textutil.Truncate(a.Deck.Title(), max(w-2*controlMargin, 1)))
		return fit.Render(textutil.Spaces(controlMargin) + title)
	case PanelSlide:
		body := ""
		if top, ok := a.Overlays.Peek(); ok {
			body = top.View.View()
		} else {
			body = a.Slides[a.Nav.Index()].View()
		}
		return fit.Render(lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body))
	case PanelControls:
		return "\n" + fit.Render(a.Controls.View())
	case PanelHelp:
		return fit.Render(textutil.Spaces(controlMargin) + RenderHelpBar(a.Keys, max(w-2*controlMargin, 1)))
	}
	return ""
}
