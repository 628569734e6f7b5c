package ui

import (
	"math"
	"strings"
	"time"

	"deckview/internal/deck"
	"deckview/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// Entrance animation timing.
const (
	frameInterval  = time.Second / 60
	entranceOffset = 4.0 // rows the card starts below its resting place
	bulletBase     = 300 * time.Millisecond
	bulletStep     = 100 * time.Millisecond
	imageDelay     = 300 * time.Millisecond
	maxCardWidth   = 96
)

// BulletDelay is how long after activation bullet i appears.
func BulletDelay(i int) time.Duration {
	return bulletBase + time.Duration(i)*bulletStep
}

// revealedBullets counts the bullets visible elapsed after activation.
func revealedBullets(elapsed time.Duration, n int) int {
	count := 0
	for i := 0; i < n && elapsed >= BulletDelay(i); i++ {
		count++
	}
	return count
}

// slideFrameMsg drives one animation step of the slide at Index.
// Gen ties the frame to a single activation so stale frames are dropped.
type slideFrameMsg struct {
	Index int
	Gen   int
	At    time.Time
}

// SlideView renders one slide. Inactive slides render nothing and ignore
// input but keep their state; only the active one is visible.
type SlideView struct {
	slide   deck.Slide
	index   int
	animate bool
	content ContentRenderer
	now     func() time.Time

	active      bool
	gen         int
	activatedAt time.Time
	bullets     int  // bullets revealed so far
	image       bool // image reference revealed

	spring   harmonica.Spring
	offset   float64
	velocity float64

	width int
}

// Ensure SlideView implements View.
var _ View = (*SlideView)(nil)

// NewSlideView creates an inactive view of s at position index.
func NewSlideView(s deck.Slide, index int, animate bool, content ContentRenderer) *SlideView {
	if content == nil {
		content = PlainRenderer{}
	}
	return &SlideView{
		slide:   s,
		index:   index,
		animate: animate,
		content: content,
		now:     time.Now,
		spring:  harmonica.NewSpring(harmonica.FPS(60), 7.0, 0.75),
		width:   80,
	}
}

// Active reports whether this slide is the visible one.
func (v *SlideView) Active() bool { return v.active }

// Slide returns the record this view renders.
func (v *SlideView) Slide() deck.Slide { return v.slide }

// Activate makes the slide visible and starts its entrance.
// Without animation everything is shown at once and no command is returned.
func (v *SlideView) Activate() tea.Cmd {
	v.active = true
	v.gen++
	if !v.animate {
		v.bullets = len(v.slide.Bullets)
		v.image = v.slide.HasImage()
		v.offset, v.velocity = 0, 0
		return nil
	}
	v.activatedAt = v.now()
	v.bullets = 0
	v.image = false
	v.offset, v.velocity = entranceOffset, 0
	return v.nextFrame()
}

// Deactivate suppresses the slide and cancels pending frames.
func (v *SlideView) Deactivate() {
	v.active = false
	v.gen++
	v.bullets = 0
	v.image = false
	v.offset, v.velocity = 0, 0
}

func (v *SlideView) nextFrame() tea.Cmd {
	index, gen := v.index, v.gen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return slideFrameMsg{Index: index, Gen: gen, At: t}
	})
}

// Init implements View.
func (v *SlideView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *SlideView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case slideFrameMsg:
		if !v.active || msg.Index != v.index || msg.Gen != v.gen {
			return v, nil
		}
		if v.step(msg.At) {
			return v, nil
		}
		return v, v.nextFrame()
	}
	return v, nil
}

// step advances the animation to time at and reports whether it has finished.
func (v *SlideView) step(at time.Time) bool {
	elapsed := at.Sub(v.activatedAt)
	v.bullets = revealedBullets(elapsed, len(v.slide.Bullets))
	v.image = v.slide.HasImage() && elapsed >= imageDelay

	v.offset, v.velocity = v.spring.Update(v.offset, v.velocity, 0)
	settled := math.Abs(v.offset) < 0.05 && math.Abs(v.velocity) < 0.05
	if settled {
		v.offset, v.velocity = 0, 0
	}

	return settled &&
		v.bullets == len(v.slide.Bullets) &&
		v.image == v.slide.HasImage()
}

// cardWidth is the outer width of the slide card.
func (v *SlideView) cardWidth() int {
	return max(min(v.width-4, maxCardWidth), 20)
}

// View implements View.
func (v *SlideView) View() string {
	if !v.active {
		return ""
	}
	s := v.slide
	inner := v.cardWidth() - Styles.Card.GetHorizontalFrameSize()

	hero := s.Kind == deck.KindIntro || s.Kind == deck.KindOutro
	align := lipgloss.Left
	titleStyle := Styles.Title
	if hero {
		align = lipgloss.Center
		titleStyle = Styles.TitleHero
	}

	var parts []string
	parts = append(parts, titleStyle.Width(inner).Align(align).Render(s.Title))
	if s.HasSubtitle() {
		parts = append(parts, Styles.Subtitle.Width(inner).Align(align).Render(s.Subtitle))
	}
	parts = append(parts, "", v.content.Render(s.Content, inner))

	if s.HasBullets() && v.bullets > 0 {
		var items []string
		for _, b := range s.Bullets[:v.bullets] {
			text := Styles.Bullet.Width(inner - 4).Render(b)
			items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, Styles.BulletMark.Render("• "), text))
		}
		parts = append(parts, "", Styles.BulletList.Render(strings.Join(items, "\n")))
	}
	if v.image {
		label := textutil.Truncate("▣ "+s.Image, inner-Styles.Image.GetHorizontalFrameSize())
		parts = append(parts, "", Styles.Image.Render(label))
	}

	card := Styles.Card.Width(v.cardWidth() - Styles.Card.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	shift := int(math.Round(v.offset))
	if shift > 0 {
		card = strings.Repeat("\n", shift) + card
	}
	return card
}
