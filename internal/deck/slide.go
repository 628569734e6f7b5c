package deck

import (
	"fmt"
	"slices"
	"strings"
)

// Kind categorizes a slide's place in the deck.
type Kind string

const (
	KindIntro   Kind = "intro"
	KindContent Kind = "content"
	KindOutro   Kind = "outro"
)

// ParseKind converts a string to a Kind. Empty input means KindContent.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindContent, nil
	case KindIntro, KindContent, KindOutro:
		return k, nil
	default:
		return "", fmt.Errorf("unknown slide kind %q", s)
	}
}

func (k Kind) String() string {
	return string(k)
}

// Slide is one unit of presented content.
// Optional fields are empty when absent: Subtitle, Bullets, Image.
type Slide struct {
	ID       int      `yaml:"id" json:"id"`
	Kind     Kind     `yaml:"kind" json:"type"`
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Content  string   `yaml:"content" json:"content"`
	Bullets  []string `yaml:"bullets,omitempty" json:"bulletPoints,omitempty"`
	Image    string   `yaml:"image,omitempty" json:"image,omitempty"`
}

func (s Slide) HasSubtitle() bool { return s.Subtitle != "" }
func (s Slide) HasBullets() bool  { return len(s.Bullets) > 0 }
func (s Slide) HasImage() bool    { return s.Image != "" }

// clone returns a copy that shares no backing storage with s.
func (s Slide) clone() Slide {
	s.Bullets = slices.Clone(s.Bullets)
	return s
}
