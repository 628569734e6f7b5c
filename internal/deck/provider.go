package deck

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"deckview/internal/jsonutil"

	"gopkg.in/yaml.v3"
)

//go:embed decks/*.yaml
var embedded embed.FS

// DefaultDeck names the embedded deck shown when no file is given.
const DefaultDeck = "ecommerce"

// Format identifies a deck file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported deck file extension %q (want .yaml, .yml or .json)", filepath.Ext(p))
	}
}

// Provider supplies the deck once at startup.
type Provider interface {
	Load(ctx context.Context) (*Deck, error)
}

// document is the on-disk shape of a deck.
type document struct {
	Title  string  `yaml:"title" json:"title"`
	Slides []Slide `yaml:"slides" json:"slides"`
}

// Parse decodes and validates a deck.
// JSON input may be a {title, slides} object or a bare array of slides.
func Parse(data []byte, format Format) (*Deck, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml deck: %w", err)
		}
	case FormatJSON:
		if jsonutil.IsArray(data) {
			slides, err := jsonutil.UnmarshalArrayAllowEmpty[Slide](data, "parse json deck")
			if err != nil {
				return nil, err
			}
			doc.Slides = slides
		} else if err := jsonutil.UnmarshalWithContext(data, &doc, "parse json deck"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown deck format %q", format)
	}
	return New(doc.Title, doc.Slides)
}

// FileProvider loads a deck from a YAML or JSON file.
type FileProvider struct {
	Path string
}

// Load implements Provider.
func (p FileProvider) Load(ctx context.Context) (*Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(p.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}
	return d, nil
}

// EmbeddedProvider loads one of the decks compiled into the binary.
type EmbeddedProvider struct {
	Name string // defaults to DefaultDeck
}

// Load implements Provider.
func (p EmbeddedProvider) Load(ctx context.Context) (*Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := p.Name
	if name == "" {
		name = DefaultDeck
	}
	data, err := embedded.ReadFile(path.Join("decks", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("embedded deck %q (available: %s): %w",
			name, strings.Join(EmbeddedNames(), ", "), err)
	}
	d, err := Parse(data, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded deck %q: %w", name, err)
	}
	return d, nil
}

// EmbeddedNames lists the decks compiled into the binary.
func EmbeddedNames() []string {
	entries, err := embedded.ReadDir("decks")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// ProviderFor returns a FileProvider when path is set, else the default
// embedded deck. A path of the form "embedded:<name>" selects an embedded deck.
func ProviderFor(p string) Provider {
	if name, ok := strings.CutPrefix(p, "embedded:"); ok {
		return EmbeddedProvider{Name: name}
	}
	if p == "" {
		return EmbeddedProvider{}
	}
	return FileProvider{Path: p}
}
