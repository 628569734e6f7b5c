package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key binding does.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionHelp
	ActionQuit
)

// KeybindRegistry maps key sequences to actions.
// Sequences use tea.KeyMsg.String() names, with "SPC" for space: "right", "SPC", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]Action
	descriptions map[Action]string
	order        []string // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]Action),
		descriptions: make(map[Action]string),
	}
}

// DefaultKeybinds returns the presentation bindings: right arrow and space
// advance, left arrow retreats.
func DefaultKeybinds() *KeybindRegistry {
	r := NewKeybindRegistry()
	r.BindWithDesc("right", ActionNext, "next")
	r.Bind("SPC", ActionNext)
	r.Bind("l", ActionNext)
	r.Bind("pgdown", ActionNext)
	r.BindWithDesc("left", ActionPrev, "prev")
	r.Bind("h", ActionPrev)
	r.Bind("pgup", ActionPrev)
	r.BindWithDesc("?", ActionHelp, "help")
	r.BindWithDesc("q", ActionQuit, "quit")
	r.Bind("ctrl+c", ActionQuit)
	return r
}

// Bind registers a key sequence. Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, action Action) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = action
}

// BindWithDesc registers a key sequence and names its action for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, action Action, desc string) {
	r.Bind(seq, action)
	r.descriptions[action] = desc
}

// Lookup returns the action for a key sequence, or ActionNone if not bound.
func (r *KeybindRegistry) Lookup(seq string) Action {
	return r.bindings[normalizeSeq(seq)]
}

// LookupKey resolves a key message.
func (r *KeybindRegistry) LookupKey(msg tea.KeyMsg) Action {
	return r.Lookup(msg.String())
}

// Bindings groups sequences by action, in registration order, as bubbles key.Bindings.
// Actions without a description are omitted.
func (r *KeybindRegistry) Bindings() []key.Binding {
	var actions []Action
	keys := make(map[Action][]string)
	for _, seq := range r.order {
		a := r.bindings[seq]
		if a == ActionNone {
			continue
		}
		if _, seen := keys[a]; !seen {
			actions = append(actions, a)
		}
		keys[a] = append(keys[a], seq)
	}

	var out []key.Binding
	for _, a := range actions {
		desc, ok := r.descriptions[a]
		if !ok {
			continue
		}
		seqs := keys[a]
		names := make([]string, len(seqs))
		for i, s := range seqs {
			names[i] = displayKey(s)
		}
		out = append(out, key.NewBinding(
			key.WithKeys(seqs...),
			key.WithHelp(strings.Join(names, "/"), desc),
		))
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// " " and "space" -> "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if len(parts) == 0 && seq != "" {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

func displayKey(seq string) string {
	switch seq {
	case "right":
		return "→"
	case "left":
		return "←"
	case "SPC":
		return "space"
	default:
		return seq
	}
}
