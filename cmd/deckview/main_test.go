package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deckview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(config.DeckEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList_EmbeddedDeck(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "list")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 23, "title line plus 22 slides")
	assert.True(t, strings.HasPrefix(lines[1], "01  intro"))
	assert.True(t, strings.HasPrefix(lines[22], "22  outro"))
}

func TestValidate_FileDeck(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "talk.json")
	data := `[
  {"id": 1, "type": "intro", "title": "Hello", "content": "Welcome."},
  {"id": 2, "title": "Middle", "content": "Body.", "bulletPoints": ["a", "b"]},
  {"id": 3, "type": "outro", "title": "Bye", "content": "Thanks."}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	code, out, _ := execute(t, "validate", "--deck", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "3 slides ok")
}

func TestValidate_InvalidDeck(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slides:\n  - id: 1\n    title: \"\"\n    content: x\n"), 0o644))

	code, _, errOut := execute(t, "validate", "--deck", path)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, "deckview: "))
	assert.Contains(t, errOut, "bad.yaml")
}

func TestValidate_EmbeddedByName(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "validate", "--deck", "embedded:tour")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "4 slides ok")
}

func TestUnknownEmbeddedDeck(t *testing.T) {
	isolate(t)
	code, _, errOut := execute(t, "list", "--deck", "embedded:nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "nope")
	assert.Contains(t, errOut, "available: ecommerce, tour")
}

func TestList_EmbeddedNames(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "list", "--embedded")
	require.Equal(t, 0, code)
	assert.Equal(t, "embedded:ecommerce\nembedded:tour\n", out)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deck: embedded:tour\nanimation: true\nmouse: true\n"), 0o644))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "embedded:tour", cfg.Deck)
	assert.True(t, cfg.Animation)

	cfg, err = loadConfig(options{configPath: path, deck: "talk.json", noMouse: true, noAnimation: true, plain: true})
	require.NoError(t, err)
	assert.Equal(t, "talk.json", cfg.Deck)
	assert.False(t, cfg.Mouse)
	assert.False(t, cfg.Animation)
	assert.False(t, cfg.Markdown)
}

func TestRoot_RejectsArgs(t *testing.T) {
	isolate(t)
	code, _, errOut := execute(t, "extra")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "deckview: ")
}
