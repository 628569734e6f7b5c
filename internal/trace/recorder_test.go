package trace

import (
	"context"
	"testing"
	"time"

	"deckview/internal/config"
	"deckview/internal/deck"
	"deckview/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
)

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d, err := deck.New("Demo", []deck.Slide{
		{ID: 1, Kind: deck.KindIntro, Title: "One", Content: "a"},
		{ID: 2, Title: "Two", Content: "b"},
		{ID: 3, Kind: deck.KindOutro, Title: "Three", Content: "c"},
	})
	require.NoError(t, err)
	return d
}

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewRecorder(tp), sr
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRecorder_SessionWithSlideViews(t *testing.T) {
	r, sr := newTestRecorder(t)
	d := testDeck(t)

	r.Start(context.Background(), d)
	require.NotEmpty(t, r.TraceID())
	r.Navigated(nav.Change{From: 0, To: 1, Command: nav.Advance}, d.At(1))
	r.Navigated(nav.Change{From: 1, To: 0, Command: nav.Retreat}, d.At(0))
	r.End()

	ended := sr.Ended()
	require.Len(t, ended, 4)

	var views []int64
	var session sdktrace.ReadOnlySpan
	for _, s := range ended {
		switch s.Name() {
		case SpanSlideView:
			v, ok := attrValue(s.Attributes(), "deckview.slide.id")
			require.True(t, ok)
			views = append(views, v.AsInt64())
		case SpanSession:
			session = s
		}
	}
	assert.Equal(t, []int64{1, 2, 1}, views)
	require.NotNil(t, session)

	for _, s := range ended {
		if s.Name() == SpanSlideView {
			assert.Equal(t, session.SpanContext().SpanID(), s.Parent().SpanID())
		}
	}

	events := session.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventNavigate, events[0].Name)
	cmd, ok := attrValue(events[1].Attributes, "deckview.nav.command")
	require.True(t, ok)
	assert.Equal(t, "retreat", cmd.AsString())

	slides, ok := attrValue(session.Attributes(), "deckview.deck.slides")
	require.True(t, ok)
	assert.Equal(t, int64(3), slides.AsInt64())
}

func TestRecorder_EndIsIdempotent(t *testing.T) {
	r, sr := newTestRecorder(t)
	r.Start(context.Background(), testDeck(t))
	r.End()
	r.End()
	assert.Len(t, sr.Ended(), 2)
	assert.Empty(t, r.TraceID())
}

func TestRecorder_IgnoresCallsBeforeStart(t *testing.T) {
	r, sr := newTestRecorder(t)
	d := testDeck(t)
	r.SlideViewed(1, d.At(1))
	r.Navigated(nav.Change{From: 0, To: 1, Command: nav.Advance}, d.At(1))
	r.End()
	assert.Empty(t, sr.Ended())
	assert.Empty(t, sr.Started())
}

func TestRecorder_NilProviderIsNoop(t *testing.T) {
	r := NewRecorder(nil)
	d := testDeck(t)
	r.Start(context.Background(), d)
	r.Navigated(nav.Change{From: 0, To: 1, Command: nav.Advance}, d.At(1))
	assert.Empty(t, r.TraceID(), "noop spans carry no trace ID")
	r.End()
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	tp, err := NewProvider(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewProvider_ShutdownLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tp, err := NewProvider(context.Background(), config.TracingConfig{
		Endpoint: "127.0.0.1:4318",
		Insecure: true,
	})
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tp.Shutdown(ctx))
}
