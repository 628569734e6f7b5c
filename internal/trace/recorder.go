package trace

import (
	"context"

	"deckview/internal/deck"
	"deckview/internal/nav"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "deckview/presentation"

// Span and event names.
const (
	SpanSession   = "presentation.session"
	SpanSlideView = "slide.view"
	EventNavigate = "navigate"
)

// Recorder turns session lifecycle and navigation into spans.
// Like the navigation controller it is driven from the UI goroutine only.
type Recorder struct {
	tracer  oteltrace.Tracer
	ctx     context.Context
	session oteltrace.Span
	view    oteltrace.Span
}

// NewRecorder uses tp, or a no-op provider when tp is nil.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Recorder{tracer: tp.Tracer(instrumentationName)}
}

// Start opens the session span for d and the view span for its first slide.
func (r *Recorder) Start(ctx context.Context, d *deck.Deck) {
	if r.session != nil {
		return
	}
	r.ctx, r.session = r.tracer.Start(ctx, SpanSession,
		oteltrace.WithAttributes(
			attribute.String("deckview.deck.title", d.Title()),
			attribute.Int("deckview.deck.slides", d.Len()),
		),
	)
	r.SlideViewed(0, d.At(0))
}

// SlideViewed ends the current view span and starts one for the slide at index.
func (r *Recorder) SlideViewed(index int, s deck.Slide) {
	if r.session == nil {
		return
	}
	if r.view != nil {
		r.view.End()
	}
	_, r.view = r.tracer.Start(r.ctx, SpanSlideView,
		oteltrace.WithAttributes(
			attribute.Int("deckview.slide.index", index),
			attribute.Int("deckview.slide.id", s.ID),
			attribute.String("deckview.slide.title", s.Title),
			attribute.String("deckview.slide.kind", s.Kind.String()),
		),
	)
}

// Navigated records ch on the session span and switches the view span to s.
func (r *Recorder) Navigated(ch nav.Change, s deck.Slide) {
	if r.session == nil {
		return
	}
	r.session.AddEvent(EventNavigate, oteltrace.WithAttributes(
		attribute.String("deckview.nav.command", ch.Command.String()),
		attribute.Int("deckview.nav.from", ch.From),
		attribute.Int("deckview.nav.to", ch.To),
	))
	r.SlideViewed(ch.To, s)
}

// TraceID returns the session's trace ID as hex, or "" before Start.
func (r *Recorder) TraceID() string {
	if r.session == nil {
		return ""
	}
	sc := r.session.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// End closes the open spans. Calling it more than once is harmless.
func (r *Recorder) End() {
	if r.view != nil {
		r.view.End()
		r.view = nil
	}
	if r.session != nil {
		r.session.End()
		r.session = nil
	}
}
