package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidEndpoint is returned when start or end is out of bounds,
	// the two are equal, or either is not traversable.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")
)

// Outcome distinguishes how a search ended.
type Outcome int

const (
	// Found means the goal was expanded and Result.Path is set.
	Found Outcome = iota
	// Unreachable means the frontier emptied without reaching the goal.
	Unreachable
	// Cancelled means the search stopped early on request.
	Cancelled
)

// String returns "found", "unreachable" or "cancelled".
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result holds the outcome of one search:
//   - Outcome: Found, Unreachable or Cancelled.
//   - Path: start-exclusive, goal-inclusive cells; nil unless Found.
//   - Expanded: number of OnVisit calls made.
type Result struct {
	Outcome  Outcome
	Path     []gridgraph.Coord
	Expanded int
}

// Visitor is the presentation-layer boundary of a search.
//
// OnVisit is called once per expanded cell, in expansion order. It must not
// mutate the grid's walls. Cancelled is polled before every expansion; once it
// returns true the search stops and reports Cancelled.
type Visitor interface {
	OnVisit(c gridgraph.Coord)
	Cancelled() bool
}

// Hooks adapts plain functions to Visitor. Nil fields are no-ops.
type Hooks struct {
	Visit  func(c gridgraph.Coord)
	Cancel func() bool
}

// OnVisit calls h.Visit if set.
func (h Hooks) OnVisit(c gridgraph.Coord) {
	if h.Visit != nil {
		h.Visit(c)
	}
}

// Cancelled calls h.Cancel if set.
func (h Hooks) Cancelled() bool {
	return h.Cancel != nil && h.Cancel()
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the collaborators of a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before every pop.
	Ctx context.Context

	// Visitor receives visit events and is polled for cancellation.
	Visitor Visitor

	// Logger receives debug records for run start and finish.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background Context, a no-op
// Visitor and a Logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Visitor: Hooks{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor registers the presentation-layer Visitor.
func WithVisitor(v Visitor) Option {
	return func(o *Options) {
		if v != nil {
			o.Visitor = v
		}
	}
}

// WithOnVisit registers a visit callback, keeping any cancel hook already set
// through a previous WithCancel. It replaces a Visitor set by WithVisitor.
func WithOnVisit(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		h, _ := o.Visitor.(Hooks)
		h.Visit = fn
		o.Visitor = h
	}
}

// WithCancel registers a cancellation poll, keeping any visit hook already set
// through a previous WithOnVisit. It replaces a Visitor set by WithVisitor.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		h, _ := o.Visitor.(Hooks)
		h.Cancel = fn
		o.Visitor = h
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stopped reports whether the context is done or the Visitor asks to cancel.
func (o Options) Stopped() bool {
	select {
	case <-o.Ctx.Done():
		return true
	default:
	}

	return o.Visitor.Cancelled()
}

// ValidateEndpoints checks that start and end are in bounds, distinct and
// traversable on g. Every failure wraps ErrInvalidEndpoint.
func ValidateEndpoints(g *gridgraph.Grid, start, end gridgraph.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	switch {
	case !g.InBounds(start):
		return fmt.Errorf("%w: start %v out of bounds", ErrInvalidEndpoint, start)
	case !g.InBounds(end):
		return fmt.Errorf("%w: end %v out of bounds", ErrInvalidEndpoint, end)
	case start == end:
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidEndpoint, start)
	case !g.IsTraversable(start):
		return fmt.Errorf("%w: start %v is a wall", ErrInvalidEndpoint, start)
	case !g.IsTraversable(end):
		return fmt.Errorf("%w: end %v is a wall", ErrInvalidEndpoint, end)
	}

	return nil
}
