package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// View records a search over one grid and draws it.
type View struct {
	grid    *gridgraph.Grid
	visited map[gridgraph.Coord]struct{}
	order   []gridgraph.Coord
	path    []gridgraph.Coord
	trace   io.Writer
	stop    func() bool
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithTrace echoes every visit to w as it happens.
func WithTrace(w io.Writer) ViewOption {
	return func(v *View) { v.trace = w }
}

// WithStop installs the cancellation poll forwarded to the search.
func WithStop(fn func() bool) ViewOption {
	return func(v *View) { v.stop = fn }
}

// NewView returns an empty View over g.
func NewView(g *gridgraph.Grid, opts ...ViewOption) *View {
	v := &View{
		grid:    g,
		visited: make(map[gridgraph.Coord]struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

var _ search.Visitor = (*View)(nil)

// OnVisit records c and echoes it to the trace writer, if any.
func (v *View) OnVisit(c gridgraph.Coord) {
	v.visited[c] = struct{}{}
	v.order = append(v.order, c)
	if v.trace != nil {
		fmt.Fprintf(v.trace, "visit %d %v\n", len(v.order), c)
	}
}

// Cancelled forwards to the stop poll, if any.
func (v *View) Cancelled() bool {
	return v.stop != nil && v.stop()
}

// Visits returns the visit order recorded so far.
func (v *View) Visits() []gridgraph.Coord { return v.order }

// SetResult stores the path of res for drawing.
func (v *View) SetResult(res search.Result) { v.path = res.Path }

// Reset forgets recorded visits and path.
func (v *View) Reset() {
	v.visited = make(map[gridgraph.Coord]struct{})
	v.order = nil
	v.path = nil
}

// Draw writes the board with the overlay, one line per row.
// Start, end and walls keep their glyphs; path wins over visited.
func (v *View) Draw(w io.Writer) error {
	_, err := io.WriteString(w, v.String())
	return err
}

// String renders the same frame as Draw.
func (v *View) String() string {
	onPath := make(map[gridgraph.Coord]struct{}, len(v.path))
	for _, c := range v.path {
		onPath[c] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow(v.grid.Rows() * (v.grid.Cols() + 1))
	for r := 0; r < v.grid.Rows(); r++ {
		for c := 0; c < v.grid.Cols(); c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			glyph := board.Glyph(v.grid, at)
			if glyph == board.GlyphEmpty {
				if _, ok := onPath[at]; ok {
					glyph = board.GlyphPath
				} else if _, ok := v.visited[at]; ok {
					glyph = board.GlyphVisited
				}
			}
			sb.WriteByte(glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
