package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Board glyphs. Visited and Path are overlay marks and parse as Empty.
const (
	GlyphEmpty   = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// ParseText reads a text layout and builds a Grid from it.
// Blank lines and trailing spaces are ignored.
func ParseText(r io.Reader) (*gridgraph.Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}

	cols := len(rows[0])
	var (
		walls        []gridgraph.Coord
		starts, ends []gridgraph.Coord
	)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			switch line[c] {
			case GlyphEmpty, GlyphVisited, GlyphPath:
			case GlyphWall:
				walls = append(walls, at)
			case GlyphStart:
				starts = append(starts, at)
			case GlyphEnd:
				ends = append(ends, at)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, line[c], at)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d end", ErrMissingEndpoint, len(starts), len(ends))
	}

	g, err := gridgraph.NewGrid(len(rows), cols, starts[0], ends[0])
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		if err := g.SetCellState(w, gridgraph.Wall); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FormatText renders g in the text layout, one newline-terminated line per row.
func FormatText(g *gridgraph.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			sb.WriteByte(Glyph(g, gridgraph.Coord{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Glyph returns the base glyph of c: start, end, wall or empty.
func Glyph(g *gridgraph.Grid, c gridgraph.Coord) byte {
	switch {
	case c == g.Start():
		return GlyphStart
	case c == g.End():
		return GlyphEnd
	case !g.IsTraversable(c):
		return GlyphWall
	default:
		return GlyphEmpty
	}
}
