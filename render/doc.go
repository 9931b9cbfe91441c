// Package render is a terminal presentation layer for grid searches.
//
// A View plugs into a search as its search.Visitor: it records every visited
// cell, optionally echoes each visit to a trace writer, forwards the
// cancellation poll, and finally draws the board with the visited cells and
// the path overlaid:
//
//	S start   E end   # wall   . empty   o visited   * path
package render
