// Package board loads and saves grid layouts.
//
// Two formats are supported:
//
//   - Text: one line per row using the glyphs '.' (empty), '#' (wall),
//     'S' (start) and 'E' (end). The overlay glyphs 'o' (visited) and '*'
//     (path) written by the render package read back as empty cells.
//   - YAML: a Board document with rows/cols, optional start/end (defaulting
//     to (R/7, C/7) and (⌊R/1.5⌋, ⌊C/1.5⌋)), a wall list, a default algorithm,
//     or an inline text layout that takes precedence over everything else.
//
// Example YAML:
//
//	rows: 10
//	cols: 12
//	algorithm: astar
//	walls:
//	  - {row: 3, col: 1}
//	  - {row: 3, col: 2}
package board
