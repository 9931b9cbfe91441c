package stream

import (
	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Message types exchanged over the socket.
const (
	TypeRun    = "run"    // client → server: start a search
	TypeQuit   = "quit"   // client → server: cancel the running search
	TypeVisit  = "visit"  // server → client: one expanded cell
	TypeResult = "result" // server → client: final outcome
	TypeError  = "error"  // server → client: request rejected
)

// Request is a client message. Board and Algorithm are read for TypeRun;
// an empty Algorithm defers to Board.Algorithm.
type Request struct {
	Type      string      `json:"type"`
	Algorithm string      `json:"algorithm,omitempty"`
	Board     board.Board `json:"board"`
}

// Event is a server message.
type Event struct {
	Type     string            `json:"type"`
	Seq      int               `json:"seq,omitempty"`
	Cell     *gridgraph.Coord  `json:"cell,omitempty"`
	Outcome  string            `json:"outcome,omitempty"`
	Path     []gridgraph.Coord `json:"path,omitempty"`
	Expanded int               `json:"expanded,omitempty"`
	Error    string            `json:"error,omitempty"`
}
