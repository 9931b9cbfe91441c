package stream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Handler upgrades HTTP requests to websockets and runs searches on them.
type Handler struct {
	// Upgrader is used as-is; the zero value accepts same-origin requests.
	Upgrader websocket.Upgrader
	// Logger receives connection and run records. Nil discards them.
	Logger *slog.Logger
	// Delay is slept after each visit event to pace animations.
	Delay time.Duration
	// MaxCells rejects boards larger than this many cells when positive.
	MaxCells int
	// ReadLimit caps the size of one client message in bytes.
	// Zero means DefaultReadLimit.
	ReadLimit int64
}

// DefaultReadLimit bounds client messages when Handler.ReadLimit is zero.
const DefaultReadLimit = 1 << 20

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()
	limit := h.ReadLimit
	if limit <= 0 {
		limit = DefaultReadLimit
	}
	conn.SetReadLimit(limit)
	logger.Info("client connected", "remote", r.RemoteAddr)

	s := &session{
		h:      h,
		conn:   conn,
		logger: logger.With("remote", r.RemoteAddr),
		inbox:  make(chan Request, 8),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	s.serve(r.Context())
	close(s.done)
	logger.Info("client disconnected", "remote", r.RemoteAddr)
}

// session owns one connection. Only readLoop reads; only serve writes.
type session struct {
	h      *Handler
	conn   *websocket.Conn
	logger *slog.Logger
	inbox  chan Request
	done   chan struct{}
}

// readLoop forwards client messages to inbox and closes it on read error.
func (s *session) readLoop() {
	defer close(s.inbox)
	for {
		var req Request
		if err := s.conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}
		select {
		case s.inbox <- req:
		case <-s.done:
			return
		}
	}
}

// serve handles requests until the client goes away.
func (s *session) serve(ctx context.Context) {
	for req := range s.inbox {
		switch req.Type {
		case TypeRun:
			if !s.run(ctx, req) {
				return
			}
		case TypeQuit:
			// nothing running
		default:
			if err := s.send(Event{Type: TypeError, Error: fmt.Sprintf("unknown message type %q", req.Type)}); err != nil {
				return
			}
		}
	}
}

// run executes one search. It returns false once the connection is unusable.
// The algorithm falls back to the board's, then to BFS.
func (s *session) run(ctx context.Context, req Request) bool {
	name := req.Algorithm
	if name == "" {
		name = req.Board.Algorithm
	}
	if name == "" {
		name = engine.BFS.String()
	}
	alg, err := engine.ParseAlgorithm(name)
	if err != nil {
		return s.send(Event{Type: TypeError, Error: err.Error()}) == nil
	}
	// size is checked before Grid allocates the cells
	if strings.TrimSpace(req.Board.Layout) == "" {
		if err := s.checkSize(req.Board.Rows, req.Board.Cols); err != nil {
			return s.send(Event{Type: TypeError, Error: err.Error()}) == nil
		}
	}
	g, err := req.Board.Grid()
	if err != nil {
		return s.send(Event{Type: TypeError, Error: err.Error()}) == nil
	}
	if err := s.checkSize(g.Rows(), g.Cols()); err != nil {
		return s.send(Event{Type: TypeError, Error: err.Error()}) == nil
	}

	var (
		writeErr error
		gone     bool
		seq      int
	)
	res, err := engine.Run(g, g.Start(), g.End(), alg,
		search.WithContext(ctx),
		search.WithLogger(s.logger),
		search.WithOnVisit(func(c gridgraph.Coord) {
			if writeErr != nil {
				return
			}
			seq++
			cell := c
			writeErr = s.send(Event{Type: TypeVisit, Seq: seq, Cell: &cell})
			if s.h.Delay > 0 {
				time.Sleep(s.h.Delay)
			}
		}),
		search.WithCancel(func() bool {
			if writeErr != nil || gone {
				return true
			}
			select {
			case m, ok := <-s.inbox:
				switch {
				case !ok:
					gone = true
				case m.Type == TypeQuit:
					return true
				default:
					s.logger.Debug("dropped message during search", "type", m.Type)
				}
			default:
			}
			return gone
		}),
	)
	if err != nil {
		return s.send(Event{Type: TypeError, Error: err.Error()}) == nil
	}
	if writeErr != nil || gone {
		return false
	}

	return s.send(Event{
		Type:     TypeResult,
		Outcome:  res.Outcome.String(),
		Path:     res.Path,
		Expanded: res.Expanded,
	}) == nil
}

// checkSize rejects boards past gridgraph.MaxCells or Handler.MaxCells.
func (s *session) checkSize(rows, cols int) error {
	n, err := gridgraph.CellCount(rows, cols)
	if err != nil {
		return err
	}
	if s.h.MaxCells > 0 && n > s.h.MaxCells {
		return fmt.Errorf("board has %d cells, limit is %d", n, s.h.MaxCells)
	}

	return nil
}

func (s *session) send(ev Event) error {
	if err := s.conn.WriteJSON(ev); err != nil {
		s.logger.Debug("write failed", "error", err)
		return err
	}

	return nil
}
