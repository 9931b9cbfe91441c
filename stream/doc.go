// Package stream serves grid searches over a websocket so a browser or any
// other remote presentation layer can animate them.
//
// A client sends {"type":"run","algorithm":"astar","board":{...}}; the server
// answers with one {"type":"visit"} event per expanded cell followed by a
// {"type":"result"} event. Sending {"type":"quit"} or closing the socket
// cancels the running search. Runs on one connection are sequential.
//
// Board sizes are checked before any cells are allocated, against
// gridgraph.MaxCells and Handler.MaxCells. Messages longer than
// Handler.ReadLimit close the connection.
package stream
