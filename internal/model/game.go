package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"boardsync/internal/ws"

	"github.com/gofiber/websocket/v2"
)

// GameConnections tracks the live sockets of one game.
type GameConnections struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn // playerID -> connection
}

func NewGameConnections() *GameConnections {
	return &GameConnections{conns: make(map[string]*websocket.Conn)}
}

// Game is a synchronization session: it owns the canonical board for one
// match and the connections observing it. Every inbound request runs
// validate, apply, broadcast to completion under the game mutex before the
// next is admitted, so the board is never observed mid-move.
type Game struct {
	ID string

	mu          sync.Mutex
	board       *Board
	seats       map[Color]string // color -> playerID, "" while unclaimed
	connections *GameConnections
	activity    *Activity
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		board:       NewStandardBoard(),
		seats:       map[Color]string{Light: "", Dark: ""},
		connections: NewGameConnections(),
		activity:    NewActivity(),
	}
}

// NewGameFromEncoding builds a session seeded from an encoded snapshot
// instead of the opening position.
func NewGameFromEncoding(id, encoded string) (*Game, error) {
	board, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	g := NewGame(id)
	g.board = board
	return g, nil
}

// AddPlayer claims the first free seat and returns its color.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, color := range []Color{Light, Dark} {
		if g.seats[color] == "" {
			g.seats[color] = playerID
			g.activity.Touch()
			return color, nil
		}
	}
	return Light, errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasSeat(playerID)
}

func (g *Game) hasSeat(playerID string) bool {
	return playerID != "" && (g.seats[Light] == playerID || g.seats[Dark] == playerID)
}

// canSpectate allows extra observers while a seat is still empty.
func (g *Game) canSpectate() bool {
	return g.seats[Light] == "" || g.seats[Dark] == ""
}

// Seats reports the current seat assignments.
func (g *Game) Seats() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return map[string]string{
		Light.String(): g.seats[Light],
		Dark.String():  g.seats[Dark],
	}
}

// EncodedState returns the canonical board in the wire encoding.
func (g *Game) EncodedState() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Encode(g.board)
}

// HandleMove authoritatively re-validates and applies a move request, then
// broadcasts the new canonical state. An empty origin square is silently
// ignored; an illegal move returns an error for the controller to relay to
// the requester, with no state change and no broadcast.
func (g *Game) HandleMove(from, to string) error {
	origin, err := ParseCoord(from)
	if err != nil {
		return err
	}
	dest, err := ParseCoord(to)
	if err != nil {
		return err
	}

	// The mutex stays held through the broadcast: two sessions racing the
	// connection registry could otherwise deliver a superseded encoding
	// last, leaving every client converged on a stale board.
	g.mu.Lock()
	defer g.mu.Unlock()

	piece := g.board.At(origin)
	if piece == nil {
		log.Printf("game %s: move from empty square %s ignored", g.ID, from)
		return nil
	}
	if verdict := JudgeMove(g.board, piece, dest); !verdict.Allowed() {
		return fmt.Errorf("move %s-%s rejected: %s", from, to, verdict)
	}
	ApplyMove(g.board, piece, dest)
	g.activity.Touch()
	g.broadcastState(Encode(g.board))
	return nil
}

// Reset restores the opening position and broadcasts it. Resetting twice in
// a row yields the same canonical encoding as resetting once.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board = NewStandardBoard()
	g.activity.Touch()
	g.broadcastState(Encode(g.board))
}

// IdleWithoutConnections reports whether the game has no live sockets and
// has seen no activity for at least the given duration; the manager uses it
// to reap abandoned sessions.
func (g *Game) IdleWithoutConnections(threshold time.Duration) bool {
	g.connections.mu.RLock()
	live := len(g.connections.conns)
	g.connections.mu.RUnlock()
	return live == 0 && g.activity.IdleFor() >= threshold
}

// RegisterConnection attaches a socket to the game and immediately sends it
// the canonical state, so a reconnecting client converges without waiting
// for the next move.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.hasSeat(playerID) || g.canSpectate()
	g.mu.Unlock()
	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.conns[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil // duplicate socket, not an error
	}
	g.connections.conns[playerID] = conn
	g.connections.mu.Unlock()

	g.mu.Lock()
	g.broadcastState(Encode(g.board))
	g.mu.Unlock()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.conns, playerID)
}

// broadcastState sends the encoded canonical board to every registered
// connection as a set message. Callers hold g.mu, so broadcasts go out in
// the same order the encodings were produced. Connections that fail to take
// the write are dropped; the peer converges again on reconnect.
func (g *Game) broadcastState(encoded string) {
	payload, err := json.Marshal(encoded)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeSet, Payload: payload}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: dropping connection for %s: %v", g.ID, playerID, err)
			conn.Close()
			delete(g.connections.conns, playerID)
		}
	}
}
