package ws

import (
	"encoding/json"
)

// MessageType discriminates the messages exchanged over a game connection.
type MessageType string

const (
	// MessageTypeMove is a client's request to move a piece.
	MessageTypeMove MessageType = "move"
	// MessageTypeReset is a client's request to restore the opening position.
	MessageTypeReset MessageType = "reset"
	// MessageTypeSet carries the canonical encoded board; clients replace
	// their whole local board with it.
	MessageTypeSet MessageType = "set"
	// MessageTypeError tells the requesting client why its request was
	// dropped.
	MessageTypeError MessageType = "error"
)

// Message is the envelope for every WebSocket frame in the protocol.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload names the origin and destination squares in chess notation,
// e.g. {"from":"e2","to":"e4"}.
type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}
