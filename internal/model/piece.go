package model

import "fmt"

// Color identifies a side. Light starts on ranks 0-1 and advances toward
// increasing rank; Dark starts on ranks 6-7 and advances toward decreasing
// rank.
type Color int

const (
	Light Color = iota
	Dark
)

func (c Color) String() string {
	if c == Light {
		return "light"
	}
	return "dark"
}

func (c Color) Opposite() Color {
	if c == Light {
		return Dark
	}
	return Light
}

// forward is the rank direction this side's pawns advance in.
func (c Color) forward() int {
	if c == Light {
		return 1
	}
	return -1
}

type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// kindLetters maps PieceKind to its codec letter, indexed by kind value.
const kindLetters = "pnbrqk"

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "unknown"
}

// Coord addresses a square as (file, rank), each in [0,7]. Rank 0 is Light's
// back rank.
type Coord struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File <= 7 && c.Rank >= 0 && c.Rank <= 7
}

// String renders the square in chess notation, e.g. "e2".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.File, c.Rank+1)
}

// ParseCoord reads a two-character chess coordinate such as "a1" or "h8".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("coordinate %q: want 2 characters", s)
	}
	c := Coord{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("coordinate %q: out of range", s)
	}
	return c, nil
}

// Piece is owned by the square it occupies; the applier transfers that
// ownership between squares, it never copies a piece within a board.
type Piece struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
	Pos   Coord     `json:"position"`
	// Unmoved starts true and drops permanently the first time the applier
	// relocates the piece, including a rook relocated by castling.
	Unmoved bool `json:"unmoved"`
	// EnPassant marks a pawn that just made its two-square advance. It
	// holds for exactly one opposing turn: the applier clears it on every
	// piece before flagging the pawn it just advanced.
	EnPassant bool `json:"enPassant"`
}
