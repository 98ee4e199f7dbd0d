package model

// Board is an 8x8 grid of squares indexed by (file, rank), each holding at
// most one piece. A Board carries no notion of whose turn it is; turn
// bookkeeping, if any, belongs to the session layer.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns a board with every square unoccupied.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns the canonical 32-piece opening position: Light on
// ranks 0-1, Dark on ranks 6-7, back ranks in file order R N B Q K B N R.
func NewStandardBoard() *Board {
	b := NewBoard()
	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.Place(&Piece{Kind: kind, Color: Light, Pos: Coord{File: file, Rank: 0}, Unmoved: true})
		b.Place(&Piece{Kind: kind, Color: Dark, Pos: Coord{File: file, Rank: 7}, Unmoved: true})
	}
	for file := 0; file < 8; file++ {
		b.Place(&Piece{Kind: Pawn, Color: Light, Pos: Coord{File: file, Rank: 1}, Unmoved: true})
		b.Place(&Piece{Kind: Pawn, Color: Dark, Pos: Coord{File: file, Rank: 6}, Unmoved: true})
	}
	return b
}

// At returns the occupant of the square, or nil. It never mutates the board.
func (b *Board) At(c Coord) *Piece {
	return b.squares[c.File][c.Rank]
}

// Place puts a piece on the square named by its own Pos, replacing any
// occupant. Used by setup and decoding; moves go through ApplyMove.
func (b *Board) Place(p *Piece) {
	b.squares[p.Pos.File][p.Pos.Rank] = p
}

// lift vacates a square.
func (b *Board) lift(c Coord) {
	b.squares[c.File][c.Rank] = nil
}

// Snapshot returns a deep structural copy sharing no pieces with the
// original, so speculative moves on the copy cannot disturb the canonical
// board.
func (b *Board) Snapshot() *Board {
	s := NewBoard()
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			if p := b.squares[file][rank]; p != nil {
				dup := *p
				s.squares[file][rank] = &dup
			}
		}
	}
	return s
}

// Pieces lists every piece on the board in file-major, rank-minor order.
// This is the read-only surface the rendering side consumes for placement.
func (b *Board) Pieces() []*Piece {
	var out []*Piece
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			if p := b.squares[file][rank]; p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// findKing locates the king of the given color, or nil if none is on the
// board.
func (b *Board) findKing(color Color) *Piece {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			if p := b.squares[file][rank]; p != nil && p.Kind == King && p.Color == color {
				return p
			}
		}
	}
	return nil
}
