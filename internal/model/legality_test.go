package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJudgeMoveOrderedRejections(t *testing.T) {
	b := NewBoard()
	place(b, King, Light, "e1")
	rook := place(b, Rook, Light, "a1")
	place(b, Knight, Light, "a4")

	tests := []struct {
		name string
		dest Coord
		want Verdict
	}{
		{"file past board", Coord{File: 8, Rank: 0}, OffBoard},
		{"rank past board", Coord{File: 0, Rank: 8}, OffBoard},
		{"negative file", Coord{File: -1, Rank: 0}, OffBoard},
		{"destination equals origin", sq("a1"), NullMove},
		{"own piece on destination", sq("a4"), FriendlySquare},
		{"diagonal rook move", sq("b2"), BadShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JudgeMove(b, rook, tt.dest); got != tt.want {
				t.Errorf("JudgeMove(rook, %v) = %v, want %v", tt.dest, got, tt.want)
			}
		})
	}
}

func TestJudgeMoveSelfCheckPrevention(t *testing.T) {
	// King on e1 faces a rook on an otherwise open e-file; the blocker on
	// e2 is pinned and may only stay on the file.
	b := NewBoard()
	place(b, King, Light, "e1")
	place(b, Rook, Dark, "e8")
	blocker := place(b, Rook, Light, "e2")

	if got := JudgeMove(b, blocker, sq("a2")); got != ExposesKing {
		t.Errorf("JudgeMove(pinned rook, a2) = %v, want %v", got, ExposesKing)
	}
	if got := JudgeMove(b, blocker, sq("e5")); got != Legal {
		t.Errorf("JudgeMove(pinned rook, e5) = %v, want %v", got, Legal)
	}
	// Capturing the attacker also resolves the pin.
	if got := JudgeMove(b, blocker, sq("e8")); got != Legal {
		t.Errorf("JudgeMove(pinned rook, e8) = %v, want %v", got, Legal)
	}
}

func TestJudgeMoveSelfCheckPrecedesShapeRules(t *testing.T) {
	// The speculative self-check test runs before the per-kind rules, so a
	// misshapen move that would also expose the king reports ExposesKing.
	b := NewBoard()
	place(b, King, Light, "e1")
	place(b, Rook, Dark, "e8")
	blocker := place(b, Rook, Light, "e2")

	if got := JudgeMove(b, blocker, sq("d3")); got != ExposesKing {
		t.Errorf("JudgeMove(pinned rook, d3) = %v, want %v", got, ExposesKing)
	}
}

func TestJudgeMoveDoesNotMutateBoard(t *testing.T) {
	b := NewBoard()
	place(b, King, Light, "e1")
	place(b, Rook, Dark, "e8")
	blocker := place(b, Rook, Light, "e2")

	before := Encode(b)
	JudgeMove(b, blocker, sq("a2"))
	JudgeMove(b, blocker, sq("e5"))
	if after := Encode(b); before != after {
		t.Errorf("JudgeMove mutated the board:\nbefore %q\nafter  %q", before, after)
	}
	if diff := cmp.Diff(sq("e2"), blocker.Pos); diff != "" {
		t.Errorf("JudgeMove moved the piece (-want +got):\n%s", diff)
	}
}

func TestJudgePawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board) (*Piece, Coord)
		want  Verdict
	}{
		{"single advance", func(b *Board) (*Piece, Coord) {
			return place(b, Pawn, Light, "e2"), sq("e3")
		}, Legal},
		{"single advance blocked", func(b *Board) (*Piece, Coord) {
			place(b, Knight, Dark, "e3")
			return place(b, Pawn, Light, "e2"), sq("e3")
		}, BadShape},
		{"double advance unmoved", func(b *Board) (*Piece, Coord) {
			return place(b, Pawn, Light, "e2"), sq("e4")
		}, Legal},
		{"double advance after moving", func(b *Board) (*Piece, Coord) {
			p := place(b, Pawn, Light, "e3")
			p.Unmoved = false
			return p, sq("e5")
		}, BadShape},
		{"double advance intermediate blocked", func(b *Board) (*Piece, Coord) {
			place(b, Knight, Dark, "e3")
			return place(b, Pawn, Light, "e2"), sq("e4")
		}, BadShape},
		{"double advance destination blocked", func(b *Board) (*Piece, Coord) {
			place(b, Knight, Dark, "e4")
			return place(b, Pawn, Light, "e2"), sq("e4")
		}, BadShape},
		{"diagonal capture", func(b *Board) (*Piece, Coord) {
			place(b, Knight, Dark, "d3")
			return place(b, Pawn, Light, "e2"), sq("d3")
		}, Legal},
		{"diagonal onto empty square", func(b *Board) (*Piece, Coord) {
			return place(b, Pawn, Light, "e2"), sq("d3")
		}, BadShape},
		{"backward move", func(b *Board) (*Piece, Coord) {
			p := place(b, Pawn, Light, "e3")
			p.Unmoved = false
			return p, sq("e2")
		}, BadShape},
		{"dark pawn advances toward rank zero", func(b *Board) (*Piece, Coord) {
			return place(b, Pawn, Dark, "e7"), sq("e6")
		}, Legal},
		{"dark pawn cannot advance toward rank seven", func(b *Board) (*Piece, Coord) {
			return place(b, Pawn, Dark, "e6"), sq("e7")
		}, BadShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			p, dest := tt.setup(b)
			if got := JudgeMove(b, p, dest); got != tt.want {
				t.Errorf("JudgeMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJudgePawnEnPassant(t *testing.T) {
	b := NewBoard()
	victim := place(b, Pawn, Light, "e4")
	victim.Unmoved = false
	victim.EnPassant = true
	attacker := place(b, Pawn, Dark, "d4")
	attacker.Unmoved = false

	if got := JudgeMove(b, attacker, sq("e3")); got != Legal {
		t.Errorf("JudgeMove(en passant) = %v, want %v", got, Legal)
	}

	// Once the window closes the same capture is a bare diagonal onto an
	// empty square.
	victim.EnPassant = false
	if got := JudgeMove(b, attacker, sq("e3")); got != BadShape {
		t.Errorf("JudgeMove(expired en passant) = %v, want %v", got, BadShape)
	}
}

func TestJudgeKnightMoves(t *testing.T) {
	b := NewBoard()
	knight := place(b, Knight, Light, "d4")
	place(b, Pawn, Dark, "e5") // knights ignore blockers

	legalDests := []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}
	for _, dest := range legalDests {
		if got := JudgeMove(b, knight, sq(dest)); got != Legal {
			t.Errorf("JudgeMove(knight, %s) = %v, want %v", dest, got, Legal)
		}
	}
	for _, dest := range []string{"d6", "f6", "c5"} {
		if got := JudgeMove(b, knight, sq(dest)); got != BadShape {
			t.Errorf("JudgeMove(knight, %s) = %v, want %v", dest, got, BadShape)
		}
	}
}

func TestJudgeSlidingObstruction(t *testing.T) {
	tests := []struct {
		name    string
		kind    PieceKind
		from    string
		blocker string
		dest    string
		want    Verdict
	}{
		{"rook clear file", Rook, "a1", "", "a8", Legal},
		{"rook blocked file", Rook, "a1", "a4", "a8", BadShape},
		{"rook capture at blocker", Rook, "a1", "a4", "a4", Legal},
		{"bishop clear diagonal", Bishop, "c1", "", "h6", Legal},
		{"bishop blocked diagonal", Bishop, "c1", "e3", "h6", BadShape},
		{"queen clear rank", Queen, "a5", "", "h5", Legal},
		{"queen blocked rank", Queen, "a5", "d5", "h5", BadShape},
		{"queen clear diagonal", Queen, "d1", "", "h5", Legal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			p := place(b, tt.kind, Light, tt.from)
			if tt.blocker != "" {
				place(b, Pawn, Dark, tt.blocker)
			}
			if got := JudgeMove(b, p, sq(tt.dest)); got != tt.want {
				t.Errorf("JudgeMove(%s, %s) = %v, want %v", tt.kind, tt.dest, got, tt.want)
			}
		})
	}
}

func TestJudgeKingCastling(t *testing.T) {
	// castleBoard sets up a light king on e1 and rooks on both corners.
	castleBoard := func() (*Board, *Piece) {
		b := NewBoard()
		king := place(b, King, Light, "e1")
		place(b, Rook, Light, "a1")
		place(b, Rook, Light, "h1")
		place(b, King, Dark, "e8")
		return b, king
	}

	t.Run("kingside legal", func(t *testing.T) {
		b, king := castleBoard()
		if got := JudgeMove(b, king, sq("g1")); got != Legal {
			t.Errorf("JudgeMove(king, g1) = %v, want %v", got, Legal)
		}
	})

	t.Run("queenside legal", func(t *testing.T) {
		b, king := castleBoard()
		if got := JudgeMove(b, king, sq("c1")); got != Legal {
			t.Errorf("JudgeMove(king, c1) = %v, want %v", got, Legal)
		}
	})

	t.Run("king has moved", func(t *testing.T) {
		b, king := castleBoard()
		king.Unmoved = false
		if got := JudgeMove(b, king, sq("g1")); got != BadShape {
			t.Errorf("JudgeMove(moved king, g1) = %v, want %v", got, BadShape)
		}
	})

	t.Run("rook has moved", func(t *testing.T) {
		b, king := castleBoard()
		b.At(sq("h1")).Unmoved = false
		if got := JudgeMove(b, king, sq("g1")); got != BadShape {
			t.Errorf("JudgeMove(king, g1) with moved rook = %v, want %v", got, BadShape)
		}
	})

	t.Run("missing corner rook", func(t *testing.T) {
		b, king := castleBoard()
		b.lift(sq("a1"))
		if got := JudgeMove(b, king, sq("c1")); got != BadShape {
			t.Errorf("JudgeMove(king, c1) without rook = %v, want %v", got, BadShape)
		}
	})

	t.Run("piece between king and rook", func(t *testing.T) {
		b, king := castleBoard()
		place(b, Knight, Light, "b1")
		if got := JudgeMove(b, king, sq("c1")); got != BadShape {
			t.Errorf("JudgeMove(king, c1) blocked = %v, want %v", got, BadShape)
		}
	})

	t.Run("passes through an attacked square", func(t *testing.T) {
		b, king := castleBoard()
		place(b, Rook, Dark, "f8")
		if got := JudgeMove(b, king, sq("g1")); got != ExposesKing {
			t.Errorf("JudgeMove(king, g1) through check = %v, want %v", got, ExposesKing)
		}
	})

	t.Run("lands on an attacked square", func(t *testing.T) {
		b, king := castleBoard()
		place(b, Rook, Dark, "g8")
		if got := JudgeMove(b, king, sq("g1")); got != ExposesKing {
			t.Errorf("JudgeMove(king, g1) into check = %v, want %v", got, ExposesKing)
		}
	})
}
