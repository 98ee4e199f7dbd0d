package model

var (
	straightDirs = []Coord{{File: 1}, {File: -1}, {Rank: 1}, {Rank: -1}}
	diagonalDirs = []Coord{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	knightHops   = []Coord{
		{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1},
		{File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2},
	}
)

// IsInCheck reports whether color's king is attacked by any enemy piece. A
// board with no king of that color is not in check; that is a policy, not an
// error, so hypothetical boards stay cheap to probe. The function is pure and
// safe to run against snapshots.
func IsInCheck(b *Board, color Color) bool {
	king := b.findKing(color)
	if king == nil {
		return false
	}
	return isSquareAttacked(b, king.Pos, color.Opposite())
}

// isSquareAttacked reports whether any piece of the attacking color attacks
// the square. Sliding attacks stop at the first occupied square scanned
// outward.
func isSquareAttacked(b *Board, sq Coord, attacker Color) bool {
	for _, dir := range straightDirs {
		if p := firstAlong(b, sq, dir); p != nil && p.Color == attacker && (p.Kind == Rook || p.Kind == Queen) {
			return true
		}
	}
	for _, dir := range diagonalDirs {
		if p := firstAlong(b, sq, dir); p != nil && p.Color == attacker && (p.Kind == Bishop || p.Kind == Queen) {
			return true
		}
	}
	for _, hop := range knightHops {
		t := Coord{File: sq.File + hop.File, Rank: sq.Rank + hop.Rank}
		if t.InBounds() {
			if p := b.At(t); p != nil && p.Color == attacker && p.Kind == Knight {
				return true
			}
		}
	}
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			t := Coord{File: sq.File + df, Rank: sq.Rank + dr}
			if t.InBounds() {
				if p := b.At(t); p != nil && p.Color == attacker && p.Kind == King {
					return true
				}
			}
		}
	}
	// A pawn attacks the two squares diagonally forward of it, so the
	// attacker sits one rank behind sq relative to its own direction.
	pawnRank := sq.Rank - attacker.forward()
	for _, df := range []int{-1, 1} {
		t := Coord{File: sq.File + df, Rank: pawnRank}
		if t.InBounds() {
			if p := b.At(t); p != nil && p.Color == attacker && p.Kind == Pawn {
				return true
			}
		}
	}
	return false
}

// firstAlong walks outward from sq in dir and returns the first piece
// encountered, or nil if the ray leaves the board empty.
func firstAlong(b *Board, sq Coord, dir Coord) *Piece {
	t := Coord{File: sq.File + dir.File, Rank: sq.Rank + dir.Rank}
	for t.InBounds() {
		if p := b.At(t); p != nil {
			return p
		}
		t = Coord{File: t.File + dir.File, Rank: t.Rank + dir.Rank}
	}
	return nil
}

// pathClear reports whether every square strictly between from and to is
// unoccupied. from and to must share a rank, file, or diagonal.
func pathClear(b *Board, from, to Coord) bool {
	step := Coord{File: sign(to.File - from.File), Rank: sign(to.Rank - from.Rank)}
	t := Coord{File: from.File + step.File, Rank: from.Rank + step.Rank}
	for t != to {
		if b.At(t) != nil {
			return false
		}
		t = Coord{File: t.File + step.File, Rank: t.Rank + step.Rank}
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
