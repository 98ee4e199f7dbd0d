package model

// Verdict is the validator's explicit result: either Legal or the first rule
// the candidate move broke. Callers treat a negative verdict as a normal
// outcome, never as a failure of the engine.
type Verdict int

const (
	Legal Verdict = iota
	OffBoard
	NullMove
	FriendlySquare
	ExposesKing
	BadShape
)

func (v Verdict) Allowed() bool { return v == Legal }

func (v Verdict) String() string {
	switch v {
	case Legal:
		return "legal"
	case OffBoard:
		return "destination off the board"
	case NullMove:
		return "destination equals origin"
	case FriendlySquare:
		return "destination holds own piece"
	case ExposesKing:
		return "move leaves own king in check"
	case BadShape:
		return "piece cannot move that way"
	}
	return "unknown verdict"
}

// JudgeMove decides whether moving p to dest is legal on b. It is pure: the
// speculative self-check test runs on a snapshot, never on b itself. Checks
// run in a fixed order and stop at the first broken rule; in particular the
// self-check rule is evaluated before the per-kind shape rules, so a move
// that is both misshapen and self-exposing reports ExposesKing.
func JudgeMove(b *Board, p *Piece, dest Coord) Verdict {
	if !dest.InBounds() {
		return OffBoard
	}
	if dest == p.Pos {
		return NullMove
	}
	if t := b.At(dest); t != nil && t.Color == p.Color {
		return FriendlySquare
	}
	if movementExposesKing(b, p, dest) {
		return ExposesKing
	}

	switch p.Kind {
	case Pawn:
		return judgePawn(b, p, dest)
	case Knight:
		return judgeKnight(p, dest)
	case Bishop:
		return judgeBishop(b, p, dest)
	case Rook:
		return judgeRook(b, p, dest)
	case Queen:
		// A queen moves as either a bishop or a rook.
		if judgeBishop(b, p, dest) == Legal {
			return Legal
		}
		return judgeRook(b, p, dest)
	case King:
		return judgeKing(b, p, dest)
	}
	return BadShape
}

// movementExposesKing plays the move on a snapshot and asks the check
// detector whether the mover's own king ends up attacked.
func movementExposesKing(b *Board, p *Piece, dest Coord) bool {
	ghost := b.Snapshot()
	mover := ghost.At(p.Pos)
	ghost.lift(mover.Pos)
	mover.Pos = dest
	ghost.Place(mover)
	return IsInCheck(ghost, p.Color)
}

func judgePawn(b *Board, p *Piece, dest Coord) Verdict {
	fwd := p.Color.forward()
	df := dest.File - p.Pos.File
	dr := dest.Rank - p.Pos.Rank
	target := b.At(dest)

	switch {
	case df == 0 && dr == fwd && target == nil:
		return Legal
	case df == 0 && dr == 2*fwd && p.Unmoved && target == nil:
		mid := Coord{File: p.Pos.File, Rank: p.Pos.Rank + fwd}
		if b.At(mid) == nil {
			return Legal
		}
	case abs(df) == 1 && dr == fwd:
		if target != nil {
			// Enemy by construction: own pieces were rejected earlier.
			return Legal
		}
		// En passant: the victim sits directly behind the destination,
		// one rank back toward the mover.
		behind := Coord{File: dest.File, Rank: dest.Rank - fwd}
		if !behind.InBounds() {
			return BadShape
		}
		if victim := b.At(behind); victim != nil && victim.Kind == Pawn &&
			victim.Color != p.Color && victim.EnPassant {
			return Legal
		}
	}
	return BadShape
}

func judgeKnight(p *Piece, dest Coord) Verdict {
	df := abs(dest.File - p.Pos.File)
	dr := abs(dest.Rank - p.Pos.Rank)
	if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
		return Legal
	}
	return BadShape
}

func judgeBishop(b *Board, p *Piece, dest Coord) Verdict {
	df := dest.File - p.Pos.File
	dr := dest.Rank - p.Pos.Rank
	if abs(df) == abs(dr) && pathClear(b, p.Pos, dest) {
		return Legal
	}
	return BadShape
}

func judgeRook(b *Board, p *Piece, dest Coord) Verdict {
	df := dest.File - p.Pos.File
	dr := dest.Rank - p.Pos.Rank
	if (df == 0) != (dr == 0) && pathClear(b, p.Pos, dest) {
		return Legal
	}
	return BadShape
}

func judgeKing(b *Board, p *Piece, dest Coord) Verdict {
	df := dest.File - p.Pos.File
	dr := dest.Rank - p.Pos.Rank
	if abs(df) <= 1 && abs(dr) <= 1 {
		return Legal
	}
	if dr == 0 && abs(df) == 2 && p.Unmoved {
		return judgeCastle(b, p, dest)
	}
	return BadShape
}

// judgeCastle validates the compound two-square king move: the corner rook
// on the side castled toward must be an unmoved rook of the king's color,
// every square strictly between king and rook must be empty, and the square
// the king passes through must survive the same speculative check applied to
// the destination.
func judgeCastle(b *Board, p *Piece, dest Coord) Verdict {
	rookFile := 7
	if dest.File < p.Pos.File {
		rookFile = 0
	}
	corner := Coord{File: rookFile, Rank: p.Pos.Rank}
	rook := b.At(corner)
	if rook == nil || rook.Kind != Rook || rook.Color != p.Color || !rook.Unmoved {
		return BadShape
	}
	if !pathClear(b, p.Pos, corner) {
		return BadShape
	}
	passed := Coord{File: p.Pos.File + sign(dest.File-p.Pos.File), Rank: p.Pos.Rank}
	if movementExposesKing(b, p, passed) {
		return ExposesKing
	}
	return Legal
}
