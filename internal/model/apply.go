package model

// ApplyMove executes an already-validated move of p to dest, in order:
// capture, en-passant capture, en-passant flag bookkeeping, castling's rook
// relocation, then the piece transfer itself. Callers serialize all access to
// a board, so the steps are atomic to any observer.
func ApplyMove(b *Board, p *Piece, dest Coord) {
	from := p.Pos
	df := dest.File - from.File
	fwd := p.Color.forward()

	if target := b.At(dest); target != nil && target.Color != p.Color {
		b.lift(dest)
	} else if target == nil && p.Kind == Pawn && df != 0 {
		// Diagonal pawn move onto an empty square is an en-passant
		// capture; the victim sits directly behind the destination.
		b.lift(Coord{File: dest.File, Rank: dest.Rank - fwd})
	}

	// The en-passant window lasts exactly one opposing turn: wipe it
	// everywhere, then reopen it only for a fresh two-square advance.
	for _, q := range b.Pieces() {
		q.EnPassant = false
	}
	if p.Kind == Pawn && abs(dest.Rank-from.Rank) == 2 {
		p.EnPassant = true
	}

	if p.Kind == King && abs(df) == 2 {
		castleRook(b, from, dest)
	}

	b.lift(from)
	p.Pos = dest
	b.Place(p)
	p.Unmoved = false
}

// castleRook relocates the corner rook to the square adjacent to the king's
// destination on the side castled toward. Validation already confirmed the
// rook is present and unmoved.
func castleRook(b *Board, from, dest Coord) {
	side := sign(dest.File - from.File)
	corner := Coord{File: 7, Rank: from.Rank}
	if side < 0 {
		corner.File = 0
	}
	rook := b.At(corner)
	b.lift(corner)
	rook.Pos = Coord{File: dest.File - side, Rank: from.Rank}
	b.Place(rook)
	rook.Unmoved = false
}
