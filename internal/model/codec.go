package model

import (
	"fmt"
	"strings"
)

// The wire encoding is a sequence of 6-byte records, one per occupied
// square, with no separators:
//
//	byte 0    piece kind letter: p n b r q k
//	byte 1    color digit: '0' Light, '1' Dark
//	bytes 2-3 square in chess notation: file 'a'..'h', rank '1'..'8'
//	byte 4    en-passant flag: '0' or '1'
//	byte 5    unmoved flag: '0' or '1'
//
// Records carry their own position, so decoders accept them in any order.

const recordLen = 6

// DecodeError reports the offending record and field of a malformed
// encoding.
type DecodeError struct {
	Offset int    // byte offset of the record the error was found in
	Field  string // which field was malformed
	Got    byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode board: record at byte %d: bad %s character %q", e.Offset, e.Field, e.Got)
}

// Encode renders the board in the wire format, visiting squares file-major.
func Encode(b *Board) string {
	var sb strings.Builder
	for _, p := range b.Pieces() {
		sb.WriteByte(kindLetters[p.Kind])
		sb.WriteByte(flagDigit(p.Color == Dark))
		sb.WriteByte(byte('a' + p.Pos.File))
		sb.WriteByte(byte('1' + p.Pos.Rank))
		sb.WriteByte(flagDigit(p.EnPassant))
		sb.WriteByte(flagDigit(p.Unmoved))
	}
	return sb.String()
}

// Decode rebuilds a board from the wire format. Any malformed field is an
// error; in particular an unrecognized kind letter is rejected rather than
// defaulted.
func Decode(s string) (*Board, error) {
	if len(s)%recordLen != 0 {
		return nil, fmt.Errorf("decode board: length %d is not a multiple of %d", len(s), recordLen)
	}
	b := NewBoard()
	for off := 0; off < len(s); off += recordLen {
		rec := s[off : off+recordLen]

		kind := strings.IndexByte(kindLetters, rec[0])
		if kind < 0 {
			return nil, &DecodeError{Offset: off, Field: "kind", Got: rec[0]}
		}
		color, err := flagValue(rec[1])
		if err != nil {
			return nil, &DecodeError{Offset: off, Field: "color", Got: rec[1]}
		}
		if rec[2] < 'a' || rec[2] > 'h' {
			return nil, &DecodeError{Offset: off, Field: "file", Got: rec[2]}
		}
		if rec[3] < '1' || rec[3] > '8' {
			return nil, &DecodeError{Offset: off, Field: "rank", Got: rec[3]}
		}
		pos := Coord{File: int(rec[2] - 'a'), Rank: int(rec[3] - '1')}
		enPassant, err := flagValue(rec[4])
		if err != nil {
			return nil, &DecodeError{Offset: off, Field: "en-passant flag", Got: rec[4]}
		}
		unmoved, err := flagValue(rec[5])
		if err != nil {
			return nil, &DecodeError{Offset: off, Field: "unmoved flag", Got: rec[5]}
		}

		p := &Piece{Kind: PieceKind(kind), Pos: pos, EnPassant: enPassant, Unmoved: unmoved}
		if color {
			p.Color = Dark
		}
		b.Place(p)
	}
	return b, nil
}

func flagDigit(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

func flagValue(c byte) (bool, error) {
	switch c {
	case '0':
		return false, nil
	case '1':
		return true, nil
	}
	return false, fmt.Errorf("bad flag %q", c)
}
