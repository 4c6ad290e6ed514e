// descriptor.go implements the textual position descriptor: 32
// characters describing each square in ascending square-number order,
// grouped in fours by '/', followed by the side to move. Per square:
// '0' empty, 'b'/'B' a Black man/king, 'w'/'W' a White man/king.
package checkers

import (
	"errors"
	"strings"
)

// ErrMalformedDescriptor is returned when a descriptor string does not
// describe all 32 squares.
var ErrMalformedDescriptor = errors.New("checkers: malformed position descriptor")

// ParseDescriptor parses s into a Board. Any character that is not one
// of '0bBwW' is treated as a separator and skipped without consuming a
// square, so "b0b0/0w0w/..." and "b0b0 0w0w..." parse identically.
//
// After the 32nd square is consumed, ParseDescriptor scans forward for
// the first remaining 'w'/'W' or 'b'/'B' character to determine the side
// to move; White is only selected on an explicit 'w'/'W', Black is the
// default (including when the descriptor has no suffix at all).
func ParseDescriptor(s string) (Board, error) {
	var b Board
	idx := 0
	i := 0

	for idx < 32 {
		if i >= len(s) {
			return Board{}, ErrMalformedDescriptor
		}
		sq := squareBitboard(idx + 1)
		switch s[i] {
		case 'B':
			b.Kings |= sq
			b.BlackPieces |= sq
			idx++
		case 'b':
			b.BlackPieces |= sq
			idx++
		case 'W':
			b.Kings |= sq
			b.WhitePieces |= sq
			idx++
		case 'w':
			b.WhitePieces |= sq
			idx++
		case '0':
			idx++
		}
		i++
	}

	b.SideToMove = ColorBlack
	for ; i < len(s); i++ {
		switch s[i] {
		case 'w', 'W':
			b.SideToMove = ColorWhite
			return b, nil
		case 'b', 'B':
			b.SideToMove = ColorBlack
			return b, nil
		}
	}
	return b, nil
}

// String renders b as a position descriptor, the inverse of
// ParseDescriptor.
func (b Board) String() string {
	var sb strings.Builder
	for idx := 1; idx <= 32; idx++ {
		sq := squareBitboard(idx)
		var c byte
		switch {
		case b.BlackPieces&sq != 0 && b.Kings&sq != 0:
			c = 'B'
		case b.BlackPieces&sq != 0:
			c = 'b'
		case b.WhitePieces&sq != 0 && b.Kings&sq != 0:
			c = 'W'
		case b.WhitePieces&sq != 0:
			c = 'w'
		default:
			c = '0'
		}
		sb.WriteByte(c)
		if idx%4 == 0 && idx != 32 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.IsWhiteOnMove() {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}
