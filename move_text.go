// move_text.go implements the minimal move-text grammar the core
// exposes to a caller: two 1-based square numbers (1-32), each the
// bitboard index plus one, so square 1 is A1 on White's home rank and
// Black starts on 21-32 (the reverse of the conventional English-draughts
// numbering), separated by '-' for a step or 'x' for a capture, e.g.
// "11-15" or "9x18". Anything richer (multi-jump
// chains in one token, abbreviated notation) belongs to a dispatcher, not
// here.
package checkers

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned when move text parses grammatically but
// names no move the side to move may legally play.
var ErrIllegalMove = errors.New("checkers: illegal move")

// ErrMalformedMoveText is returned when the input is not two square
// numbers joined by '-' or 'x'.
var ErrMalformedMoveText = errors.New("checkers: malformed move text")

// squareNumber converts a single-bit Bitboard to its 1-based square
// number (1-32).
func squareNumber(b Bitboard) int { return b.Ntz() + 1 }

// squareBitboard converts a 1-based square number (1-32) back to its
// single-bit Bitboard.
func squareBitboard(n int) Bitboard { return 1 << (n - 1) }

// FormatMove renders m in move-text form.
func FormatMove(m Move) string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%d%s%d", squareNumber(m.Orig), sep, squareNumber(m.Dest))
}

// ParseMoveText parses s as move text and resolves it against
// b.GenerateMoves(), returning ErrIllegalMove if no legal move matches
// the parsed origin/destination/capture-or-step shape.
func (b Board) ParseMoveText(s string) (Move, error) {
	var orig, dest int
	var sep byte

	n, err := fmt.Sscanf(s, "%d%c%d", &orig, &sep, &dest)
	if err != nil || n != 3 {
		return Move{}, ErrMalformedMoveText
	}
	if orig < 1 || orig > 32 || dest < 1 || dest > 32 {
		return Move{}, ErrMalformedMoveText
	}
	wantCapture := false
	switch sep {
	case '-':
		wantCapture = false
	case 'x':
		wantCapture = true
	default:
		return Move{}, ErrMalformedMoveText
	}

	origBB, destBB := squareBitboard(orig), squareBitboard(dest)
	list := b.GenerateMoves()
	for _, m := range list.Slice() {
		if m.Orig == origBB && m.Dest == destBB && m.IsCapture() == wantCapture {
			return m, nil
		}
	}
	return Move{}, ErrIllegalMove
}
