// move.go implements the immutable descriptor of a single checkers ply.
package checkers

// Move is an immutable descriptor of a single ply: origin, destination,
// the captured square (Empty for a non-capturing step), whether the
// captured piece was a king, and whether this ply crowns the mover.
//
// All Bitboard fields hold at most one set bit, except Capture which may
// be Empty. Moves compare by equality on all five fields; being a plain
// comparable struct, Go's == and != already implement that.
type Move struct {
	Orig          Bitboard
	Dest          Bitboard
	Capture       Bitboard
	CaptureIsKing bool
	WillCrown     bool
}

// NewMove constructs a non-capturing move.
func NewMove(orig, dest Bitboard, willCrown bool) Move {
	return Move{Orig: orig, Dest: dest, WillCrown: willCrown}
}

// NewJump constructs a capturing move.
func NewJump(orig, dest, capture Bitboard, captureIsKing, willCrown bool) Move {
	return Move{
		Orig:          orig,
		Dest:          dest,
		Capture:       capture,
		CaptureIsKing: captureIsKing,
		WillCrown:     willCrown,
	}
}

// IsCapture reports whether this move captures an opposing piece.
func (m Move) IsCapture() bool { return m.Capture != Empty }

// MoveList stores moves in a preallocated array to avoid dynamic memory
// allocation during move generation. The maximum number of movers on a
// 32-square board is 12 per side, each contributing at most 4 moves
// (2 ordinary diagonals/2 jump directions for a man, or 4 for a king), so
// 48 slots (12 x 4) are exactly enough for every reachable position.
type MoveList struct {
	Moves         [48]Move
	LastMoveIndex int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

// Slice returns the populated prefix of the move list.
func (l MoveList) Slice() []Move { return l.Moves[:l.LastMoveIndex] }

// Contains reports whether m is present in the list (compared by value
// equality on all five fields of Move).
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.LastMoveIndex; i++ {
		if l.Moves[i] == m {
			return true
		}
	}
	return false
}
