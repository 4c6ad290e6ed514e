// bitboard.go implements the 32-square packed bitboard used to represent
// the dark (playable) squares of an 8x8 checkers board, and the bitwise
// primitives move generation is built from.
//
// Square 0 is the lower-left corner (file A, rank 1); square 31 is the
// upper-right (file H, rank 8). Ranks advance every four bits; within a
// rank the dark squares are enumerated left to right:
//
//	A   B   C   D   E   F   G   H
//	  | 28|   | 29|   | 30|   | 31|   8  Black
//	24|   | 25|   | 26|   | 27|      7
//	  | 20|   | 21|   | 22|   | 23|   6
//	16|   | 17|   | 18|   | 19|      5
//	  | 12|   | 13|   | 14|   | 15|   4
//	 8|   |  9|   | 10|   | 11|      3
//	  |  4|   |  5|   |  6|   |  7|   2
//	 0|   |  1|   |  2|   |  3|      1  White
package checkers

import "math/bits"

// Bitboard is a 32-bit packed set of dark squares. Bits 32..63 are never
// set; only the low 32 bits are meaningful.
type Bitboard uint32

// Well-known constants. The exact bit sets are fixed by the original
// "ponder" checkers engine; move correctness depends on reproducing them
// verbatim.
const (
	// Empty is the empty bitboard.
	Empty Bitboard = 0

	// BlackStart is Black's initial position: squares 20..31.
	BlackStart Bitboard = 0xFFF00000
	// WhiteStart is White's initial position: squares 0..11.
	WhiteStart Bitboard = 0x00000FFF

	// BlackKingsRow is White's starting rank (squares 0..3); a Black man
	// crowns on reaching it.
	BlackKingsRow Bitboard = 0x0000000F
	// WhiteKingsRow is Black's starting rank (squares 28..31); a White man
	// crowns on reaching it.
	WhiteKingsRow Bitboard = 0xF0000000

	// Edges is the set of board-edge squares, used by the evaluator.
	Edges Bitboard = 1<<7 | 1<<8 | 1<<15 | 1<<16 | 1<<23 | 1<<24

	// MaskL3 marks squares from which a left-shift by 3 yields the correct
	// diagonal neighbor, accounting for the packed layout.
	MaskL3 Bitboard = 1<<1 | 1<<2 | 1<<3 | 1<<9 | 1<<10 | 1<<11 |
		1<<17 | 1<<18 | 1<<19 | 1<<25 | 1<<26 | 1<<27
	// MaskL5 marks squares from which a left-shift by 5 yields the correct
	// diagonal neighbor.
	MaskL5 Bitboard = 1<<4 | 1<<5 | 1<<6 | 1<<12 | 1<<13 | 1<<14 |
		1<<20 | 1<<21 | 1<<22
	// MaskR3 marks squares from which a right-shift by 3 yields the
	// correct diagonal neighbor.
	MaskR3 Bitboard = 1<<4 | 1<<5 | 1<<6 | 1<<12 | 1<<13 | 1<<14 |
		1<<20 | 1<<21 | 1<<22 | 1<<28 | 1<<29 | 1<<30
	// MaskR5 marks squares from which a right-shift by 5 yields the
	// correct diagonal neighbor.
	MaskR5 Bitboard = 1<<9 | 1<<10 | 1<<11 | 1<<17 | 1<<18 | 1<<19 |
		1<<25 | 1<<26 | 1<<27
)

// NewBitboard constructs a bitboard directly from a 32-bit pattern.
func NewBitboard(pattern uint32) Bitboard { return Bitboard(pattern) }

// NewSquare constructs a bitboard with exactly the one bit set that
// corresponds to the given 1-based file ('A'..'H') and 1-based rank
// ('1'..'8'). Only dark squares have a bit; the file/rank of a light
// square has no representation and NewSquare panics in that case.
func NewSquare(file, rank byte) Bitboard {
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		panic("checkers: file/rank out of range")
	}
	f := int(file - 'A')
	r := int(rank - '1')
	if (f+r)%2 != 0 {
		panic("checkers: square is not a playable (dark) square")
	}
	// Dark squares on even ranks sit at even files, and on odd ranks at
	// odd files.
	return 1 << (r*4 + f/2)
}

// BitCount returns the number of set bits in the bitboard.
func (b Bitboard) BitCount() int { return bits.OnesCount32(uint32(b)) }

// Ntz returns the number of trailing zero bits (the index of the least
// significant set bit). Ntz(0) == 32.
func (b Bitboard) Ntz() int { return bits.TrailingZeros32(uint32(b)) }

// LSB returns a bitboard containing only the least significant set bit of
// b, or Empty if b is Empty.
func (b Bitboard) LSB() Bitboard { return b & -b }

// Any reports whether the bitboard is nonzero.
func (b Bitboard) Any() bool { return b != 0 }

// Squares returns the 0-based indices of every set bit, ascending.
func (b Bitboard) Squares() []int {
	squares := make([]int, 0, b.BitCount())
	for b != 0 {
		lsb := b.LSB()
		squares = append(squares, lsb.Ntz())
		b &= ^lsb
	}
	return squares
}
