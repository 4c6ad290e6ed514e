/*
zobrist.go implements Zobrist hashing so a position can be used as a
transposition-table lookup key.
*/
package checkers

import "math/rand/v2"

// Keys are generated randomly and large enough that the probability of a
// hash collision is negligible.
var (
	// pieceKeys is indexed [kind][square], kind 0..3 = black man, black
	// king, white man, white king.
	pieceKeys [4][32]uint64
	// colorKey is folded in only when White is to move.
	colorKey uint64
)

const (
	keyBlackMan = iota
	keyBlackKing
	keyWhiteMan
	keyWhiteKing
)

/*
InitZobristKeys initializes the pseudo-random keys used by Board.Hash.
Call this once, as close to program start as possible; without it every
key is zero and Hash degenerates to always returning the same value for
a given side to move.
*/
func InitZobristKeys() {
	for kind := 0; kind < 4; kind++ {
		for square := range 32 {
			pieceKeys[kind][square] = rand.Uint64()
		}
	}
	colorKey = rand.Uint64()
}

// Hash returns a Zobrist hash of b, suitable as a transposition-table
// key. It does not distinguish among pending multi-jump continuations of
// the same side, only among BlackPieces/WhitePieces/Kings/SideToMove.
func (b Board) Hash() (key uint64) {
	blackMen, whiteMen := b.BlackMen(), b.WhiteMen()
	blackKings, whiteKings := b.BlackKings(), b.WhiteKings()

	for blackMen != 0 {
		sq := blackMen.Ntz()
		blackMen &^= blackMen.LSB()
		key ^= pieceKeys[keyBlackMan][sq]
	}
	for blackKings != 0 {
		sq := blackKings.Ntz()
		blackKings &^= blackKings.LSB()
		key ^= pieceKeys[keyBlackKing][sq]
	}
	for whiteMen != 0 {
		sq := whiteMen.Ntz()
		whiteMen &^= whiteMen.LSB()
		key ^= pieceKeys[keyWhiteMan][sq]
	}
	for whiteKings != 0 {
		sq := whiteKings.Ntz()
		whiteKings &^= whiteKings.LSB()
		key ^= pieceKeys[keyWhiteKing][sq]
	}

	if b.IsWhiteOnMove() {
		key ^= colorKey
	}
	return key
}
