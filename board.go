// board.go implements position state, legality tests, the mover/jumper
// bitboard generators, move enumeration, and make/undo.
package checkers

import "fmt"

// Color identifies the side to move.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
)

// Board is the full state of a checkers position: the two side bitboards,
// the king bitboard, and whose turn it is.
//
// Invariants (hold at every quiescent state, see spec.md §3 and §8):
//   - BlackPieces & WhitePieces == Empty
//   - Kings is a subset of BlackPieces | WhitePieces
//   - no bit is set outside positions 0..31
type Board struct {
	BlackPieces Bitboard
	WhitePieces Bitboard
	Kings       Bitboard
	SideToMove  Color
}

// Opening returns the initial checkers position, Black to move.
func Opening() Board {
	return Board{
		BlackPieces: BlackStart,
		WhitePieces: WhiteStart,
		Kings:       Empty,
		SideToMove:  ColorBlack,
	}
}

// Occupied returns the bitboard of every occupied square.
func (b Board) Occupied() Bitboard { return b.BlackPieces | b.WhitePieces }

// NotOccupied returns the bitboard of every empty square.
func (b Board) NotOccupied() Bitboard { return ^b.Occupied() }

// BlackMen returns Black's uncrowned pieces.
func (b Board) BlackMen() Bitboard { return b.BlackPieces &^ b.Kings }

// WhiteMen returns White's uncrowned pieces.
func (b Board) WhiteMen() Bitboard { return b.WhitePieces &^ b.Kings }

// BlackKings returns Black's crowned pieces.
func (b Board) BlackKings() Bitboard { return b.BlackPieces & b.Kings }

// WhiteKings returns White's crowned pieces.
func (b Board) WhiteKings() Bitboard { return b.WhitePieces & b.Kings }

// IsBlackOnMove reports whether it is Black's turn.
func (b Board) IsBlackOnMove() bool { return b.SideToMove == ColorBlack }

// IsWhiteOnMove reports whether it is White's turn.
func (b Board) IsWhiteOnMove() bool { return b.SideToMove == ColorWhite }

// ---------------------------------------------------------------------
// Mover / jumper generators.
//
// These are pure bitboard arithmetic built from the four shift-mask
// tables; there is no per-square loop.
// ---------------------------------------------------------------------

// BlackMovers returns the bitboard of Black pieces that can make some
// ordinary (non-capturing) move this ply.
func (b Board) BlackMovers() Bitboard {
	notOccupied := b.NotOccupied()
	blackKings := b.BlackKings()

	movers := (notOccupied << 4) & b.BlackPieces
	movers |= ((notOccupied & MaskL3) << 3) & b.BlackPieces
	movers |= ((notOccupied & MaskL5) << 5) & b.BlackPieces

	if blackKings != 0 {
		movers |= (notOccupied >> 4) & blackKings
		movers |= ((notOccupied & MaskR3) >> 3) & blackKings
		movers |= ((notOccupied & MaskR5) >> 5) & blackKings
	}
	return movers
}

// WhiteMovers returns the bitboard of White pieces that can make some
// ordinary (non-capturing) move this ply.
func (b Board) WhiteMovers() Bitboard {
	notOccupied := b.NotOccupied()
	whiteKings := b.WhiteKings()

	movers := (notOccupied >> 4) & b.WhitePieces
	movers |= ((notOccupied & MaskR3) >> 3) & b.WhitePieces
	movers |= ((notOccupied & MaskR5) >> 5) & b.WhitePieces

	if whiteKings != 0 {
		movers |= (notOccupied << 4) & whiteKings
		movers |= ((notOccupied & MaskL3) << 3) & whiteKings
		movers |= ((notOccupied & MaskL5) << 5) & whiteKings
	}
	return movers
}

// BlackJumpers returns the bitboard of Black pieces that can capture at
// least one White piece this ply.
func (b Board) BlackJumpers() Bitboard {
	notOccupied := b.NotOccupied()
	blackKings := b.BlackKings()
	var jumpers Bitboard

	temp := (notOccupied << 4) & b.WhitePieces
	if temp != 0 {
		jumpers |= (((temp & MaskL3) << 3) | ((temp & MaskL5) << 5)) & b.BlackPieces
	}
	temp = (((notOccupied & MaskL3) << 3) | ((notOccupied & MaskL5) << 5)) & b.WhitePieces
	if temp != 0 {
		jumpers |= (temp << 4) & b.BlackPieces
	}

	if blackKings != 0 {
		temp = (notOccupied >> 4) & b.WhitePieces
		if temp != 0 {
			jumpers |= (((temp & MaskR3) >> 3) | ((temp & MaskR5) >> 5)) & blackKings
		}
		temp = (((notOccupied & MaskR3) >> 3) | ((notOccupied & MaskR5) >> 5)) & b.WhitePieces
		if temp != 0 {
			jumpers |= (temp >> 4) & blackKings
		}
	}
	return jumpers
}

// WhiteJumpers returns the bitboard of White pieces that can capture at
// least one Black piece this ply.
func (b Board) WhiteJumpers() Bitboard {
	notOccupied := b.NotOccupied()
	whiteKings := b.WhiteKings()
	var jumpers Bitboard

	temp := (notOccupied >> 4) & b.BlackPieces
	if temp != 0 {
		jumpers |= (((temp & MaskR3) >> 3) | ((temp & MaskR5) >> 5)) & b.WhitePieces
	}
	temp = (((notOccupied & MaskR3) >> 3) | ((notOccupied & MaskR5) >> 5)) & b.BlackPieces
	if temp != 0 {
		jumpers |= (temp >> 4) & b.WhitePieces
	}

	if whiteKings != 0 {
		temp = (notOccupied << 4) & b.BlackPieces
		if temp != 0 {
			jumpers |= (((temp & MaskL3) << 3) | ((temp & MaskL5) << 5)) & whiteKings
		}
		temp = (((notOccupied & MaskL3) << 3) | ((notOccupied & MaskL5) << 5)) & b.BlackPieces
		if temp != 0 {
			jumpers |= (temp << 4) & whiteKings
		}
	}
	return jumpers
}

// ---------------------------------------------------------------------
// Legality.
// ---------------------------------------------------------------------

// blackManTargets returns the bitboard of squares a Black man standing on
// orig could step to, geometry only (ignoring occupancy).
func blackManTargets(orig Bitboard) Bitboard {
	return (orig >> 4) | ((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)
}

// blackKingTargets additionally includes the backward diagonals available
// to a king.
func blackKingTargets(orig Bitboard) Bitboard {
	return blackManTargets(orig) | (orig << 4) | ((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)
}

// whiteManTargets returns the bitboard of squares a White man standing on
// orig could step to, geometry only (ignoring occupancy).
func whiteManTargets(orig Bitboard) Bitboard {
	return (orig << 4) | ((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)
}

// whiteKingTargets additionally includes the backward diagonals available
// to a king.
func whiteKingTargets(orig Bitboard) Bitboard {
	return whiteManTargets(orig) | (orig >> 4) | ((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)
}

// IsValidBlackMove reports whether m is a legal ordinary (non-capturing)
// move for Black: origin on a Black piece, destination empty, and the
// geometry of orig->dest is legal for a man or a king as appropriate.
func (b Board) IsValidBlackMove(m Move) bool {
	if b.BlackPieces&m.Orig == 0 || b.NotOccupied()&m.Dest == 0 {
		return false
	}
	if b.Kings&m.Orig != 0 {
		return blackKingTargets(m.Orig)&m.Dest != 0
	}
	return blackManTargets(m.Orig)&m.Dest != 0
}

// IsValidBlackJump reports whether m is a legal capturing move for Black:
// origin on a Black piece, destination empty, capture square on a White
// piece. The geometry is implicit in the caller having produced the move
// via the jump generator.
func (b Board) IsValidBlackJump(m Move) bool {
	return b.BlackPieces&m.Orig != 0 &&
		b.NotOccupied()&m.Dest != 0 &&
		b.WhitePieces&m.Capture != 0
}

// IsValidWhiteMove mirrors IsValidBlackMove for White.
func (b Board) IsValidWhiteMove(m Move) bool {
	if b.WhitePieces&m.Orig == 0 || b.NotOccupied()&m.Dest == 0 {
		return false
	}
	if b.Kings&m.Orig != 0 {
		return whiteKingTargets(m.Orig)&m.Dest != 0
	}
	return whiteManTargets(m.Orig)&m.Dest != 0
}

// IsValidWhiteJump mirrors IsValidBlackJump for White.
func (b Board) IsValidWhiteJump(m Move) bool {
	return b.WhitePieces&m.Orig != 0 &&
		b.NotOccupied()&m.Dest != 0 &&
		b.BlackPieces&m.Capture != 0
}

// IsValidMove reports whether m is legal for the side to move, enforcing
// the mandatory-capture rule: if the side to move has any jumper, m must
// be a legal jump; otherwise m must be a legal ordinary move.
func (b Board) IsValidMove(m Move) bool {
	if b.IsBlackOnMove() {
		if b.BlackJumpers() != 0 {
			return b.IsValidBlackJump(m)
		}
		return b.IsValidBlackMove(m)
	}
	if b.WhiteJumpers() != 0 {
		return b.IsValidWhiteJump(m)
	}
	return b.IsValidWhiteMove(m)
}

// ---------------------------------------------------------------------
// Move enumeration.
// ---------------------------------------------------------------------

// GenerateMoves returns every legal ply-move for the side to move. If the
// side has any jumper, only jumps are returned (mandatory capture);
// otherwise only ordinary steps are returned. Only single-jump moves are
// produced; chaining captures within one ply is handled by MakeMove's
// return value, see spec.md §4.6.
func (b Board) GenerateMoves() MoveList {
	var moves MoveList
	if b.IsBlackOnMove() {
		if b.BlackJumpers() != 0 {
			b.genBlackJumps(&moves)
		} else {
			b.genBlackMoves(&moves)
		}
	} else {
		if b.WhiteJumpers() != 0 {
			b.genWhiteJumps(&moves)
		} else {
			b.genWhiteMoves(&moves)
		}
	}
	return moves
}

func (b Board) genBlackMoves(moves *MoveList) {
	movers := b.BlackMovers()
	notOccupied := b.NotOccupied()

	for movers != 0 {
		orig := movers.LSB()
		movers &^= orig

		if dest := (orig >> 4) & notOccupied; dest != 0 {
			moves.Push(NewMove(orig, dest, orig&b.Kings == 0 && dest&BlackKingsRow != 0))
		}
		if dest := (((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)) & notOccupied; dest != 0 {
			moves.Push(NewMove(orig, dest, orig&b.Kings == 0 && dest&BlackKingsRow != 0))
		}

		if orig&b.Kings != 0 {
			if dest := (orig << 4) & notOccupied; dest != 0 {
				moves.Push(NewMove(orig, dest, false))
			}
			if dest := (((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)) & notOccupied; dest != 0 {
				moves.Push(NewMove(orig, dest, false))
			}
		}
	}
}

func (b Board) genWhiteMoves(moves *MoveList) {
	movers := b.WhiteMovers()
	notOccupied := b.NotOccupied()

	for movers != 0 {
		orig := movers.LSB()
		movers &^= orig

		if dest := (orig << 4) & notOccupied; dest != 0 {
			moves.Push(NewMove(orig, dest, orig&b.Kings == 0 && dest&WhiteKingsRow != 0))
		}
		if dest := (((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)) & notOccupied; dest != 0 {
			moves.Push(NewMove(orig, dest, orig&b.Kings == 0 && dest&WhiteKingsRow != 0))
		}

		if orig&b.Kings != 0 {
			if dest := (orig >> 4) & notOccupied; dest != 0 {
				moves.Push(NewMove(orig, dest, false))
			}
			if dest := (((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)) & notOccupied; dest != 0 {
				moves.Push(NewMove(orig, dest, false))
			}
		}
	}
}

func (b Board) genBlackJumps(moves *MoveList) {
	jumpers := b.BlackJumpers()
	notOccupied := b.NotOccupied()

	for jumpers != 0 {
		orig := jumpers.LSB()
		jumpers &^= orig

		if capture := (orig >> 4) & b.WhitePieces; capture != 0 {
			if dest := (((capture & MaskR3) >> 3) | ((capture & MaskR5) >> 5)) & notOccupied; dest != 0 {
				moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0,
					orig&b.Kings == 0 && dest&BlackKingsRow != 0))
			}
		}
		if capture := (((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)) & b.WhitePieces; capture != 0 {
			if dest := (capture >> 4) & notOccupied; dest != 0 {
				moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0,
					orig&b.Kings == 0 && dest&BlackKingsRow != 0))
			}
		}

		if orig&b.Kings != 0 {
			if capture := (orig << 4) & b.WhitePieces; capture != 0 {
				if dest := (((capture & MaskL3) << 3) | ((capture & MaskL5) << 5)) & notOccupied; dest != 0 {
					moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0, false))
				}
			}
			if capture := (((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)) & b.WhitePieces; capture != 0 {
				if dest := (capture << 4) & notOccupied; dest != 0 {
					moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0, false))
				}
			}
		}
	}
}

func (b Board) genWhiteJumps(moves *MoveList) {
	jumpers := b.WhiteJumpers()
	notOccupied := b.NotOccupied()

	for jumpers != 0 {
		orig := jumpers.LSB()
		jumpers &^= orig

		if capture := (orig << 4) & b.BlackPieces; capture != 0 {
			if dest := (((capture & MaskL3) << 3) | ((capture & MaskL5) << 5)) & notOccupied; dest != 0 {
				moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0,
					orig&b.Kings == 0 && dest&WhiteKingsRow != 0))
			}
		}
		if capture := (((orig & MaskL3) << 3) | ((orig & MaskL5) << 5)) & b.BlackPieces; capture != 0 {
			if dest := (capture << 4) & notOccupied; dest != 0 {
				moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0,
					orig&b.Kings == 0 && dest&WhiteKingsRow != 0))
			}
		}

		if orig&b.Kings != 0 {
			if capture := (orig >> 4) & b.BlackPieces; capture != 0 {
				if dest := (((capture & MaskR3) >> 3) | ((capture & MaskR5) >> 5)) & notOccupied; dest != 0 {
					moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0, false))
				}
			}
			if capture := (((orig & MaskR3) >> 3) | ((orig & MaskR5) >> 5)) & b.BlackPieces; capture != 0 {
				if dest := (capture >> 4) & notOccupied; dest != 0 {
					moves.Push(NewJump(orig, dest, capture, capture&b.Kings != 0, false))
				}
			}
		}
	}
}

// ---------------------------------------------------------------------
// Make / undo.
// ---------------------------------------------------------------------

// MakeMove applies m to the board. It panics if m is not legal for the
// side to move; internal invariant breaches are programming defects, not
// recoverable conditions (spec.md §7).
//
// MakeMove returns true when m captured a piece and, after applying it,
// the mover's destination square is itself a member of the newly
// recomputed jumper set: the same side must immediately supply another
// jump move originating at that square, and side-to-move is NOT flipped.
// Otherwise it flips side-to-move and returns false.
func (b *Board) MakeMove(m Move) bool {
	if !b.IsValidMove(m) {
		panic(fmt.Sprintf("checkers: MakeMove called with an illegal move %+v", m))
	}
	if b.IsBlackOnMove() {
		return b.makeBlackMove(m)
	}
	return b.makeWhiteMove(m)
}

func (b *Board) makeBlackMove(m Move) bool {
	wasKing := b.Kings&m.Orig != 0

	b.BlackPieces &^= m.Orig
	b.BlackPieces |= m.Dest
	if wasKing {
		b.Kings &^= m.Orig
		b.Kings |= m.Dest
	}
	if m.WillCrown {
		// Set ONLY the destination's king bit; the original C++
		// implementation ANDs here, which clears every other king on
		// the board. spec.md §9 calls this out as a defect.
		b.Kings |= m.Dest
	}

	if m.Capture != Empty {
		b.WhitePieces &^= m.Capture
		if m.CaptureIsKing {
			b.Kings &^= m.Capture
		}
		if m.Dest&b.BlackJumpers() != 0 {
			return true
		}
	}

	b.SideToMove = ColorWhite
	return false
}

func (b *Board) makeWhiteMove(m Move) bool {
	wasKing := b.Kings&m.Orig != 0

	b.WhitePieces &^= m.Orig
	b.WhitePieces |= m.Dest
	if wasKing {
		b.Kings &^= m.Orig
		b.Kings |= m.Dest
	}
	if m.WillCrown {
		b.Kings |= m.Dest
	}

	if m.Capture != Empty {
		b.BlackPieces &^= m.Capture
		if m.CaptureIsKing {
			b.Kings &^= m.Capture
		}
		if m.Dest&b.WhiteJumpers() != 0 {
			return true
		}
	}

	b.SideToMove = ColorBlack
	return false
}

// UndoMove is the mirror of MakeMove: it restores the board to the state
// it was in before m was applied, including side-to-move. The
// postcondition is that IsValidMove(m) is true again.
func (b *Board) UndoMove(m Move) {
	if m.Dest&b.BlackPieces != 0 {
		b.undoBlackMove(m)
	} else {
		b.undoWhiteMove(m)
	}
}

func (b *Board) undoBlackMove(m Move) {
	// Before the move, dest was empty, so any king bit there now came
	// either from transferring orig's king-ness or from crowning.
	wasKing := b.Kings&m.Dest != 0 && !m.WillCrown

	b.Kings &^= m.Dest
	if wasKing {
		b.Kings |= m.Orig
	}

	b.BlackPieces &^= m.Dest
	b.BlackPieces |= m.Orig

	if m.Capture != Empty {
		b.WhitePieces |= m.Capture
		if m.CaptureIsKing {
			b.Kings |= m.Capture
		}
	}

	// Whatever make_move returned, the position before this leg always
	// had Black to move.
	b.SideToMove = ColorBlack
}

func (b *Board) undoWhiteMove(m Move) {
	wasKing := b.Kings&m.Dest != 0 && !m.WillCrown

	b.Kings &^= m.Dest
	if wasKing {
		b.Kings |= m.Orig
	}

	b.WhitePieces &^= m.Dest
	b.WhitePieces |= m.Orig

	if m.Capture != Empty {
		b.BlackPieces |= m.Capture
		if m.CaptureIsKing {
			b.Kings |= m.Capture
		}
	}

	b.SideToMove = ColorWhite
}

// ---------------------------------------------------------------------
// Terminal state.
// ---------------------------------------------------------------------

// IsWinning reports whether the side to move has already won because the
// opponent has no pieces left.
func (b Board) IsWinning() bool {
	if b.IsBlackOnMove() {
		return b.WhitePieces == Empty
	}
	return b.BlackPieces == Empty
}

// IsLosing reports whether the side to move has already lost because it
// has neither movers nor jumpers.
func (b Board) IsLosing() bool {
	if b.IsBlackOnMove() {
		return b.BlackJumpers() == Empty && b.BlackMovers() == Empty
	}
	return b.WhiteJumpers() == Empty && b.WhiteMovers() == Empty
}
