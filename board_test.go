package checkers

import "testing"

func TestOpeningPosition(t *testing.T) {
	b := Opening()
	if b.BlackPieces != BlackStart || b.WhitePieces != WhiteStart || b.Kings != Empty {
		t.Fatalf("Opening() = %+v, want BlackStart/WhiteStart/Empty", b)
	}
	if !b.IsBlackOnMove() {
		t.Fatal("Opening() side to move is not Black")
	}
}

// The American checkers opening position has exactly seven legal first
// moves; this is a well-known property of the starting position and a
// good end-to-end check of BlackMovers/genBlackMoves together.
func TestOpeningMoveCount(t *testing.T) {
	b := Opening()
	moves := b.GenerateMoves().Slice()
	if len(moves) != 7 {
		t.Fatalf("GenerateMoves() from Opening() returned %d moves, want 7", len(moves))
	}
	for _, m := range moves {
		if m.IsCapture() {
			t.Errorf("opening move %+v is a capture; opening position has none available", m)
		}
		if m.Orig&BlackStart == 0 {
			t.Errorf("opening move %+v does not originate on a Black piece", m)
		}
	}
}

func TestBlackMoversAtOpening(t *testing.T) {
	b := Opening()
	want := Bitboard(0x00F00000) // squares 20..23, the only rank not blocked by own pieces
	if got := b.BlackMovers(); got != want {
		t.Errorf("BlackMovers() = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestMandatoryCapture(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 21,
		WhitePieces: 1 << 18,
		SideToMove:  ColorBlack,
	}
	if b.BlackJumpers() == Empty {
		t.Fatal("test setup: expected a Black jumper at square 21")
	}

	moves := b.GenerateMoves().Slice()
	if len(moves) == 0 {
		t.Fatal("GenerateMoves() returned no moves with a jumper present")
	}
	for _, m := range moves {
		if !m.IsCapture() {
			t.Errorf("GenerateMoves() returned a non-capture %+v while a jump is available", m)
		}
	}

	ordinary := NewMove(1<<21, 1<<17, false)
	if b.IsValidMove(ordinary) {
		t.Error("IsValidMove() accepted an ordinary move while a capture was mandatory")
	}
}

func TestMultiJumpContinuesSameSide(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 21,
		WhitePieces: 1<<18 | 1<<10,
		SideToMove:  ColorBlack,
	}

	first := NewJump(1<<21, 1<<14, 1<<18, false, false)
	if !b.IsValidMove(first) {
		t.Fatalf("first leg %+v is not valid on %+v", first, b)
	}
	if cont := b.MakeMove(first); !cont {
		t.Fatal("MakeMove(first leg) = false, want true (capture continues)")
	}
	if !b.IsBlackOnMove() {
		t.Fatal("side to move flipped after a continuing capture")
	}

	moves := b.GenerateMoves().Slice()
	if len(moves) != 1 {
		t.Fatalf("after the first leg, GenerateMoves() = %d moves, want exactly 1", len(moves))
	}
	second := moves[0]
	if second.Orig != 1<<14 || second.Dest != 1<<5 || second.Capture != 1<<10 {
		t.Fatalf("second leg = %+v, want orig=14 dest=5 capture=10", second)
	}

	if cont := b.MakeMove(second); cont {
		t.Fatal("MakeMove(second leg) = true, want false (capture sequence ends)")
	}
	if !b.IsWhiteOnMove() {
		t.Fatal("side to move did not flip after the capture sequence ended")
	}
	if b.BlackPieces != 1<<5 || b.WhitePieces != Empty {
		t.Fatalf("final position = %+v, want a lone Black man on square 5", b)
	}
}

func TestCaptureAndCrownOnSameMove(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 9,
		WhitePieces: 1 << 5,
		SideToMove:  ColorBlack,
	}
	moves := b.GenerateMoves().Slice()
	if len(moves) != 1 {
		t.Fatalf("GenerateMoves() = %d moves, want 1", len(moves))
	}
	m := moves[0]
	if m.Dest != 1<<2 || !m.WillCrown {
		t.Fatalf("move = %+v, want dest=square2 WillCrown=true", m)
	}
	b.MakeMove(m)
	if b.Kings&(1<<2) == 0 {
		t.Error("capturing move onto the kings row did not crown the mover")
	}
}

// Crowning must only set the destination square's king bit, never clear
// or otherwise disturb any other king already on the board.
func TestCrowningDoesNotDisturbOtherKings(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 4,
		WhitePieces: 1 << 31,
		Kings:       1 << 31,
		SideToMove:  ColorBlack,
	}
	m := NewMove(1<<4, 1<<0, true)
	if !b.IsValidMove(m) {
		t.Fatalf("%+v is not valid on %+v", m, b)
	}
	b.MakeMove(m)

	if b.Kings&(1<<31) == 0 {
		t.Error("crowning a Black man cleared an unrelated White king")
	}
	if b.Kings&(1<<0) == 0 {
		t.Error("crowning a Black man did not set the new king's bit")
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	original := Opening()
	for _, m := range original.GenerateMoves().Slice() {
		b := original
		b.MakeMove(m)
		b.UndoMove(m)
		if b != original {
			t.Errorf("MakeMove/UndoMove(%+v) left %+v, want %+v", m, b, original)
		}
	}
}

func TestMakeUndoRoundTripAcrossCapture(t *testing.T) {
	original := Board{
		BlackPieces: 1 << 21,
		WhitePieces: 1<<18 | 1<<10,
		SideToMove:  ColorBlack,
	}
	b := original
	m := NewJump(1<<21, 1<<14, 1<<18, false, false)
	b.MakeMove(m)
	b.UndoMove(m)
	if b != original {
		t.Errorf("round trip across a capture left %+v, want %+v", b, original)
	}
}

func TestIsWinningIsLosing(t *testing.T) {
	winning := Board{BlackPieces: 1 << 0, WhitePieces: Empty, SideToMove: ColorBlack}
	if !winning.IsWinning() {
		t.Error("IsWinning() = false when the opponent has no pieces")
	}

	losing := Board{BlackPieces: 1 << 0, WhitePieces: 1 << 31, SideToMove: ColorBlack}
	if losing.IsWinning() {
		t.Error("IsWinning() = true when the opponent still has a piece")
	}
	if !losing.IsLosing() {
		t.Error("IsLosing() = false for a Black man with no movers and no jumpers")
	}
}
