package checkers

import "testing"

func TestParseMoveTextStep(t *testing.T) {
	b := Opening()
	m, err := b.ParseMoveText("21-17")
	if err != nil {
		t.Fatalf("ParseMoveText(21-17) returned error: %v", err)
	}
	if m.Orig != 1<<20 || m.Dest != 1<<16 {
		t.Errorf("ParseMoveText(21-17) = %+v, want orig=square20 dest=square16", m)
	}
}

func TestParseMoveTextCapture(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 21,
		WhitePieces: 1 << 18,
		SideToMove:  ColorBlack,
	}
	m, err := b.ParseMoveText("22x15")
	if err != nil {
		t.Fatalf("ParseMoveText(22x15) returned error: %v", err)
	}
	if m.Capture != 1<<18 {
		t.Errorf("ParseMoveText(22x15) = %+v, want capture=square18", m)
	}
}

func TestParseMoveTextRejectsWrongSeparator(t *testing.T) {
	b := Board{
		BlackPieces: 1 << 21,
		WhitePieces: 1 << 18,
		SideToMove:  ColorBlack,
	}
	// 22x15 is the legal capture; asking for it with '-' must fail since
	// the mandatory-capture shape doesn't match a non-capturing step.
	if _, err := b.ParseMoveText("22-15"); err != ErrIllegalMove {
		t.Errorf("ParseMoveText(22-15) = %v, want ErrIllegalMove", err)
	}
}

func TestParseMoveTextMalformed(t *testing.T) {
	b := Opening()
	tests := []string{"", "21", "21*17", "0-5", "21-33"}
	for _, s := range tests {
		if _, err := b.ParseMoveText(s); err != ErrMalformedMoveText {
			t.Errorf("ParseMoveText(%q) = %v, want ErrMalformedMoveText", s, err)
		}
	}
}

func TestFormatMoveRoundTrip(t *testing.T) {
	b := Opening()
	for _, m := range b.GenerateMoves().Slice() {
		s := FormatMove(m)
		got, err := b.ParseMoveText(s)
		if err != nil {
			t.Fatalf("ParseMoveText(FormatMove(%+v)) = %q returned error: %v", m, s, err)
		}
		if got != m {
			t.Errorf("ParseMoveText(FormatMove(%+v)) = %+v, want the original move", m, got)
		}
	}
}
