package checkers

import (
	"strings"
	"testing"
)

func TestDescriptorRoundTrip(t *testing.T) {
	tests := []Board{
		Opening(),
		{BlackPieces: 1 << 9, WhitePieces: 1 << 5, SideToMove: ColorBlack},
		{BlackPieces: 1 << 21, Kings: 1 << 21, WhitePieces: 1<<18 | 1<<10, SideToMove: ColorWhite},
	}
	for _, want := range tests {
		s := want.String()
		got, err := ParseDescriptor(s)
		if err != nil {
			t.Fatalf("ParseDescriptor(%q) returned error: %v", s, err)
		}
		if got != want {
			t.Errorf("ParseDescriptor(String()) = %+v, want %+v (descriptor %q)", got, want, s)
		}
	}
}

func TestParseDescriptorSkipsSeparators(t *testing.T) {
	// 8 black men, 8 white men, 16 empty squares, grouped with '/'.
	s := "bbbb/bbbb/0000/0000/0000/0000/wwww/wwww w"
	b, err := ParseDescriptor(s)
	if err != nil {
		t.Fatalf("ParseDescriptor(%q) returned error: %v", s, err)
	}
	if b.BlackPieces != 0xFF {
		t.Errorf("BlackPieces = %#x, want %#x", uint32(b.BlackPieces), 0xFF)
	}
	if b.WhitePieces != 0xFF000000 {
		t.Errorf("WhitePieces = %#x, want %#x", uint32(b.WhitePieces), 0xFF000000)
	}
	if !b.IsWhiteOnMove() {
		t.Error("side to move suffix 'w' was not honored")
	}
}

func TestParseDescriptorDefaultsToBlackOnMove(t *testing.T) {
	s := strings.Repeat("0", 32)
	b, err := ParseDescriptor(s)
	if err != nil {
		t.Fatalf("ParseDescriptor(%q) returned error: %v", s, err)
	}
	if !b.IsBlackOnMove() {
		t.Error("missing side-to-move suffix did not default to Black")
	}
}

func TestParseDescriptorTruncatedIsMalformed(t *testing.T) {
	_, err := ParseDescriptor("bbbb")
	if err != ErrMalformedDescriptor {
		t.Errorf("ParseDescriptor on a truncated descriptor = %v, want ErrMalformedDescriptor", err)
	}
}

func TestKingLetterCrowned(t *testing.T) {
	s := "B" + strings.Repeat("0", 31) + " b"
	b, err := ParseDescriptor(s)
	if err != nil {
		t.Fatalf("ParseDescriptor(%q) returned error: %v", s, err)
	}
	if b.BlackPieces&1 == 0 || b.Kings&1 == 0 {
		t.Errorf("'B' at square 1 did not produce a crowned Black piece: %+v", b)
	}
}
