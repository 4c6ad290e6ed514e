// eval.go implements the static position evaluator used at search
// horizons: a weighted sum of five material/positional terms, relative to
// the side to move.
package checkers

// Weights holds the five evaluator term multipliers. The defaults
// reproduce the tuning of the original "ponder" engine.
type Weights struct {
	Pieces   int `toml:"pieces"`
	Kings    int `toml:"kings"`
	Movers   int `toml:"movers"`
	KingsRow int `toml:"kings_row"`
	Edges    int `toml:"edges"`
}

// DefaultWeights are the baked-in evaluator weights used when no
// configuration file overrides them.
var DefaultWeights = Weights{
	Pieces:   5,
	Kings:    2,
	Movers:   1,
	KingsRow: 1,
	Edges:    -1,
}

// Evaluate scores b from the perspective of the side to move: positive
// favors the side to move, negative favors the opponent. It is only
// meaningful at a non-terminal position; terminal scoring is handled
// separately by the search (spec.md §4.8).
func Evaluate(b Board, w Weights) int {
	score := 0
	score += w.Pieces * evaluatePieces(b)
	score += w.Kings * evaluateKings(b)
	score += w.Movers * evaluateMovers(b)
	score += w.KingsRow * evaluateKingsRow(b)
	score += w.Edges * evaluateEdges(b)
	return score
}

func evaluatePieces(b Board) int {
	if b.IsBlackOnMove() {
		return b.BlackPieces.BitCount() - b.WhitePieces.BitCount()
	}
	return b.WhitePieces.BitCount() - b.BlackPieces.BitCount()
}

func evaluateKings(b Board) int {
	if b.IsBlackOnMove() {
		return b.BlackKings().BitCount() - b.WhiteKings().BitCount()
	}
	return b.WhiteKings().BitCount() - b.BlackKings().BitCount()
}

func evaluateMovers(b Board) int {
	if b.IsBlackOnMove() {
		return b.BlackMovers().BitCount() - b.WhiteMovers().BitCount()
	}
	return b.WhiteMovers().BitCount() - b.BlackMovers().BitCount()
}

// evaluateKingsRow rewards pieces sitting on the side to move's OWN
// starting rank, since a man planted there denies the opponent a square
// to crown on. The naming looks backwards at first glance: Black's home
// rank is WhiteKingsRow (squares 28..31, the rank White men crown on),
// not BlackKingsRow (squares 0..3, White's home rank). The
// cross-reference is intentional, not a typo; do not "simplify" it.
func evaluateKingsRow(b Board) int {
	if b.IsBlackOnMove() {
		return (b.BlackPieces & WhiteKingsRow).BitCount() - (b.WhitePieces & BlackKingsRow).BitCount()
	}
	return (b.WhitePieces & BlackKingsRow).BitCount() - (b.BlackPieces & WhiteKingsRow).BitCount()
}

func evaluateEdges(b Board) int {
	if b.IsBlackOnMove() {
		return (b.BlackPieces & Edges).BitCount() - (b.WhitePieces & Edges).BitCount()
	}
	return (b.WhitePieces & Edges).BitCount() - (b.BlackPieces & Edges).BitCount()
}
