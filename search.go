// search.go implements iterative-deepening negamax search with
// alpha-beta pruning, principal-variation move ordering, and a
// time/poll-bounded cutoff signaled by the Timeout sentinel.
package checkers

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Win is the base magnitude of a terminal (won/lost) score. The actual
// returned score is offset by ply so that a win found sooner is
// preferred over one found deeper in the tree.
const Win = 1_000_000

// Timeout is returned by alphaBeta in place of a real score when the
// search was cut off by its deadline or poller before finishing a
// subtree. It is far outside any score alphaBeta otherwise produces, so
// callers distinguish it with a direct equality check rather than a
// range test.
const Timeout = math.MinInt32

// IOPoller lets a caller interrupt an in-progress search, e.g. because
// the user typed a stop command on a line-buffered front end. Poll is
// called roughly every PollInterval nodes; returning true aborts the
// search with a Timeout result. A nil IOPoller means the search never
// polls for anything beyond its deadline.
type IOPoller interface {
	Poll() bool
}

// searchState is the per-call mutable context threaded through a single
// alphaBeta tree walk. Unlike the original engine, none of this lives in
// package-level or receiver state, so concurrent searches over distinct
// Boards never interfere with each other.
type searchState struct {
	weights      Weights
	deadline     time.Time
	poller       IOPoller
	pollInterval int
	nodeCount    int

	// pv is the principal variation from the previous iterative-deepening
	// iteration, consulted as a move-ordering hint at each ply until it
	// runs out or a ply's actual move list doesn't contain the expected
	// move (both disable further PV reordering for the rest of this
	// search, matching how a stale PV is abandoned rather than followed
	// into positions it no longer describes).
	pv      []Move
	reorder bool

	tt *TT
}

func (st *searchState) timedOut() bool {
	if time.Now().After(st.deadline) {
		return true
	}
	return st.poller != nil && st.poller.Poll()
}

// reorderMoves moves the most promising candidate to the front of moves:
// first preference is the previous iteration's PV move at this ply, then
// the transposition table's recorded best move for this position.
func reorderMoves(moves []Move, ply int, hash uint64, st *searchState) {
	if st.reorder {
		if ply >= len(st.pv) {
			st.reorder = false
		} else {
			target := st.pv[ply]
			found := false
			for i, m := range moves {
				if m == target {
					moves[0], moves[i] = moves[i], moves[0]
					found = true
					break
				}
			}
			if !found {
				st.reorder = false
			} else {
				return
			}
		}
	}

	if st.tt == nil {
		return
	}
	if entry, ok := st.tt.Get(hash); ok {
		for i, m := range moves {
			if m == entry.Best {
				moves[0], moves[i] = moves[i], moves[0]
				return
			}
		}
	}
}

// alphaBeta performs one negamax search of b to depth plies, from the
// perspective of the side to move, returning its score and the line of
// moves that achieves it (nil at a leaf or a cutoff).
//
// A won or lost position is scored independently of depth, offset by ply
// so a faster win is preferred to a slower one and a slower loss is
// preferred to a faster one. At depth 0 the position is scored
// statically, UNLESS the move that led here was a capture, in which case
// search is extended one more ply: stopping a search in the middle of a
// capture sequence badly misjudges material.
func alphaBeta(b *Board, depth, alpha, beta, ply int, st *searchState) (int, []Move) {
	st.nodeCount++
	if st.pollInterval > 0 && st.nodeCount%st.pollInterval == 0 && st.timedOut() {
		return Timeout, nil
	}

	if b.IsWinning() {
		return Win - ply, nil
	}
	if b.IsLosing() {
		return -Win + ply, nil
	}
	if depth <= 0 {
		return Evaluate(*b, st.weights), nil
	}

	hash := b.Hash()
	list := b.GenerateMoves()
	moves := list.Slice()
	reorderMoves(moves, ply, hash, st)

	var bestLine []Move
	for _, m := range moves {
		childDepth := depth
		if childDepth == 1 && m.IsCapture() {
			childDepth++
		}

		sameSideContinues := b.MakeMove(m)

		var score int
		var childLine []Move
		if sameSideContinues {
			score, childLine = alphaBeta(b, childDepth, alpha, beta, ply+1, st)
		} else {
			score, childLine = alphaBeta(b, childDepth-1, -beta, -alpha, ply+1, st)
		}
		b.UndoMove(m)

		if score == Timeout {
			return Timeout, nil
		}
		if !sameSideContinues {
			score = -score
		}

		if score >= beta {
			return beta, nil
		}
		if score > alpha {
			alpha = score
			bestLine = append([]Move{m}, childLine...)
		}
	}

	if bestLine != nil && st.tt != nil {
		st.tt.Store(hash, depth, bestLine[0])
	}
	return alpha, bestLine
}

// Engine bundles everything a search needs beyond the position itself:
// evaluator weights, depth and time budgets, an optional transposition
// table, an optional external poller, and an optional destination for
// the per-iteration statistics line.
type Engine struct {
	Weights      Weights
	DepthLimit   int
	TimeLimit    time.Duration
	PollInterval int
	TT           *TT
	Poller       IOPoller

	// Stats, if non-nil, receives one line per completed iterative-deepening
	// iteration, preceded by a header row every 8 iterations, in the
	// fixed-width format consumed by external tooling (see
	// SPEC_FULL.md's Logging section for why this bypasses the package
	// logger).
	Stats io.Writer
}

// NewEngine builds an Engine from a loaded Config.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		Weights:      cfg.Weights,
		DepthLimit:   cfg.DefaultDepthLimit,
		TimeLimit:    cfg.DefaultTimeLimit,
		PollInterval: cfg.PollInterval,
	}
}

// Think runs iterative deepening on a COPY of b (the caller's board is
// never mutated) from depth 1 up to e.DepthLimit, or until the time
// budget or poller cuts it off. It returns the best line found by the
// last fully-completed iteration and whether the search was cut short by
// a timeout.
func (e *Engine) Think(b Board) ([]Move, bool) {
	deadline := time.Now().Add(e.TimeLimit)
	start := time.Now()

	var pv []Move
	timedOut := false

	for depth, iteration := 1, 0; depth <= e.DepthLimit; depth, iteration = depth+1, iteration+1 {
		st := &searchState{
			weights:      e.Weights,
			deadline:     deadline,
			poller:       e.Poller,
			pollInterval: e.PollInterval,
			pv:           pv,
			reorder:      len(pv) > 0,
			tt:           e.TT,
		}

		work := b
		score, line := alphaBeta(&work, depth, -Win-1, Win+1, 0, st)
		if score == Timeout {
			timedOut = true
			break
		}
		pv = line

		if e.Stats != nil {
			writeStatsLine(e.Stats, iteration, depth, score, time.Since(start), st.nodeCount, pv)
		}

		// The search found a forced, shallower-than-depth terminal line;
		// deepening further cannot add to it.
		if len(pv) > 0 && len(pv) < depth {
			break
		}
	}

	return pv, timedOut
}

// writeStatsLine writes one row of the think-output table described in
// SPEC_FULL.md: a header every 8 iterations, then depth, value, elapsed
// seconds, node count, and the principal variation in move-text form.
func writeStatsLine(w io.Writer, iteration, depth, score int, elapsed time.Duration, nodes int, pv []Move) {
	if iteration%8 == 0 {
		fmt.Fprintf(w, "%5s %6s %7s %11s  %s\n", "depth", "value", "time", "nodes", "pv")
	}

	// Think already breaks out before writing a stats line for a Timeout
	// score, so score here is always a real evaluation or forced-terminal
	// result; "-" is reserved for the timeout case and never printed here.
	fmt.Fprintf(w, "%5d %6d %7.3f %11d  %s\n",
		depth, score, elapsed.Seconds(), nodes, formatLine(pv))
}

func formatLine(pv []Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += FormatMove(m)
	}
	return s
}
