/*
Package checkers implements the core engine of an English/American
checkers (draughts) program: a 32-square packed bitboard representation of
the playable squares, legal move generation for men and kings, make/undo
with the mandatory-capture and multi-jump rules of the game, and an
iterative-deepening negamax search with alpha-beta pruning.

The interactive text protocol, board rendering, line-buffered I/O, and the
game-history list are deliberately left to callers of this package; see
SPEC_FULL.md for the exact boundary.
*/
package checkers
