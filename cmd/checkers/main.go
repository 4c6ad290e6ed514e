// Command checkers runs a short demo search from the opening position
// and prints the principal variation it finds. It is not the interactive
// text protocol described for this engine; it exists only to exercise
// the library end to end the way a teacher repo's main.go exercises its
// board printer.
package main

import (
	"fmt"
	"os"

	"github.com/NirvanaNimbusa/checkers"
)

func main() {
	checkers.InitZobristKeys()

	cfg := checkers.DefaultConfig()
	if len(os.Args) > 1 {
		cfg = checkers.LoadConfigOrDefault(os.Args[1])
	}

	engine := checkers.NewEngine(cfg)
	engine.TT = checkers.NewTT(1 << 16)
	engine.Stats = os.Stdout

	board := checkers.Opening()
	pv, timedOut := engine.Think(board)

	fmt.Println()
	fmt.Println(board.String())
	if timedOut {
		fmt.Println("search cut off by time budget")
	}
	fmt.Print("principal variation:")
	for _, m := range pv {
		fmt.Print(" ", checkers.FormatMove(m))
	}
	fmt.Println()
}
