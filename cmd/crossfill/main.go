// Command crossfill fills a crossword grid from a structure file and a word
// list, printing the solved grid and optionally saving it as a PNG image.
//
// Usage:
//
//	crossfill structure words [output.png]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gitrdm/crossfill/pkg/crossword"
)

func main() {
	if len(os.Args) != 3 && len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: crossfill structure words [output.png]")
		os.Exit(2)
	}

	structure, err := crossword.LoadStructure(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "crossfill:", err)
		os.Exit(1)
	}
	words, err := crossword.LoadWords(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "crossfill:", err)
		os.Exit(1)
	}

	cw, err := crossword.New(structure, words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "crossfill:", err)
		os.Exit(1)
	}

	assignment, err := crossword.NewSolver(cw).Solve(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "crossfill:", err)
		os.Exit(1)
	}
	if assignment == nil {
		fmt.Println("No solution.")
		return
	}

	if err := cw.WriteText(os.Stdout, assignment); err != nil {
		fmt.Fprintln(os.Stderr, "crossfill:", err)
		os.Exit(1)
	}
	if len(os.Args) == 4 {
		if err := cw.SaveImage(assignment, os.Args[3]); err != nil {
			fmt.Fprintln(os.Stderr, "crossfill:", err)
			os.Exit(1)
		}
	}
}
