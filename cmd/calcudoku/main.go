// Command calcudoku is the puzzle-file command line tool: print, solve,
// examine, generate a grid, harden a puzzle, or run the full
// grid-then-harden generation pipeline, each as its own subcommand.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"calcudoku/internal/calcudoku/generate"
	"calcudoku/internal/calcudoku/solve"
	"calcudoku/internal/core"
	"calcudoku/internal/puzzles"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "print":
		runPrint(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "examine":
		runExamine(os.Args[2:])
	case "gen-grid":
		runGenGrid(os.Args[2:])
	case "harden":
		runHarden(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: calcudoku <print|solve|examine|gen-grid|harden|generate> [flags]")
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

func runPrint(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	in := fs.String("i", "-", "input puzzle file (- for stdin)")
	out := fs.String("o", "-", "output file (- for stdout)")
	unicode := fs.Bool("u", false, "render with box-drawing characters")
	fs.Parse(args)

	text, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	puzzle, err := puzzles.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	var rendered string
	if *unicode {
		rendered = puzzles.PrintUnicode(puzzle)
	} else {
		rendered = puzzles.Print(puzzle)
	}
	if err := writeOutput(*out, rendered); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	in := fs.String("i", "-", "input puzzle file (- for stdin)")
	fs.Parse(args)

	text, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	puzzle, err := puzzles.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	result := solve.Solve(puzzle)
	fmt.Printf("classification: %s\n", result.Classification)
	if result.Classification != core.Unsolvable {
		fmt.Printf("difficulty: %d\n", result.Difficulty)
		for y := 0; y < puzzle.N; y++ {
			for x := 0; x < puzzle.N; x++ {
				if x > 0 {
					fmt.Print(" ")
				}
				fmt.Print(result.Solution.Get(x, y))
			}
			fmt.Println()
		}
	}
}

// runExamine reports the same classification and difficulty as solve,
// plus basic cage-table statistics, for inspecting a puzzle file without
// needing a full solve trace.
func runExamine(args []string) {
	fs := flag.NewFlagSet("examine", flag.ExitOnError)
	in := fs.String("i", "-", "input puzzle file (- for stdin)")
	fs.Parse(args)

	text, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	puzzle, err := puzzles.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	cageCount, minSize, maxSize := 0, 0, 0
	for i := range puzzle.Cages {
		size := puzzle.Cages[i].Size()
		if size == 0 {
			continue
		}
		cageCount++
		if minSize == 0 || size < minSize {
			minSize = size
		}
		if size > maxSize {
			maxSize = size
		}
	}

	result := solve.Solve(puzzle)
	fmt.Printf("n: %d\n", puzzle.N)
	fmt.Printf("cages: %d (size %d-%d)\n", cageCount, minSize, maxSize)
	fmt.Printf("given cells: %d\n", puzzle.N*puzzle.N-puzzle.EmptyCellCount())
	fmt.Printf("classification: %s\n", result.Classification)
	if result.Classification != core.Unsolvable {
		fmt.Printf("difficulty: %d\n", result.Difficulty)
	}
}

func runGenGrid(args []string) {
	fs := flag.NewFlagSet("gen-grid", flag.ExitOnError)
	n := fs.Int("n", 6, "grid dimension")
	seed := fs.Int64("s", 1, "RNG seed")
	out := fs.String("o", "-", "output file (- for stdout)")
	fs.Parse(args)

	rng := generate.NewRNG(*seed)
	grid := generate.GenerateGrid(*n, rng)

	var b []byte
	for y := 0; y < *n; y++ {
		for x := 0; x < *n; x++ {
			if x > 0 {
				b = append(b, ' ')
			}
			b = append(b, []byte(fmt.Sprintf("%d", grid.Get(x, y)))...)
		}
		b = append(b, '\n')
	}
	if err := writeOutput(*out, string(b)); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}

func runHarden(args []string) {
	fs := flag.NewFlagSet("harden", flag.ExitOnError)
	in := fs.String("i", "-", "input puzzle file (- for stdin)")
	out := fs.String("o", "-", "output file (- for stdout)")
	iterations := fs.Int("w", 1, "number of hardening passes")
	diffCap := fs.Int("m", 0, "difficulty cap (0 = unbounded)")
	twoCell := fs.Bool("T", false, "restrict difference/ratio cages to two cells")
	seed := fs.Int64("s", 1, "RNG seed")
	fs.Parse(args)

	text, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	puzzle, err := puzzles.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	result := solve.Solve(puzzle)
	if result.Classification != core.Unique {
		fmt.Fprintf(os.Stderr, "harden: input puzzle is not uniquely solvable (%s)\n", result.Classification)
		os.Exit(1)
	}
	solution := result.Solution

	rng := generate.NewRNG(*seed)
	best := result.Difficulty
	for i := 0; i < *iterations; i++ {
		best = generate.HardenPass(puzzle, solution, best, *diffCap, *twoCell, rng)
	}
	generate.NormalizeLabels(puzzle)

	if err := writeOutput(*out, puzzles.Print(puzzle)); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "difficulty: %d\n", best)
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	n := fs.Int("n", 6, "grid dimension")
	out := fs.String("o", "-", "output file (- for stdout)")
	iterations := fs.Int("w", 40, "hardening iteration cap")
	diffCap := fs.Int("m", 0, "difficulty cap (0 = unbounded)")
	diffTarget := fs.Int("t", 0, "early-stop difficulty target (0 = run to cap)")
	twoCell := fs.Bool("T", false, "restrict difference/ratio cages to two cells")
	seed := fs.Int64("s", 1, "RNG seed")
	fs.Parse(args)

	rng := generate.NewRNG(*seed)
	sol := generate.GenerateGrid(*n, rng)
	puzzle, difficulty := generate.Generate(&sol, *n, *twoCell, *iterations, *diffCap, *diffTarget, rng)

	if err := writeOutput(*out, puzzles.Print(puzzle)); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "difficulty: %d\n", difficulty)
}
