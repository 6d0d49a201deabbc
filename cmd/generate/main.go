// Command generate batch-produces Calcudoku puzzles to a JSON file:
// a flag-configured count/output/workers/seed, a ticking progress
// reporter, and a WaitGroup-joined pool of workers draining a closed
// index channel.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"calcudoku/internal/calcudoku/generate"
	"calcudoku/internal/puzzles"
)

func main() {
	count := flag.Int("n", 1000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	dim := flag.Int("size", 6, "Grid dimension N")
	iterCap := flag.Int("iter", 40, "Hardening iteration cap per puzzle")
	diffCap := flag.Int("cap", 0, "Difficulty cap (0 = unbounded)")
	twoCell := flag.Bool("two-cell", false, "Restrict Difference/Ratio cages to two cells")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d %dx%d puzzles with %d workers...\n", *count, *dim, *dim, *workers)
	start := time.Now()

	out := make([]puzzles.CompactPuzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(int64(*count)-g) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				out[idx] = generatePuzzle(seed, *dim, *iterCap, *diffCap, *twoCell)
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := puzzles.PuzzleFile{Version: 1, Count: *count, Puzzles: out}
	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}

func generatePuzzle(seed int64, n, iterCap, diffCap int, twoCell bool) puzzles.CompactPuzzle {
	rng := generate.NewRNG(seed)
	sol := generate.GenerateGrid(n, rng)
	puzzle, _ := generate.Generate(&sol, n, twoCell, iterCap, diffCap, 0, rng)

	solFlat := make([]uint8, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			solFlat[y*n+x] = uint8(sol.Get(x, y))
		}
	}

	return puzzles.CompactPuzzle{
		N:        n,
		Solution: solFlat,
		Puzzle:   puzzles.Print(puzzle),
	}
}
