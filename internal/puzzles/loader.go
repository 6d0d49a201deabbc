package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"calcudoku/internal/core"
)

// CompactPuzzle stores one generated puzzle in minimal batch-storage
// form: the solution grid and the puzzle text that carves it into
// cages. The cage shape itself is what ties a puzzle to its solution,
// since Calcudoku has no difficulty-tiered givens subset.
type CompactPuzzle struct {
	N        int     `json:"n"`
	Solution []uint8 `json:"solution"` // flat N*N solution values
	Puzzle   string  `json:"puzzle"`   // puzzle text
}

// PuzzleFile is the top-level structure for the batch JSON file produced
// by cmd/generate.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Loader manages a batch of pre-generated puzzles loaded from a
// PuzzleFile, guarding concurrent access from HTTP handlers with a
// RWMutex.
type Loader struct {
	puzzles []CompactPuzzle
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads puzzles from a JSON file at path.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// LoadGlobal loads puzzles into the process-wide singleton loader. Only
// the first call's path takes effect.
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the process-wide singleton loader, or nil if
// LoadGlobal has not succeeded.
func Global() *Loader {
	return globalLoader
}

// SetGlobal overrides the process-wide singleton loader, for tests.
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles builds a Loader directly from puzzle data, for
// tests.
func NewLoaderFromPuzzles(puzzles []CompactPuzzle) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of puzzles held by the loader.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns the parsed puzzle and its solution grid at index.
func (l *Loader) GetPuzzle(index int) (*core.Puzzle, *core.Grid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return nil, nil, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}

	cp := l.puzzles[index]
	puzzle, err := Parse(cp.Puzzle)
	if err != nil {
		return nil, nil, fmt.Errorf("stored puzzle %d: %w", index, err)
	}

	var solution core.Grid
	for y := 0; y < cp.N; y++ {
		for x := 0; x < cp.N; x++ {
			solution.Set(x, y, int(cp.Solution[y*cp.N+x]))
		}
	}

	return puzzle, &solution, nil
}

// GetPuzzleBySeed deterministically maps seed to a puzzle index via an
// FNV hash.
func (l *Loader) GetPuzzleBySeed(seed string) (*core.Puzzle, *core.Grid, int, error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		return nil, nil, 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	index := int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	puzzle, solution, err := l.GetPuzzle(index)
	return puzzle, solution, index, err
}
