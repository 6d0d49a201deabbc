// Package constants collects the fixed-capacity bounds the core relies on.
package constants

// Grid constants. The grid is always backed by a 16x16 array regardless of
// the active dimension, so coordinate arithmetic (pos = y*Stride + x) never
// depends on N.
const (
	MaxN       = 16
	Stride     = 16
	MaxCells   = Stride * Stride
	MinN       = 1
)

// Solver limits.
const (
	SolutionCountLimit = 2 // stop the search as soon as a second solution is found
)

// Hardening.
const (
	MutationsPerPass = 10
)

// API version, surfaced by the HTTP transport's /health endpoint.
const APIVersion = "0.1.0"

// Default ports and files for the ambient services.
const (
	DefaultPort        = "8080"
	DefaultPuzzlesFile = "/data/puzzles.json"
)
