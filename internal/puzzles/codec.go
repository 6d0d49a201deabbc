// Package puzzles implements the puzzle text format (parse and print)
// and the compact JSON batch-storage format. Neither is part of the
// solver/generator core; both are the mechanical plumbing a complete
// repository still needs around it.
package puzzles

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"calcudoku/internal/core"
	"calcudoku/pkg/constants"
)

// cageLabel returns the external single-letter label for cage index idx:
// A-Z for 0..25, a-z for 26..51.
func cageLabel(idx int) byte {
	if idx < 26 {
		return byte('A' + idx)
	}
	return byte('a' + (idx - 26))
}

// cageIndexForLabel is cageLabel's inverse.
func cageIndexForLabel(label byte) (int, bool) {
	switch {
	case label >= 'A' && label <= 'Z':
		return int(label - 'A'), true
	case label >= 'a' && label <= 'z':
		return int(label-'a') + 26, true
	default:
		return 0, false
	}
}

type pendingCage struct {
	typ      core.CageType
	target   int
	hasClue  bool
	members  []int
}

// Parse reads the whitespace-separated puzzle text format into a
// Puzzle. A blank line terminates input; anything after it is ignored.
// Returns a shape error with the offending coordinate or cage letter on
// malformed input.
func Parse(text string) (*core.Puzzle, error) {
	var rows [][]string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		rows = append(rows, strings.Fields(line))
	}

	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("puzzle text: empty grid")
	}
	if n > constants.MaxN {
		return nil, fmt.Errorf("puzzle text: grid dimension %d exceeds max %d", n, constants.MaxN)
	}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("puzzle text: row %d has %d cells, want %d (non-square grid)", y, len(row), n)
		}
	}

	puzzle := core.InitPuzzle(n)
	cages := make(map[int]*pendingCage)

	for y, row := range rows {
		for x, tok := range row {
			if tok == "" {
				return nil, fmt.Errorf("puzzle text: empty cell at (%d,%d)", x, y)
			}
			pos := core.Pos(x, y)
			first := tok[0]

			switch {
			case first >= '0' && first <= '9':
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("puzzle text: bad given %q at (%d,%d): %w", tok, x, y, err)
				}
				puzzle.Givens.SetPos(pos, v)

			case (first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z'):
				idx, _ := cageIndexForLabel(first)
				pc, ok := cages[idx]
				if !ok {
					pc = &pendingCage{}
					cages[idx] = pc
				}
				pc.members = append(pc.members, pos)
				puzzle.CellCage[pos] = idx

				if rest := tok[1:]; rest != "" {
					typ, ok := core.CageTypeFromOp(rest[0])
					if !ok {
						return nil, fmt.Errorf("puzzle text: cage %c: unknown operator %q", first, rest[0])
					}
					target, err := strconv.Atoi(rest[1:])
					if err != nil {
						return nil, fmt.Errorf("puzzle text: cage %c: bad target %q: %w", first, rest[1:], err)
					}
					if pc.hasClue {
						if pc.typ != typ || pc.target != target {
							return nil, fmt.Errorf("puzzle text: cage %c: conflicting clues", first)
						}
					} else {
						pc.typ, pc.target, pc.hasClue = typ, target, true
					}
				}

			default:
				return nil, fmt.Errorf("puzzle text: unrecognized cell %q at (%d,%d)", tok, x, y)
			}
		}
	}

	for idx, pc := range cages {
		label := cageLabel(idx)
		if !pc.hasClue {
			return nil, fmt.Errorf("puzzle text: cage %c: no cell carries a clue", label)
		}
		if len(pc.members) < core.MinCageSize {
			return nil, fmt.Errorf("puzzle text: cage %c: size %d below minimum %d", label, len(pc.members), core.MinCageSize)
		}
		if len(pc.members) > core.MaxCageSize {
			return nil, fmt.Errorf("puzzle text: cage %c: size %d exceeds maximum %d", label, len(pc.members), core.MaxCageSize)
		}
		if (pc.typ == core.Product || pc.typ == core.Ratio) && pc.target <= 0 {
			return nil, fmt.Errorf("puzzle text: cage %c: %s target must be > 0", label, pc.typ)
		}
		if !connected(puzzle.N, pc.members) {
			return nil, fmt.Errorf("puzzle text: cage %c: members are not 4-connected", label)
		}
		puzzle.Cages[idx] = core.Cage{Type: pc.typ, Target: pc.target, Members: pc.members}
	}

	return puzzle, nil
}

// connected runs the same flood-fill contiguity test the cage mutators
// use to maintain the invariant, applied here to validate rather than
// repair it.
func connected(n int, members []int) bool {
	if len(members) == 0 {
		return true
	}
	set := make(map[int]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	visited := map[int]bool{members[0]: true}
	queue := []int{members[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := core.XY(cur)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= n || ny < 0 || ny >= n {
				continue
			}
			np := core.Pos(nx, ny)
			if set[np] && !visited[np] {
				visited[np] = true
				queue = append(queue, np)
			}
		}
	}
	return len(visited) == len(members)
}

// Print renders puzzle back to the whitespace text format. Labels are
// taken from each cell's cage index (cell→cage map), so
// Print(Parse(text)) round-trips up to label canonicalization: a cage's
// clue is emitted on its first member in Members order.
func Print(puzzle *core.Puzzle) string {
	var b strings.Builder
	for y := 0; y < puzzle.N; y++ {
		for x := 0; x < puzzle.N; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			pos := core.Pos(x, y)
			idx := puzzle.CellCage[pos]
			if idx == core.NoCage {
				fmt.Fprintf(&b, "%d", puzzle.Givens.GetPos(pos))
				continue
			}
			cage := &puzzle.Cages[idx]
			b.WriteByte(cageLabel(idx))
			if len(cage.Members) > 0 && cage.Members[0] == pos {
				fmt.Fprintf(&b, "%c%d", cage.Type.Op(), cage.Target)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintUnicode renders puzzle with light box-drawing characters along
// cage boundaries instead of bare letters, for the CLI's -u flag. The
// full templated pretty-printer is out of scope; this is the minimal
// boundary-drawing variant that scope still calls for.
func PrintUnicode(puzzle *core.Puzzle) string {
	n := puzzle.N
	var b strings.Builder

	hWall := func(x, y, nx, ny int) bool {
		if x < 0 || x >= n || y < 0 || y >= n || nx < 0 || nx >= n || ny < 0 || ny >= n {
			return true
		}
		return puzzle.CellCage[core.Pos(x, y)] != puzzle.CellCage[core.Pos(nx, ny)]
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if hWall(x, y, x, y-1) {
				b.WriteString("───")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteByte('\n')
		for x := 0; x < n; x++ {
			if hWall(x, y, x-1, y) {
				b.WriteRune('│')
			} else {
				b.WriteByte(' ')
			}
			pos := core.Pos(x, y)
			if v := puzzle.Givens.GetPos(pos); v != 0 {
				fmt.Fprintf(&b, "%2d", v)
			} else {
				b.WriteString(" .")
			}
		}
		b.WriteByte('\n')
	}
	for x := 0; x < n; x++ {
		b.WriteString("───")
	}
	b.WriteByte('\n')
	return b.String()
}
