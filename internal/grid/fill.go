package grid

import (
	"fmt"
)

// Connectivity selects which neighbours a flood fill spreads to.
type Connectivity int

const (
	// Connectivity4 spreads to orthogonal neighbours only.
	Connectivity4 Connectivity = 4
	// Connectivity8 spreads to orthogonal and diagonal neighbours.
	Connectivity8 Connectivity = 8
)

// ConnectivityNames lists the names accepted by ParseConnectivity.
var ConnectivityNames = []string{"4", "8"}

// ParseConnectivity returns the Connectivity named s.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4":
		return Connectivity4, nil
	case "8":
		return Connectivity8, nil
	default:
		return 0, fmt.Errorf("%w: connectivity %q, expected 4 or 8", ErrInvalidOption, s)
	}
}

var (
	orthogonal = [...]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonal   = [...]Point{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
)

func (c Connectivity) neighbours() ([]Point, error) {
	switch c {
	case Connectivity4:
		return orthogonal[:], nil
	case Connectivity8:
		return append(orthogonal[:len(orthogonal):len(orthogonal)], diagonal[:]...), nil
	default:
		return nil, fmt.Errorf("%w: connectivity %d, expected 4 or 8", ErrInvalidOption, int(c))
	}
}

// FloodFill replaces the region connected to (x, y) with fill.
//
// The region consists of cells holding the character at (x, y) or any
// character of ignore. Nothing happens if fill is itself part of that set.
func (b *Buffer) FloodFill(x, y int, fill rune, ignore string, conn Connectivity) error {
	if err := checkRune(fill); err != nil {
		return err
	}
	if err := checkSet("ignore", ignore); err != nil {
		return err
	}
	dirs, err := conn.neighbours()
	if err != nil {
		return err
	}
	if err := b.checkBounds(x, y); err != nil {
		return err
	}

	target := string(b.content[y][x]) + ignore
	if inSet(target, fill) {
		return nil
	}

	b.content[y][x] = fill
	queue := []Point{Pt(x, y)}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			n := p.Add(d)
			if !b.valid(n.X, n.Y) || !inSet(target, b.content[n.Y][n.X]) {
				continue
			}

			// mark before enqueueing so that no cell is queued twice
			b.content[n.Y][n.X] = fill
			queue = append(queue, n)
		}
	}

	return nil
}
