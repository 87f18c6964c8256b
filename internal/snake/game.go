// Package snake implements the classic snake game on top of a grid buffer.
package snake

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/keys"
)

const (
	bodyRune = '█'
	foodRune = '@'
	wallRune = '#'
)

var (
	up    = grid.Pt(0, -1)
	down  = grid.Pt(0, 1)
	left  = grid.Pt(-1, 0)
	right = grid.Pt(1, 0)
)

// directions maps key names to the direction they steer in.
var directions = map[string]grid.Point{
	"w":        up,
	"a":        left,
	"s":        down,
	"d":        right,
	keys.Up:    up,
	keys.Left:  left,
	keys.Down:  down,
	keys.Right: right,
}

// game holds the state of a single game. The arena is surrounded by a wall
// and the top row of the buffer is left for the status line.
type game struct {
	arena image.Rectangle
	// body runs from tail to head
	body []grid.Point
	dir  grid.Point
	// next is the direction to take on the next step
	next grid.Point
	food grid.Point
	rng  *rand.Rand
	over bool
}

// newGame creates a game for a buffer of width by height cells with a snake
// of length cells in the middle, heading right.
func newGame(width, height, length int, rng *rand.Rand) (*game, error) {
	g := &game{
		arena: image.Rect(1, 2, width-1, height-1),
		dir:   right,
		next:  right,
		rng:   rng,
	}

	if length < 1 || g.arena.Dx() <= length || g.arena.Dy() < 1 {
		return nil, fmt.Errorf("%w: %dx%d is too small for a snake of length %d",
			grid.ErrInvalidSize, width, height, length)
	}

	head := grid.Pt(g.arena.Min.X+g.arena.Dx()/2, g.arena.Min.Y+g.arena.Dy()/2)
	for i := length - 1; i >= 0; i-- {
		g.body = append(g.body, head.Sub(right.Mul(i)))
	}
	// keep the tail inside the arena
	if shift := g.arena.Min.X - g.body[0].X; shift > 0 {
		for i := range g.body {
			g.body[i] = g.body[i].Add(right.Mul(shift))
		}
	}

	g.placeFood()
	return g, nil
}

func (g *game) head() grid.Point {
	return g.body[len(g.body)-1]
}

func (g *game) occupied(p grid.Point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}

	return false
}

func (g *game) inArena(p grid.Point) bool {
	return image.Pt(p.X, p.Y).In(g.arena)
}

// placeFood moves the food to a random free cell of the arena. If there are
// none, the game is won and therefore over.
func (g *game) placeFood() {
	var free []grid.Point
	for y := g.arena.Min.Y; y < g.arena.Max.Y; y++ {
		for x := g.arena.Min.X; x < g.arena.Max.X; x++ {
			if p := grid.Pt(x, y); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.over = true
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// steer changes direction according to the key name. Turning back onto the
// snake itself is ignored.
func (g *game) steer(name string) {
	d, ok := directions[name]
	if !ok || d.Add(g.dir) == (grid.Point{}) {
		return
	}

	g.next = d
}

// step advances the snake by one cell and reports whether it ate.
func (g *game) step() (ate bool) {
	if g.over {
		return false
	}

	g.dir = g.next
	head := g.head().Add(g.dir)

	ate = head == g.food
	tail := g.body
	if !ate {
		tail = g.body[1:]
	}

	if !g.inArena(head) {
		g.over = true
		return false
	}
	for _, b := range tail {
		if b == head {
			g.over = true
			return false
		}
	}

	g.body = append(tail, head)
	if ate {
		g.placeFood()
	}

	return ate
}

// delay is the time between steps, which shrinks as the snake grows.
func (g *game) delay() time.Duration {
	return time.Duration(float64(time.Second) / (7 + float64(len(g.body))/3))
}

// draw renders the game onto b.
func (g *game) draw(b *grid.Buffer) error {
	b.Clear()

	a := g.arena
	if err := b.Box(a.Min.X-1, a.Min.Y-1, a.Max.X, a.Max.Y, string(wallRune), ""); err != nil {
		return fmt.Errorf("failed to draw wall: %w", err)
	}

	if err := b.SetChar(g.food.X, g.food.Y, foodRune, ""); err != nil {
		return fmt.Errorf("failed to draw food: %w", err)
	}

	for _, p := range g.body {
		if err := b.SetChar(p.X, p.Y, bodyRune, ""); err != nil {
			return fmt.Errorf("failed to draw snake: %w", err)
		}
	}

	status := fmt.Sprintf("[Snake Length: %d]", len(g.body))
	if g.over {
		status += " game over, press ESC"
	}
	if _, err := b.DrawString(0, 0, status, grid.TextOptions{}); err != nil {
		return fmt.Errorf("failed to draw status: %w", err)
	}

	return nil
}
