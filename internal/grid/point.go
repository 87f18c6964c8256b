package grid

import (
	"fmt"
	"math"
)

// Point is an immutable integer coordinate.
//
// The ordering methods are NOT lexicographic: p.Less(q) holds only when both
// p.X < q.X and p.Y < q.Y. They answer "is p strictly above and to the left
// of q", which is what rectangle containment needs, and must never be used to
// sort points.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Div returns p floor-divided by k.
func (p Point) Div(k int) (Point, error) {
	if k == 0 {
		return Point{}, ErrDivideByZero
	}

	return Point{floorDiv(p.X, k), floorDiv(p.Y, k)}, nil
}

// Eq reports whether p and q have the same components.
func (p Point) Eq(q Point) bool {
	return p == q
}

// Less reports whether both components of p are smaller than those of q.
func (p Point) Less(q Point) bool {
	return p.X < q.X && p.Y < q.Y
}

// LessEq reports whether both components of p are at most those of q.
func (p Point) LessEq(q Point) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// Greater reports whether both components of p are larger than those of q.
func (p Point) Greater(q Point) bool {
	return p.X > q.X && p.Y > q.Y
}

// GreaterEq reports whether both components of p are at least those of q.
func (p Point) GreaterEq(q Point) bool {
	return p.X >= q.X && p.Y >= q.Y
}

// In reports whether p lies within the rectangle spanning from the origin
// (inclusive) to size (exclusive).
func (p Point) In(size Point) bool {
	return Point{}.LessEq(p) && p.Less(size)
}

// Abs returns the Euclidean distance of p from the origin.
func (p Point) Abs() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
