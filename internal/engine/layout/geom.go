package layout

import "fmt"

// Point is a position in layout space, in pixels.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in layout space, in pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains returns true if p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %gx%g)", r.X, r.Y, r.Width, r.Height)
}
