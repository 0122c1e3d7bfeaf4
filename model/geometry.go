package model

// Unit conversions. RTF measures in twips, drawings in EMUs; the model
// uses points.
const (
	TwipsPerPoint = 20
	EMUPerPoint   = 12700
)

// TwipsToPoints converts twips to points.
func TwipsToPoints(twips int) float64 {
	return float64(twips) / TwipsPerPoint
}

// EMUToPoints converts English Metric Units to points.
func EMUToPoints(emu int) float64 {
	return float64(emu) / EMUPerPoint
}

// Point represents a position in points, measured from the top left
type Point struct {
	X, Y float64
}

// BBox represents a rectangle on the page. Y grows downwards.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// BBoxFromTwips creates a bounding box from edges given in twips. Reversed
// edges are swapped.
func BBoxFromTwips(left, top, right, bottom int) BBox {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return BBox{
		X:      TwipsToPoints(left),
		Y:      TwipsToPoints(top),
		Width:  TwipsToPoints(right - left),
		Height: TwipsToPoints(bottom - top),
	}
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Contains checks if a point is inside the box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.Right() &&
		p.Y >= b.Y && p.Y <= b.Bottom()
}

// Intersects checks if this box intersects with another
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.X ||
		other.Right() < b.X ||
		b.Bottom() < other.Y ||
		other.Bottom() < b.Y)
}

// Union returns the smallest box containing both boxes. An empty box does
// not contribute.
func (b BBox) Union(other BBox) BBox {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	x := min(b.X, other.X)
	y := min(b.Y, other.Y)
	right := max(b.Right(), other.Right())
	bottom := max(b.Bottom(), other.Bottom())
	return BBox{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Area returns the area of the box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
