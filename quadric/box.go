package quadric

import (
	"image"
	"math"

	"github.com/golang/geo/r3"
)

// AlignedBox2 is an axis-aligned 2D box in pixel coordinates, such as an object
// detection returned by a detector.
type AlignedBox2 struct {
	XMin, YMin, XMax, YMax float64
}

// NewAlignedBox2 creates a 2D box from its extents.
func NewAlignedBox2(xmin, ymin, xmax, ymax float64) AlignedBox2 {
	return AlignedBox2{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// Width returns the horizontal extent of the box.
func (b AlignedBox2) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b AlignedBox2) Height() float64 {
	return b.YMax - b.YMin
}

// ImageRect returns the box rounded to integer pixel coordinates.
func (b AlignedBox2) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.XMin)), int(math.Round(b.YMin)),
		int(math.Round(b.XMax)), int(math.Round(b.YMax)),
	)
}

// AlignedBox3 is an axis-aligned 3D box in world coordinates given by its extents
// along each axis.
type AlignedBox3 struct {
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
}

// Vector flattens the box to (xmin, xmax, ymin, ymax, zmin, zmax).
func (b AlignedBox3) Vector() [6]float64 {
	return [6]float64{b.XMin, b.XMax, b.YMin, b.YMax, b.ZMin, b.ZMax}
}

// Corners enumerates the eight corners of the box, x varying slowest and z fastest,
// the order BoxEdges indexes into.
func (b AlignedBox3) Corners() [8]r3.Vector {
	v := b.Vector()
	var corners [8]r3.Vector
	i := 0
	for _, x := range v[0:2] {
		for _, y := range v[2:4] {
			for _, z := range v[4:6] {
				corners[i] = r3.Vector{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return corners
}

// BoxEdges lists the 12 edges of a box wireframe as pairs of indices into Corners.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{2, 6}, {1, 5}, {0, 4}, {3, 7},
}
