package render

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func makeGrid(m, n int) [][]r2.Point {
	grid := make([][]r2.Point, m)
	for i := range grid {
		grid[i] = make([]r2.Point, n)
		for j := range grid[i] {
			grid[i][j] = r2.Point{X: float64(i), Y: float64(j)}
		}
	}
	return grid
}

func TestGridSegmentCount(t *testing.T) {
	// an m x n grid yields (m-1)*n + m*(n-1) open wireframe segments
	for _, dims := range [][2]int{{10, 10}, {2, 2}, {3, 7}, {5, 2}} {
		m, n := dims[0], dims[1]
		segments := gridSegments(makeGrid(m, n))
		test.That(t, segments, test.ShouldHaveLength, (m-1)*n+m*(n-1))
	}
}

func TestGridSegmentsDegenerateAxes(t *testing.T) {
	// a single sample along an axis yields no segments along that axis
	test.That(t, gridSegments(makeGrid(1, 5)), test.ShouldHaveLength, 4)
	test.That(t, gridSegments(makeGrid(5, 1)), test.ShouldHaveLength, 4)
	test.That(t, gridSegments(makeGrid(1, 1)), test.ShouldHaveLength, 0)
	test.That(t, gridSegments(nil), test.ShouldHaveLength, 0)
}

func TestGridSegmentsNoWraparound(t *testing.T) {
	grid := makeGrid(4, 4)
	first, last := grid[0][0], grid[3][0]
	for _, seg := range gridSegments(grid) {
		wraps := (seg.a == first && seg.b == last) || (seg.a == last && seg.b == first)
		test.That(t, wraps, test.ShouldBeFalse)
	}
}
