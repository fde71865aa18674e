package render

import (
	"github.com/golang/geo/r2"
)

type segment struct {
	a, b r2.Point
}

// gridSegments returns the wireframe segments of a projected sample grid: neighbors
// along each row, then neighbors along each column. The seam is left open; first and
// last samples along an axis are not connected to each other. A grid with a single
// sample along an axis yields no segments along that axis.
func gridSegments(grid [][]r2.Point) []segment {
	var segments []segment
	for i := 0; i < len(grid); i++ {
		for j := 0; j+1 < len(grid[i]); j++ {
			segments = append(segments, segment{grid[i][j], grid[i][j+1]})
		}
	}
	for i := 0; i+1 < len(grid); i++ {
		for j := 0; j < len(grid[i]); j++ {
			segments = append(segments, segment{grid[i][j], grid[i+1][j]})
		}
	}
	return segments
}
