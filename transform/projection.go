package transform

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/quadricslam/quadricview/spatialmath"
)

// WorldToImageMatrix builds the 3x4 matrix taking homogeneous world coordinates to
// homogeneous pixel coordinates, K * inv([R|t]), where [R|t] is the camera pose in
// the world frame. The matrix is rebuilt on every call.
func WorldToImageMatrix(camera spatialmath.Pose, params *PinholeCameraIntrinsics) *mat.Dense {
	rot := camera.Orientation().RotationMatrix()
	point := camera.Point()

	extrinsics := mat.NewDense(4, 4, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			extrinsics.Set(r, c, rot.At(r, c))
		}
	}
	extrinsics.Set(0, 3, point.X)
	extrinsics.Set(1, 3, point.Y)
	extrinsics.Set(2, 3, point.Z)
	extrinsics.Set(3, 3, 1)

	var inv mat.Dense
	if err := inv.Inverse(extrinsics); err != nil {
		// A degenerate camera pose has no world-to-camera transform. Every point
		// projected through the NaN matrix fails the finiteness check downstream and
		// the draw is skipped, per the silent-skip policy.
		nan := math.NaN()
		return mat.NewDense(3, 4, []float64{
			nan, nan, nan, nan,
			nan, nan, nan, nan,
			nan, nan, nan, nan,
		})
	}

	var proj mat.Dense
	proj.Mul(params.Matrix(), inv.Slice(0, 3, 0, 4))
	return &proj
}

// ProjectPoint projects a world point through the given 3x4 world-to-image matrix,
// perspective-dividing by the depth coordinate. The result may have NaN or infinite
// components when the projection is degenerate; callers decide whether to skip.
func ProjectPoint(proj *mat.Dense, point r3.Vector) r2.Point {
	var pixel mat.VecDense
	pixel.MulVec(proj, mat.NewVecDense(4, []float64{point.X, point.Y, point.Z, 1}))
	return r2.Point{X: pixel.AtVec(0) / pixel.AtVec(2), Y: pixel.AtVec(1) / pixel.AtVec(2)}
}

// ProjectPoints projects a set of world points. The second return value is false when
// any projected coordinate is NaN or infinite, in which case the entire set should be
// treated as unusable.
func ProjectPoints(proj *mat.Dense, points []r3.Vector) ([]r2.Point, bool) {
	pixels := make([]r2.Point, len(points))
	ok := true
	for i, point := range points {
		pixels[i] = ProjectPoint(proj, point)
		if !pointFinite(pixels[i]) {
			ok = false
		}
	}
	return pixels, ok
}

// ProjectGrid projects a grid of world points, preserving the grid shape. The second
// return value is false when any projected coordinate is NaN or infinite.
func ProjectGrid(proj *mat.Dense, grid [][]r3.Vector) ([][]r2.Point, bool) {
	pixels := make([][]r2.Point, len(grid))
	ok := true
	for i, row := range grid {
		rowPixels, rowOK := ProjectPoints(proj, row)
		pixels[i] = rowPixels
		ok = ok && rowOK
	}
	return pixels, ok
}

func pointFinite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
