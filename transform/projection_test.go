package transform

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/quadricslam/quadricview/spatialmath"
)

func testIntrinsics() *PinholeCameraIntrinsics {
	return &PinholeCameraIntrinsics{
		Width: 640, Height: 480,
		Fx: 500, Fy: 500,
		Ppx: 320, Ppy: 240,
	}
}

func TestCameraMatrix(t *testing.T) {
	k := testIntrinsics().Matrix()
	rows, cols := k.Dims()
	test.That(t, rows, test.ShouldEqual, 3)
	test.That(t, cols, test.ShouldEqual, 3)
	test.That(t, k.At(0, 0), test.ShouldEqual, 500)
	test.That(t, k.At(1, 1), test.ShouldEqual, 500)
	test.That(t, k.At(0, 2), test.ShouldEqual, 320)
	test.That(t, k.At(1, 2), test.ShouldEqual, 240)
	test.That(t, k.At(2, 2), test.ShouldEqual, 1)
}

func TestProjectOpticalAxis(t *testing.T) {
	params := testIntrinsics()
	proj := WorldToImageMatrix(spatialmath.NewZeroPose(), params)

	// a point on the optical axis lands on the principal point at any depth
	for _, depth := range []float64{0.5, 1, 5, 100} {
		pixel := ProjectPoint(proj, r3.Vector{Z: depth})
		test.That(t, pixel.X, test.ShouldAlmostEqual, params.Ppx, 1e-8)
		test.That(t, pixel.Y, test.ShouldAlmostEqual, params.Ppy, 1e-8)
	}
}

func TestProjectOffAxis(t *testing.T) {
	params := testIntrinsics()
	proj := WorldToImageMatrix(spatialmath.NewZeroPose(), params)

	pixel := ProjectPoint(proj, r3.Vector{X: 1, Z: 5})
	test.That(t, pixel.X, test.ShouldAlmostEqual, 500*1.0/5.0+320, 1e-8)
	test.That(t, pixel.Y, test.ShouldAlmostEqual, 240, 1e-8)

	pixel = ProjectPoint(proj, r3.Vector{Y: -2, Z: 4})
	test.That(t, pixel.X, test.ShouldAlmostEqual, 320, 1e-8)
	test.That(t, pixel.Y, test.ShouldAlmostEqual, 500*-2.0/4.0+240, 1e-8)
}

func TestProjectTranslatedCamera(t *testing.T) {
	params := testIntrinsics()
	camera := spatialmath.NewPoseFromPoint(r3.Vector{X: 1, Y: 2, Z: -3})
	proj := WorldToImageMatrix(camera, params)

	pixel := ProjectPoint(proj, r3.Vector{X: 1, Y: 2, Z: 4})
	test.That(t, pixel.X, test.ShouldAlmostEqual, params.Ppx, 1e-8)
	test.That(t, pixel.Y, test.ShouldAlmostEqual, params.Ppy, 1e-8)
}

func TestProjectRotatedCamera(t *testing.T) {
	params := testIntrinsics()
	// camera pitched a quarter turn looks down the world +x axis
	camera := spatialmath.NewPose(r3.Vector{}, &spatialmath.EulerAngles{Pitch: math.Pi / 2})
	proj := WorldToImageMatrix(camera, params)

	pixel := ProjectPoint(proj, r3.Vector{X: 5})
	test.That(t, pixel.X, test.ShouldAlmostEqual, params.Ppx, 1e-6)
	test.That(t, pixel.Y, test.ShouldAlmostEqual, params.Ppy, 1e-6)
}

func TestProjectDegenerate(t *testing.T) {
	// an all-zero calibration collapses every projection to 0/0
	proj := WorldToImageMatrix(spatialmath.NewZeroPose(), &PinholeCameraIntrinsics{})
	pixel := ProjectPoint(proj, r3.Vector{Z: 5})
	test.That(t, math.IsNaN(pixel.X), test.ShouldBeTrue)
	test.That(t, math.IsNaN(pixel.Y), test.ShouldBeTrue)

	_, ok := ProjectPoints(proj, []r3.Vector{{Z: 5}, {X: 1, Z: 2}})
	test.That(t, ok, test.ShouldBeFalse)

	// zero depth divides out to infinity
	proj = WorldToImageMatrix(spatialmath.NewZeroPose(), testIntrinsics())
	pixel = ProjectPoint(proj, r3.Vector{X: 1, Z: 0})
	test.That(t, math.IsInf(pixel.X, 0), test.ShouldBeTrue)
}

func TestProjectPoints(t *testing.T) {
	proj := WorldToImageMatrix(spatialmath.NewZeroPose(), testIntrinsics())
	pixels, ok := ProjectPoints(proj, []r3.Vector{{Z: 1}, {Z: 2}, {X: 1, Z: 1}})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pixels, test.ShouldHaveLength, 3)
}

func TestProjectGrid(t *testing.T) {
	proj := WorldToImageMatrix(spatialmath.NewZeroPose(), testIntrinsics())
	grid := [][]r3.Vector{
		{{Z: 1}, {X: 1, Z: 1}},
		{{Y: 1, Z: 2}, {Z: 3}},
		{{X: -1, Z: 4}, {Y: -1, Z: 5}},
	}
	pixels, ok := ProjectGrid(proj, grid)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pixels, test.ShouldHaveLength, 3)
	for _, row := range pixels {
		test.That(t, row, test.ShouldHaveLength, 2)
	}

	// one bad sample poisons the whole grid
	grid[1][1] = r3.Vector{Z: 0}
	_, ok = ProjectGrid(proj, grid)
	test.That(t, ok, test.ShouldBeFalse)
}
