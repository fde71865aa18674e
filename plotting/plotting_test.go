package plotting

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/plot/vg"

	"github.com/quadricslam/quadricview/containers"
	"github.com/quadricslam/quadricview/quadric"
	"github.com/quadricslam/quadricview/spatialmath"
)

func testEstimate(t *testing.T) (*containers.Trajectory, *containers.Quadrics, containers.FactorErrors) {
	t.Helper()
	traj := containers.NewTrajectory()
	errs := containers.FactorErrors{}
	for i := 0; i < 5; i++ {
		key := containers.NewKey(containers.PoseChr, uint64(i))
		traj.Add(key, spatialmath.NewPoseFromPoint(r3.Vector{X: float64(i), Y: float64(i % 2)}))
		errs.Accumulate(key, float64(i)*0.5)
	}

	quads := containers.NewQuadrics()
	quad, err := quadric.NewQuadric(
		spatialmath.NewPoseFromPoint(r3.Vector{X: 2, Y: 3}),
		r3.Vector{X: 1, Y: 1, Z: 1},
	)
	test.That(t, err, test.ShouldBeNil)
	quads.Add(containers.NewKey(containers.QuadricChr, 0), quad)
	return traj, quads, errs
}

func TestSystem(t *testing.T) {
	traj, quads, errs := testEstimate(t)
	p, err := System(traj, quads, errs)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldNotBeNil)

	var buf bytes.Buffer
	test.That(t, WritePNG(p, 4*vg.Inch, 4*vg.Inch, &buf), test.ShouldBeNil)
	test.That(t, buf.Len(), test.ShouldBeGreaterThan, 0)
}

func TestSystemUniformErrors(t *testing.T) {
	traj, quads, _ := testEstimate(t)
	// identical errors at every pose must not break the color scale
	errs := containers.FactorErrors{}
	for _, key := range traj.Keys() {
		errs.Accumulate(key, 1)
	}
	p, err := System(traj, quads, errs)
	test.That(t, err, test.ShouldBeNil)

	var buf bytes.Buffer
	test.That(t, WritePNG(p, 4*vg.Inch, 4*vg.Inch, &buf), test.ShouldBeNil)
}

func TestComparison(t *testing.T) {
	trajA, quadsA, _ := testEstimate(t)
	trajB, quadsB, _ := testEstimate(t)

	colors := []color.Color{
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}
	p, err := Comparison(
		[]*containers.Trajectory{trajA, trajB},
		[]*containers.Quadrics{quadsA, quadsB},
		colors,
		[]string{"ground truth", "estimate"},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldNotBeNil)

	var buf bytes.Buffer
	test.That(t, WritePNG(p, 4*vg.Inch, 4*vg.Inch, &buf), test.ShouldBeNil)
	test.That(t, buf.Len(), test.ShouldBeGreaterThan, 0)
}

func TestComparisonNeedsColors(t *testing.T) {
	traj, quads, _ := testEstimate(t)
	_, err := Comparison(
		[]*containers.Trajectory{traj, traj},
		[]*containers.Quadrics{quads},
		[]color.Color{color.Black},
		nil,
	)
	test.That(t, err, test.ShouldNotBeNil)
}
