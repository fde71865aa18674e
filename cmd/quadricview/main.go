// Command quadricview renders a demonstration of the visualization layer: a synthetic
// trajectory observing a few ellipsoid landmarks, written out as an image overlay and
// a trajectory figure.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/quadricslam/quadricview/containers"
	"github.com/quadricslam/quadricview/plotting"
	"github.com/quadricslam/quadricview/quadric"
	"github.com/quadricslam/quadricview/render"
	"github.com/quadricslam/quadricview/spatialmath"
	"github.com/quadricslam/quadricview/transform"
)

var logger = golog.NewDevelopmentLogger("quadricview")

func main() {
	overlayPath := flag.String("overlay", "overlay.png", "output path for the image overlay")
	figurePath := flag.String("figure", "trajectory.png", "output path for the trajectory figure")
	intrinsicsPath := flag.String("intrinsics", "", "optional JSON file with camera intrinsics")
	flag.Parse()

	if err := run(*overlayPath, *figurePath, *intrinsicsPath); err != nil {
		logger.Fatal(err)
	}
}

func run(overlayPath, figurePath, intrinsicsPath string) error {
	params := &transform.PinholeCameraIntrinsics{
		Width: 640, Height: 480,
		Fx: 525, Fy: 525,
		Ppx: 320, Ppy: 240,
	}
	if intrinsicsPath != "" {
		var err error
		params, err = transform.NewPinholeCameraIntrinsicsFromJSONFile(intrinsicsPath)
		if err != nil {
			return err
		}
	}
	if err := params.CheckValid(); err != nil {
		return err
	}

	traj, quads, errs := syntheticScene()

	img := image.NewRGBA(image.Rect(0, 0, params.Width, params.Height))
	drawer := render.NewDrawer(img, logger)

	firstKey := traj.Keys()[0]
	camera, _ := traj.At(firstKey)
	for _, key := range quads.Keys() {
		quad, _ := quads.At(key)
		drawer.Quadric(camera, quad, params, color.RGBA{0, 0, 255, 255}, 0.8)

		center := quad.Pose().Point()
		radii := quad.Radii()
		drawer.Bounds3D(quadric.AlignedBox3{
			XMin: center.X - radii.X, XMax: center.X + radii.X,
			YMin: center.Y - radii.Y, YMax: center.Y + radii.Y,
			ZMin: center.Z - radii.Z, ZMax: center.Z + radii.Z,
		}, camera, params, color.RGBA{255, 0, 255, 255})
	}
	drawer.BoxAndText(
		quadric.NewAlignedBox2(240, 160, 420, 330),
		color.RGBA{255, 0, 0, 255},
		fmt.Sprintf("%v: %.2f", containers.NewKey(containers.QuadricChr, 0), errs.At(firstKey)),
		color.White,
	)

	figure, err := plotting.System(traj, quads, errs)
	if err != nil {
		return err
	}

	logger.Infow("writing diagnostics", "overlay", overlayPath, "figure", figurePath)
	return multierr.Combine(
		imaging.Save(img, overlayPath),
		saveFigure(figure, figurePath),
	)
}

// syntheticScene builds a short sweep past two landmarks with made-up residuals, just
// enough to exercise every drawing path.
func syntheticScene() (*containers.Trajectory, *containers.Quadrics, containers.FactorErrors) {
	traj := containers.NewTrajectory()
	errs := containers.FactorErrors{}
	const steps = 20
	for i := 0; i < steps; i++ {
		t := float64(i) / (steps - 1)
		key := containers.NewKey(containers.PoseChr, uint64(i))
		traj.Add(key, spatialmath.NewPoseFromPoint(r3.Vector{
			X: -2 + 4*t,
			Y: 0.3 * math.Sin(2*math.Pi*t),
			Z: -5,
		}))
		errs.Accumulate(key, math.Abs(math.Sin(3*math.Pi*t)))
	}

	quads := containers.NewQuadrics()
	first, err := quadric.NewQuadric(
		spatialmath.NewPoseFromPoint(r3.Vector{X: -0.5, Y: 0, Z: 1}),
		r3.Vector{X: 1, Y: 0.6, Z: 0.4},
	)
	if err != nil {
		logger.Fatal(err)
	}
	quads.Add(containers.NewKey(containers.QuadricChr, 0), first)

	second, err := quadric.NewQuadric(
		spatialmath.NewPose(
			r3.Vector{X: 1.5, Y: 0.5, Z: 2},
			&spatialmath.EulerAngles{Yaw: math.Pi / 6},
		),
		r3.Vector{X: 0.5, Y: 0.5, Z: 0.8},
	)
	if err != nil {
		logger.Fatal(err)
	}
	quads.Add(containers.NewKey(containers.QuadricChr, 1), second)

	return traj, quads, errs
}

func saveFigure(p *plot.Plot, path string) error {
	//nolint:gosec
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return plotting.WritePNG(p, 6*vg.Inch, 6*vg.Inch, out)
}
