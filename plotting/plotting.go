// Package plotting builds diagnostic figures for estimation results: the x-y
// trajectory colored by bounding box factor error, landmark centers, and side by side
// comparisons of several runs.
package plotting

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/quadricslam/quadricview/containers"
)

var (
	trajectoryColor = color.RGBA{0, 255, 255, 255}
	landmarkColor   = color.RGBA{255, 0, 255, 255}
)

// System plots a single estimate: the x-y trajectory as a line, each pose as a point
// colored by the summed bounding box factor error at that pose, and each landmark
// center as an open circle.
func System(traj *containers.Trajectory, quads *containers.Quadrics, errs containers.FactorErrors) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "trajectory and landmarks"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	keys := traj.Keys()
	xys := make(plotter.XYs, 0, len(keys))
	poseErrs := make([]float64, 0, len(keys))
	for _, key := range keys {
		pose, _ := traj.At(key)
		xys = append(xys, plotter.XY{X: pose.Point().X, Y: pose.Point().Y})
		poseErrs = append(poseErrs, errs.At(key))
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "cannot plot trajectory line")
	}
	line.Color = trajectoryColor
	p.Add(line)

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "cannot plot trajectory poses")
	}
	colors := moreland.SmoothBlueRed()
	lo, hi := minMax(poseErrs)
	colors.SetMin(lo)
	colors.SetMax(hi)
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := colors.At(poseErrs[i])
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}
	p.Add(scatter)

	centers := make(plotter.XYs, 0, quads.Len())
	for _, quad := range quads.Data() {
		centers = append(centers, plotter.XY{X: quad.Pose().Point().X, Y: quad.Pose().Point().Y})
	}
	rings, err := plotter.NewScatter(centers)
	if err != nil {
		return nil, errors.Wrap(err, "cannot plot landmark centers")
	}
	rings.GlyphStyle = draw.GlyphStyle{Color: landmarkColor, Radius: vg.Points(5), Shape: draw.RingGlyph{}}
	p.Add(rings)

	return p, nil
}

// Comparison plots several trajectory/map pairs on one figure, one color per pair,
// with a legend built from names. names may be nil for no legend; colors must cover
// every pair.
func Comparison(
	trajectories []*containers.Trajectory,
	maps []*containers.Quadrics,
	colors []color.Color,
	names []string,
) (*plot.Plot, error) {
	if len(colors) < len(trajectories) || len(colors) < len(maps) {
		return nil, errors.New("need a color for every trajectory and map")
	}

	p := plot.New()
	p.Title.Text = "trajectory comparison"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, traj := range trajectories {
		xys := make(plotter.XYs, 0, traj.Len())
		for _, pose := range traj.Poses() {
			xys = append(xys, plotter.XY{X: pose.Point().X, Y: pose.Point().Y})
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot plot trajectory %d", i)
		}
		line.Color = colors[i]
		points.GlyphStyle = draw.GlyphStyle{Color: colors[i], Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
		p.Add(line, points)
		if names != nil && i < len(names) {
			p.Legend.Add(names[i], line)
		}
	}

	for i, quads := range maps {
		centers := make(plotter.XYs, 0, quads.Len())
		for _, quad := range quads.Data() {
			centers = append(centers, plotter.XY{X: quad.Pose().Point().X, Y: quad.Pose().Point().Y})
		}
		scatter, err := plotter.NewScatter(centers)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot plot map %d", i)
		}
		scatter.GlyphStyle = draw.GlyphStyle{Color: colors[i], Radius: vg.Points(3), Shape: draw.RingGlyph{}}
		p.Add(scatter)
	}

	return p, nil
}

// WritePNG renders the figure as a PNG at the given size.
func WritePNG(p *plot.Plot, width, height vg.Length, out io.Writer) error {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return errors.Wrap(err, "cannot render figure")
	}
	if _, err := writer.WriteTo(out); err != nil {
		return errors.Wrap(err, "cannot write figure")
	}
	return nil
}

// minMax returns the bounds of the values, padded when they coincide so a color map
// over them stays valid.
func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
