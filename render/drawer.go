// Package render draws SLAM diagnostics onto images: detection boxes, captions,
// projected quadric wireframes and 3D bounding box wireframes.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/quadricslam/quadricview/quadric"
	"github.com/quadricslam/quadricview/spatialmath"
	"github.com/quadricslam/quadricview/transform"
)

var font *truetype.Font

// init sets up the font we use for captions.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for drawing.
func Font() *truetype.Font {
	return font
}

// DefaultResolution is the surface sampling resolution used for quadric wireframes.
const DefaultResolution = 10

var cornerColor = color.RGBA{255, 0, 0, 255}

// Drawer draws overlays onto a caller-owned image buffer in place. It is not safe for
// concurrent use; the caller owns any synchronization.
type Drawer struct {
	img    *image.RGBA
	dc     *gg.Context
	logger golog.Logger
}

// NewDrawer returns a Drawer over the given image buffer.
func NewDrawer(img *image.RGBA, logger golog.Logger) *Drawer {
	return &Drawer{img: img, dc: gg.NewContextForRGBA(img), logger: logger}
}

// Image returns the underlying buffer.
func (d *Drawer) Image() *image.RGBA {
	return d.img
}

// Box strokes an empty detection box.
func (d *Drawer) Box(box quadric.AlignedBox2, c color.Color, thickness float64) {
	d.dc.SetColor(c)

	d.dc.DrawLine(box.XMin, box.YMin, box.XMax, box.YMin)
	d.dc.SetLineWidth(thickness)
	d.dc.Stroke()

	d.dc.DrawLine(box.XMin, box.YMin, box.XMin, box.YMax)
	d.dc.SetLineWidth(thickness)
	d.dc.Stroke()

	d.dc.DrawLine(box.XMax, box.YMin, box.XMax, box.YMax)
	d.dc.SetLineWidth(thickness)
	d.dc.Stroke()

	d.dc.DrawLine(box.XMin, box.YMax, box.XMax, box.YMax)
	d.dc.SetLineWidth(thickness)
	d.dc.Stroke()
}

// Text draws a caption whose lower left corner is clamped to stay inside the image.
// With background set, a filled rectangle in backgroundColor is drawn behind the text.
func (d *Drawer) Text(
	text string,
	lowerLeft image.Point,
	c color.Color,
	size float64,
	background bool,
	backgroundColor color.Color,
) {
	const margin = 3.0
	d.dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))

	w, h := d.dc.MeasureString(text)
	w += 2 * margin
	h += 2 * margin

	x := clamp(float64(lowerLeft.X)+margin, 0, float64(d.dc.Width())-w)
	y := clamp(float64(lowerLeft.Y)-margin, h, float64(d.dc.Height()))

	if background {
		d.dc.SetColor(backgroundColor)
		d.dc.DrawRectangle(x-margin+1, y-h+1, w+margin, h+1)
		d.dc.Fill()
	}
	d.dc.SetColor(c)
	d.dc.DrawString(text, x, y-margin)
}

// BoxAndText strokes a detection box with a caption anchored at its top left corner.
func (d *Drawer) BoxAndText(box quadric.AlignedBox2, boxColor color.Color, caption string, textColor color.Color) {
	const thickness = 2
	d.Box(box, boxColor, thickness)
	d.Text(caption, image.Pt(int(box.XMin)-thickness, int(box.YMin)-thickness), textColor, 12, true, boxColor)
}

// Quadric projects an ellipsoid landmark into the camera and draws its wireframe at
// the default resolution. See QuadricWithResolution.
func (d *Drawer) Quadric(
	camera spatialmath.Pose,
	q *quadric.Quadric,
	params *transform.PinholeCameraIntrinsics,
	c color.Color,
	alpha float64,
) {
	d.QuadricWithResolution(camera, q, params, c, alpha, DefaultResolution, DefaultResolution)
}

// QuadricWithResolution projects an ellipsoid landmark into the camera and draws its
// wireframe, sampling the surface at the given resolution. If any sample fails to
// project to a finite pixel the whole wireframe is dropped rather than drawn
// partially. With alpha < 1 the wireframe is blended against the original image.
func (d *Drawer) QuadricWithResolution(
	camera spatialmath.Pose,
	q *quadric.Quadric,
	params *transform.PinholeCameraIntrinsics,
	c color.Color,
	alpha float64,
	thetaPoints, phiPoints int,
) {
	proj := transform.WorldToImageMatrix(camera, params)
	grid, ok := transform.ProjectGrid(proj, q.WorldPoints(thetaPoints, phiPoints))
	if !ok {
		d.logger.Debugw("dropping quadric wireframe, projection is degenerate", "center", q.Pose().Point())
		return
	}

	var base *image.RGBA
	if alpha < 1 {
		base = cloneRGBA(d.img)
	}

	d.dc.SetColor(c)
	d.dc.SetLineWidth(1)
	for _, seg := range gridSegments(grid) {
		d.dc.DrawLine(seg.a.X, seg.a.Y, seg.b.X, seg.b.Y)
		d.dc.Stroke()
	}

	if base != nil {
		blended := imaging.Overlay(base, d.img, image.Point{}, alpha)
		draw.Draw(d.img, d.img.Bounds(), blended, image.Point{}, draw.Src)
	}
}

// Bounds3D draws the wireframe of an axis-aligned 3D box. The whole box is dropped
// when any corner lies behind the camera or fails to project to a finite pixel.
func (d *Drawer) Bounds3D(
	box quadric.AlignedBox3,
	camera spatialmath.Pose,
	params *transform.PinholeCameraIntrinsics,
	c color.Color,
) {
	corners := box.Corners()
	for _, corner := range corners {
		depth := spatialmath.PoseBetween(camera, spatialmath.NewPoseFromPoint(corner)).Point().Z
		if depth < 0 {
			d.logger.Debugw("dropping box wireframe, corner behind camera", "corner", corner)
			return
		}
	}

	proj := transform.WorldToImageMatrix(camera, params)
	pixels, ok := transform.ProjectPoints(proj, corners[:])
	if !ok {
		d.logger.Debugw("dropping box wireframe, projection is degenerate")
		return
	}

	d.dc.SetColor(cornerColor)
	for _, pixel := range pixels {
		d.dc.DrawCircle(pixel.X, pixel.Y, 1)
		d.dc.Fill()
	}

	d.dc.SetColor(c)
	d.dc.SetLineWidth(1)
	for _, edge := range quadric.BoxEdges {
		d.dc.DrawLine(pixels[edge[0]].X, pixels[edge[0]].Y, pixels[edge[1]].X, pixels[edge[1]].Y)
		d.dc.Stroke()
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
