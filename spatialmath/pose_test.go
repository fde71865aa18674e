package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPoseConstruction(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)

	pt := r3.Vector{X: 1, Y: 2, Z: 3}
	p = NewPoseFromPoint(pt)
	test.That(t, p.Point(), test.ShouldResemble, pt)

	p = NewPose(pt, nil)
	test.That(t, p.Point(), test.ShouldResemble, pt)
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)
}

func TestCompose(t *testing.T) {
	a := NewPoseFromPoint(r3.Vector{X: 1, Y: 2, Z: 3})
	b := NewPoseFromPoint(r3.Vector{X: -1, Y: 0, Z: 4})
	test.That(t, R3VectorAlmostEqual(Compose(a, b).Point(), r3.Vector{X: 0, Y: 2, Z: 7}, 1e-8), test.ShouldBeTrue)

	// composing a zero pose is the identity
	test.That(t, PoseAlmostCoincident(Compose(NewZeroPose(), a), a), test.ShouldBeTrue)
	test.That(t, PoseAlmostCoincident(Compose(a, NewZeroPose()), a), test.ShouldBeTrue)

	// a quarter turn around Z carries the second pose's x offset onto y
	yawed := NewPose(r3.Vector{}, &EulerAngles{Yaw: math.Pi / 2})
	got := Compose(yawed, NewPoseFromPoint(r3.Vector{X: 1})).Point()
	test.That(t, R3VectorAlmostEqual(got, r3.Vector{Y: 1}, 1e-8), test.ShouldBeTrue)
}

func TestPoseInverse(t *testing.T) {
	p := NewPose(r3.Vector{X: 2, Y: -1, Z: 5}, &EulerAngles{Roll: 0.2, Pitch: -0.4, Yaw: 1.1})
	test.That(t, PoseAlmostCoincident(Compose(p, PoseInverse(p)), NewZeroPose()), test.ShouldBeTrue)
	test.That(t, PoseAlmostCoincident(Compose(PoseInverse(p), p), NewZeroPose()), test.ShouldBeTrue)
}

func TestPoseBetween(t *testing.T) {
	a := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, &EulerAngles{Yaw: 0.5})
	b := NewPose(r3.Vector{X: -2, Y: 0, Z: 1}, &EulerAngles{Roll: 0.3, Pitch: 0.1})
	between := PoseBetween(a, b)
	test.That(t, PoseAlmostCoincident(Compose(a, between), b), test.ShouldBeTrue)
}

func TestPoseBetweenDepth(t *testing.T) {
	// with an identity camera, the camera-frame depth of a world point is its z
	camera := NewZeroPose()
	point := NewPoseFromPoint(r3.Vector{Z: -5})
	test.That(t, PoseBetween(camera, point).Point().Z, test.ShouldAlmostEqual, -5)

	camera = NewPoseFromPoint(r3.Vector{Z: -5})
	point = NewPoseFromPoint(r3.Vector{Z: 1})
	test.That(t, PoseBetween(camera, point).Point().Z, test.ShouldAlmostEqual, 6)
}
