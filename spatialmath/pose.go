package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof pose, position and orientation, of an object or a camera in
// 3D space.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

type basicPose struct {
	point       r3.Vector
	orientation Orientation
}

func (bp *basicPose) Point() r3.Vector {
	return bp.point
}

func (bp *basicPose) Orientation() Orientation {
	return bp.orientation
}

// NewZeroPose returns a pose at (0,0,0) with the same orientation as whatever frame it
// is placed in.
func NewZeroPose() Pose {
	return &basicPose{orientation: NewZeroOrientation()}
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	return &basicPose{p, o}
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a pose. The pose will
// have the same orientation as the frame it is in reference to.
func NewPoseFromPoint(point r3.Vector) Pose {
	return &basicPose{point, NewZeroOrientation()}
}

// NewPoseFromOrientation takes in an orientation and returns a Pose at the origin.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return &basicPose{orientation: o}
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function
// C(x) = A(B(x)).
func Compose(a, b Pose) Pose {
	qa := a.Orientation().Quaternion()
	point := a.Point().Add(QuatRotate(qa, b.Point()))
	orientation := quaternion(quat.Mul(qa, b.Orientation().Quaternion()))
	return &basicPose{point, &orientation}
}

// PoseInverse will return the inverse of a pose. So if a pose maps from A to B, the
// inverse will map from B to A.
func PoseInverse(p Pose) Pose {
	qInv := quat.Conj(p.Orientation().Quaternion())
	point := QuatRotate(qInv, p.Point().Mul(-1))
	orientation := quaternion(qInv)
	return &basicPose{point, &orientation}
}

// PoseBetween returns the difference between two poses, that is, the pose that when
// composed onto `a` yields `b`. In particular, when `a` is a camera pose and `b` is a
// world point, the Z coordinate of the result is the point's depth in the camera frame.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostCoincident checks if two poses approximately coincide in both position and
// orientation.
func PoseAlmostCoincident(a, b Pose) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), 1e-8) &&
		OrientationAlmostEqual(a.Orientation(), b.Orientation())
}
