// Package quadric contains the geometric types the visualization layer consumes:
// ellipsoid landmarks and axis-aligned bounding boxes in two and three dimensions.
package quadric

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/quadricslam/quadricview/spatialmath"
)

// Quadric is an ellipsoid landmark: an ellipsoid axis-aligned in its own frame,
// placed in the world by a center pose. It is immutable once constructed.
type Quadric struct {
	pose  spatialmath.Pose
	radii r3.Vector
}

// NewQuadric creates an ellipsoid landmark from a center pose and three radii along
// the local x, y and z axes. The radii must be strictly positive.
func NewQuadric(pose spatialmath.Pose, radii r3.Vector) (*Quadric, error) {
	if radii.X <= 0 || radii.Y <= 0 || radii.Z <= 0 {
		return nil, errors.Errorf("quadric radii must be strictly positive, got (%v, %v, %v)",
			radii.X, radii.Y, radii.Z)
	}
	if pose == nil {
		pose = spatialmath.NewZeroPose()
	}
	return &Quadric{pose: pose, radii: radii}, nil
}

// Pose returns the center pose of the ellipsoid.
func (q *Quadric) Pose() spatialmath.Pose {
	return q.pose
}

// Radii returns the radii along the ellipsoid's local axes.
func (q *Quadric) Radii() r3.Vector {
	return q.radii
}

// SurfacePoints samples the ellipsoid surface in its local frame on a
// thetaPoints x phiPoints spherical grid
//
//	x(u,v) = rx*cos(u)*sin(v), y(u,v) = ry*sin(u)*sin(v), z(u,v) = rz*cos(v)
//
// with u in [0, 2pi] and v in [0, pi], endpoints included. Row and column adjacency in
// the returned grid defines the wireframe edges.
func (q *Quadric) SurfacePoints(thetaPoints, phiPoints int) [][]r3.Vector {
	points := make([][]r3.Vector, thetaPoints)
	for i := 0; i < thetaPoints; i++ {
		u := linspace(0, 2*math.Pi, thetaPoints, i)
		row := make([]r3.Vector, phiPoints)
		for j := 0; j < phiPoints; j++ {
			v := linspace(0, math.Pi, phiPoints, j)
			row[j] = r3.Vector{
				X: q.radii.X * math.Cos(u) * math.Sin(v),
				Y: q.radii.Y * math.Sin(u) * math.Sin(v),
				Z: q.radii.Z * math.Cos(v),
			}
		}
		points[i] = row
	}
	return points
}

// WorldPoints samples the ellipsoid surface and maps the samples into world
// coordinates using the center pose: rotate into the world frame, then translate.
func (q *Quadric) WorldPoints(thetaPoints, phiPoints int) [][]r3.Vector {
	rot := q.pose.Orientation().RotationMatrix()
	translation := q.pose.Point()
	points := q.SurfacePoints(thetaPoints, phiPoints)
	for i := range points {
		for j, point := range points[i] {
			points[i][j] = rot.Mul(point).Add(translation)
		}
	}
	return points
}

// linspace returns the i'th of n evenly spaced samples over [start, stop], endpoints
// included. A single sample sits at start.
func linspace(start, stop float64, n, i int) float64 {
	if n < 2 {
		return start
	}
	return start + (stop-start)*float64(i)/float64(n-1)
}
