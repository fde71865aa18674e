package containers

import (
	"sort"

	"github.com/quadricslam/quadricview/spatialmath"
)

// Trajectory is a set of camera poses keyed by pose key, iterated in increasing key
// order.
type Trajectory struct {
	poses map[Key]spatialmath.Pose
}

// NewTrajectory returns an empty trajectory.
func NewTrajectory() *Trajectory {
	return &Trajectory{poses: map[Key]spatialmath.Pose{}}
}

// Add inserts a pose at the given key, replacing any existing pose.
func (t *Trajectory) Add(key Key, pose spatialmath.Pose) {
	t.poses[key] = pose
}

// At returns the pose at the given key.
func (t *Trajectory) At(key Key) (spatialmath.Pose, bool) {
	pose, ok := t.poses[key]
	return pose, ok
}

// Keys returns the pose keys in increasing order.
func (t *Trajectory) Keys() []Key {
	keys := make([]Key, 0, len(t.poses))
	for key := range t.poses {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Poses returns the poses in increasing key order.
func (t *Trajectory) Poses() []spatialmath.Pose {
	keys := t.Keys()
	poses := make([]spatialmath.Pose, 0, len(keys))
	for _, key := range keys {
		poses = append(poses, t.poses[key])
	}
	return poses
}

// Len returns the number of poses.
func (t *Trajectory) Len() int {
	return len(t.poses)
}
