package containers

import (
	"github.com/quadricslam/quadricview/quadric"
)

// Boxes stores object detections, one 2D box per (pose, object) pair.
type Boxes struct {
	boxes map[Key]map[Key]quadric.AlignedBox2
}

// NewBoxes returns an empty detection store.
func NewBoxes() *Boxes {
	return &Boxes{boxes: map[Key]map[Key]quadric.AlignedBox2{}}
}

// Add inserts a detection of the given object at the given pose.
func (b *Boxes) Add(box quadric.AlignedBox2, poseKey, objectKey Key) {
	atPose, ok := b.boxes[poseKey]
	if !ok {
		atPose = map[Key]quadric.AlignedBox2{}
		b.boxes[poseKey] = atPose
	}
	atPose[objectKey] = box
}

// At returns the detection of the given object at the given pose.
func (b *Boxes) At(poseKey, objectKey Key) (quadric.AlignedBox2, bool) {
	box, ok := b.boxes[poseKey][objectKey]
	return box, ok
}

// AtPose returns all detections at the given pose, keyed by object.
func (b *Boxes) AtPose(poseKey Key) map[Key]quadric.AlignedBox2 {
	out := make(map[Key]quadric.AlignedBox2, len(b.boxes[poseKey]))
	for objectKey, box := range b.boxes[poseKey] {
		out[objectKey] = box
	}
	return out
}

// Len returns the total number of detections.
func (b *Boxes) Len() int {
	n := 0
	for _, atPose := range b.boxes {
		n += len(atPose)
	}
	return n
}

// FactorErrors accumulates the summed bounding box factor error at each pose key.
type FactorErrors map[Key]float64

// Accumulate adds err to the total recorded at the given pose key.
func (fe FactorErrors) Accumulate(poseKey Key, err float64) {
	fe[poseKey] += err
}

// At returns the summed error at the given pose key, zero when none was recorded.
func (fe FactorErrors) At(poseKey Key) float64 {
	return fe[poseKey]
}
