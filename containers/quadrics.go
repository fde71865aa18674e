package containers

import (
	"sort"

	"github.com/quadricslam/quadricview/quadric"
)

// Quadrics is a set of ellipsoid landmarks keyed by landmark key, iterated in
// increasing key order.
type Quadrics struct {
	quadrics map[Key]*quadric.Quadric
}

// NewQuadrics returns an empty landmark map.
func NewQuadrics() *Quadrics {
	return &Quadrics{quadrics: map[Key]*quadric.Quadric{}}
}

// Add inserts a landmark at the given key, replacing any existing landmark.
func (q *Quadrics) Add(key Key, quad *quadric.Quadric) {
	q.quadrics[key] = quad
}

// At returns the landmark at the given key.
func (q *Quadrics) At(key Key) (*quadric.Quadric, bool) {
	quad, ok := q.quadrics[key]
	return quad, ok
}

// Keys returns the landmark keys in increasing order.
func (q *Quadrics) Keys() []Key {
	keys := make([]Key, 0, len(q.quadrics))
	for key := range q.quadrics {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Data returns the landmarks in increasing key order.
func (q *Quadrics) Data() []*quadric.Quadric {
	keys := q.Keys()
	quads := make([]*quadric.Quadric, 0, len(keys))
	for _, key := range keys {
		quads = append(quads, q.quadrics[key])
	}
	return quads
}

// Len returns the number of landmarks.
func (q *Quadrics) Len() int {
	return len(q.quadrics)
}
