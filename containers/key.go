// Package containers holds keyed containers for estimation results: the poses,
// landmarks and detections a SLAM front end accumulates and hands to the
// visualization layer.
package containers

import (
	"fmt"
)

// Key identifies a variable in the estimation problem. It packs a one character tag
// with a 56 bit index, so that keys of the same kind sort together in index order.
type Key uint64

const indexBits = 56

const indexMask = (uint64(1) << indexBits) - 1

// Conventional tags for the variable kinds the estimator produces.
const (
	PoseChr    byte = 'x'
	QuadricChr byte = 'q'
)

// NewKey packs a character tag and an index into a Key.
func NewKey(chr byte, index uint64) Key {
	return Key(uint64(chr)<<indexBits | (index & indexMask))
}

// Chr returns the character tag of the key.
func (k Key) Chr() byte {
	return byte(uint64(k) >> indexBits)
}

// Index returns the index of the key.
func (k Key) Index() uint64 {
	return uint64(k) & indexMask
}

// String renders the key as tag plus index, e.g. "x12".
func (k Key) String() string {
	return fmt.Sprintf("%c%d", k.Chr(), k.Index())
}
