// Package pointconv converts structured point-cloud records between
// color representations (RGB, intensity, HSV) and reconstructs 3D
// positions from registered depth and color images.
//
// Conversions are selected at compile time: each supported record pair
// has a typed Conversion value, and a pair with no such value cannot be
// requested at all. See dispatch.go for the full list.
package pointconv

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Cloud is an ordered collection of point records plus acquisition
// metadata. A cloud with Height > 1 is organized: Points is a row-major
// Width x Height grid, typically mirroring the image the cloud came
// from.
type Cloud[P any] struct {
	Points []P

	// Width and Height describe the organization of Points. An
	// unorganized cloud has Height 1 and Width equal to its size.
	Width, Height int

	// Dense is true iff no record holds the invalid-position sentinel.
	Dense bool

	// Origin and Orientation are the pose of the sensor the cloud was
	// acquired from.
	Origin      r3.Vector
	Orientation quat.Number
}

// NewCloud returns an empty unorganized cloud preallocated for size
// points.
func NewCloud[P any](size int) *Cloud[P] {
	return &Cloud[P]{
		Points:      make([]P, 0, size),
		Height:      1,
		Dense:       true,
		Orientation: quat.Number{Real: 1},
	}
}

// NewOrganizedCloud returns a width x height cloud with all records
// zero valued.
func NewOrganizedCloud[P any](width, height int) *Cloud[P] {
	return &Cloud[P]{
		Points:      make([]P, width*height),
		Width:       width,
		Height:      height,
		Dense:       true,
		Orientation: quat.Number{Real: 1},
	}
}

// Size returns the number of records in the cloud.
func (c *Cloud[P]) Size() int {
	return len(c.Points)
}

// Organized reports whether the cloud carries 2D image structure.
func (c *Cloud[P]) Organized() bool {
	return c.Height > 1
}

// At returns the record at column u, row v of an organized cloud.
func (c *Cloud[P]) At(u, v int) P {
	return c.Points[v*c.Width+u]
}

// SetAt stores p at column u, row v of an organized cloud.
func (c *Cloud[P]) SetAt(u, v int, p P) {
	c.Points[v*c.Width+u] = p
}

// Append adds a record to the cloud, keeping Width in sync for
// unorganized clouds.
func (c *Cloud[P]) Append(p P) {
	c.Points = append(c.Points, p)
	if c.Height <= 1 {
		c.Width = len(c.Points)
	}
}
