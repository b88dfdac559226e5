package pointconv

import (
	"math"

	"github.com/golang/geo/r3"
)

// RGB is a bare color record. Channels are stored as integers in
// [0, 255]; the conversion formulas treat them as nominally normalized
// to [0, 1], with the historical exceptions documented on the intensity
// conversions.
type RGB struct {
	R, G, B uint8
}

// RGBA is a color record with an alpha channel.
type RGBA struct {
	R, G, B, A uint8
}

// Intensity is a single grayscale measurement, by convention normalized
// to [0, 1]. Depth clouds reuse it to carry raw millimeter readings.
type Intensity struct {
	I float32
}

// Intensity8 is an intensity scaled to [0, 255].
type Intensity8 struct {
	I uint8
}

// Intensity32 is an intensity scaled to the full 32-bit unsigned range.
type Intensity32 struct {
	I uint32
}

// HSV is a color in hue/saturation/value space. Hue is degrees in
// [0, 360), saturation and value are in [0, 1]. When saturation is 0
// the hue is undefined and reported as 0.
type HSV struct {
	H, S, V float64
}

// XYZRGB is a colored point.
type XYZRGB struct {
	Position r3.Vector
	RGB
}

// XYZRGBA is a colored point with an alpha channel.
type XYZRGBA struct {
	Position r3.Vector
	RGBA
}

// XYZI is a point with a grayscale intensity.
type XYZI struct {
	Position r3.Vector
	Intensity
}

// XYZHSV is a point colored in HSV space.
type XYZHSV struct {
	Position r3.Vector
	HSV
}

// InvalidPosition returns the sentinel position marking an unmeasured
// point.
func InvalidPosition() r3.Vector {
	nan := math.NaN()
	return r3.Vector{X: nan, Y: nan, Z: nan}
}

// PositionValid reports whether p holds a measured position rather than
// the NaN sentinel.
func PositionValid(p r3.Vector) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsNaN(p.Z)
}
