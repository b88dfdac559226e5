package pointconv

import "math"

// BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGBToIntensity converts a color record to a float intensity using the
// BT.601 luma weights applied to the raw [0, 255] channel values. A
// gray level k therefore maps to intensity k, not k/255; downstream
// code has always depended on this scaling and it must not change.
func RGBToIntensity(c RGB) Intensity {
	return Intensity{I: lumaR*float32(c.R) + lumaG*float32(c.G) + lumaB*float32(c.B)}
}

// RGBToIntensity8 converts a color record to an 8-bit intensity. Only
// the red term is scaled by the 8-bit maximum before summation; the
// asymmetry is historical and kept bit for bit. Red channels above 3
// overflow the 8-bit range, as they always have.
func RGBToIntensity8(c RGB) Intensity8 {
	return Intensity8{I: uint8(float32(math.MaxUint8)*lumaR*float32(c.R) + lumaG*float32(c.G) + lumaB*float32(c.B))}
}

// RGBToIntensity32 converts a color record to a 32-bit intensity. As
// with RGBToIntensity8, only the red term is scaled by the type's
// maximum.
func RGBToIntensity32(c RGB) Intensity32 {
	return Intensity32{I: uint32(float32(math.MaxUint32)*lumaR*float32(c.R) + lumaG*float32(c.G) + lumaB*float32(c.B))}
}

// XYZRGBToXYZI converts a colored point to an intensity point, leaving
// the position untouched.
func XYZRGBToXYZI(p XYZRGB) XYZI {
	return XYZI{Position: p.Position, Intensity: RGBToIntensity(p.RGB)}
}

// rgbToHSV is the shared core of the HSV conversions. Pure black and
// pure gray both land on hue 0 rather than an "undefined" sentinel.
func rgbToHSV(c RGB) HSV {
	maxC := c.R
	if c.G > maxC {
		maxC = c.G
	}
	if c.B > maxC {
		maxC = c.B
	}
	minC := c.R
	if c.G < minC {
		minC = c.G
	}
	if c.B < minC {
		minC = c.B
	}

	out := HSV{V: float64(maxC) / 255}
	if maxC == 0 {
		// black: saturation would divide by zero
		return out
	}

	diff := float64(maxC - minC)
	out.S = diff / float64(maxC)
	if maxC == minC {
		// gray: hue would divide by zero
		return out
	}

	switch maxC {
	case c.R:
		out.H = 60 * ((float64(c.G) - float64(c.B)) / diff)
	case c.G:
		out.H = 60 * (2 + (float64(c.B)-float64(c.R))/diff)
	default:
		out.H = 60 * (4 + (float64(c.R)-float64(c.G))/diff)
	}
	if out.H < 0 {
		out.H += 360
	}
	return out
}

// XYZRGBToXYZHSV converts a colored point to HSV space, leaving the
// position untouched.
func XYZRGBToXYZHSV(p XYZRGB) XYZHSV {
	return XYZHSV{Position: p.Position, HSV: rgbToHSV(p.RGB)}
}

// XYZRGBAToXYZHSV converts a colored point to HSV space, leaving the
// position untouched. Alpha does not participate in the conversion.
func XYZRGBAToXYZHSV(p XYZRGBA) XYZHSV {
	return XYZHSV{Position: p.Position, HSV: rgbToHSV(RGB{R: p.R, G: p.G, B: p.B})}
}

// XYZHSVToXYZRGB converts an HSV point back to RGB, leaving the
// position untouched. Channels are truncated, not rounded, to 8 bits.
func XYZHSVToXYZRGB(p XYZHSV) XYZRGB {
	out := XYZRGB{Position: p.Position}
	if p.S == 0 {
		gray := uint8(255 * p.V)
		out.R, out.G, out.B = gray, gray, gray
		return out
	}

	sector := p.H / 60
	i := int(math.Floor(sector))
	f := sector - float64(i)
	pp := p.V * (1 - p.S)
	q := p.V * (1 - p.S*f)
	t := p.V * (1 - p.S*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = p.V, t, pp
	case 1:
		r, g, b = q, p.V, pp
	case 2:
		r, g, b = pp, p.V, t
	case 3:
		r, g, b = pp, q, p.V
	case 4:
		r, g, b = t, pp, p.V
	default:
		r, g, b = p.V, pp, q
	}
	out.R = uint8(255 * r)
	out.G = uint8(255 * g)
	out.B = uint8(255 * b)
	return out
}
