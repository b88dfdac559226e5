package pointconv

// A Conversion maps point records of type In onto records of type Out.
// The supported pairs are exactly the typed Conversion values declared
// below plus Identity: a pair with no declared value cannot be named,
// so an unsupported conversion fails the build instead of producing
// wrong data at runtime.
type Conversion[In, Out any] struct {
	fn func(In) Out
}

// NewConversion declares a conversion for one (In, Out) record pair.
// Adding support for a new pair is a single NewConversion declaration.
func NewConversion[In, Out any](fn func(In) Out) Conversion[In, Out] {
	return Conversion[In, Out]{fn: fn}
}

// Identity returns the conversion between two records of the same type,
// a plain copy.
func Identity[P any]() Conversion[P, P] {
	return Conversion[P, P]{fn: func(p P) P { return p }}
}

// Convert applies a conversion to a single record.
func Convert[In, Out any](conv Conversion[In, Out], p In) Out {
	return conv.fn(p)
}

// The supported conversion pairs.
var (
	RGBIntensity   = NewConversion(RGBToIntensity)
	RGBIntensity8  = NewConversion(RGBToIntensity8)
	RGBIntensity32 = NewConversion(RGBToIntensity32)
	XYZRGBXYZI     = NewConversion(XYZRGBToXYZI)
	XYZRGBXYZHSV   = NewConversion(XYZRGBToXYZHSV)
	XYZRGBAXYZHSV  = NewConversion(XYZRGBAToXYZHSV)
	XYZHSVXYZRGB   = NewConversion(XYZHSVToXYZRGB)
)
