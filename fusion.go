package pointconv

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// FuseDepthAndColor back-projects a registered depth image onto a color
// image, producing a colored point per pixel. Depth values are raw
// millimeter readings carried in Intensity records; focal is the focal
// length in pixels of a pinhole camera whose principal point sits at
// the pixel origin. A zero depth marks an unmeasured pixel and yields
// the NaN position sentinel. Alpha is always 0.
//
// The output copies the depth cloud's organization and sensor pose, and
// its density flag reflects whether any unmeasured pixel was seen.
func FuseDepthAndColor(depth *Cloud[Intensity], img *Cloud[RGB], focal float64) (*Cloud[XYZRGBA], error) {
	if depth.Width != img.Width || depth.Height != img.Height {
		return nil, errors.Errorf("depth cloud is %dx%d but color cloud is %dx%d",
			depth.Width, depth.Height, img.Width, img.Height)
	}
	if len(depth.Points) != depth.Width*depth.Height {
		return nil, errors.Errorf("depth cloud has %d points but is organized as %dx%d",
			len(depth.Points), depth.Width, depth.Height)
	}
	if len(img.Points) != img.Width*img.Height {
		return nil, errors.Errorf("color cloud has %d points but is organized as %dx%d",
			len(img.Points), img.Width, img.Height)
	}

	out := NewCloud[XYZRGBA](depth.Width * depth.Height)
	invFocal := 1 / focal
	dense := true
	for v := 0; v < depth.Height; v++ {
		for u := 0; u < depth.Width; u++ {
			var pt XYZRGBA
			d := float64(depth.At(u, v).I)
			if d == 0 {
				pt.Position = InvalidPosition()
				dense = false
			} else {
				z := d * 0.001 // millimeters to meters
				pt.Position = r3.Vector{
					X: float64(u) * z * invFocal,
					Y: float64(v) * z * invFocal,
					Z: z,
				}
			}
			c := img.At(u, v)
			pt.R, pt.G, pt.B = c.R, c.G, c.B
			out.Points = append(out.Points, pt)
		}
	}
	out.Width = depth.Width
	out.Height = depth.Height
	out.Dense = dense
	out.Origin = depth.Origin
	out.Orientation = depth.Orientation
	return out, nil
}
