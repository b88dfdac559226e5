package pointconv

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func makeColorCloud(width, height int) *Cloud[XYZRGB] {
	pc := NewOrganizedCloud[XYZRGB](width, height)
	for i := range pc.Points {
		pc.Points[i] = XYZRGB{
			Position: r3.Vector{X: float64(i), Y: float64(i % width), Z: float64(i / width)},
			RGB:      RGB{R: uint8(i * 7 % 256), G: uint8(i * 31 % 256), B: uint8(i * 101 % 256)},
		}
	}
	pc.Origin = r3.Vector{X: 1, Y: 2, Z: 3}
	pc.Orientation = quat.Number{Real: 0.5, Imag: 0.5, Jmag: 0.5, Kmag: 0.5}
	return pc
}

func TestConvertCloudMetadata(t *testing.T) {
	in := makeColorCloud(4, 2)
	var out Cloud[XYZI]
	test.That(t, ConvertCloud(XYZRGBXYZI, in, &out), test.ShouldBeNil)

	test.That(t, out.Width, test.ShouldEqual, 4)
	test.That(t, out.Height, test.ShouldEqual, 2)
	test.That(t, out.Dense, test.ShouldBeTrue)
	test.That(t, out.Origin, test.ShouldResemble, in.Origin)
	test.That(t, out.Orientation, test.ShouldResemble, in.Orientation)
	test.That(t, out.Size(), test.ShouldEqual, 8)

	for i, p := range in.Points {
		test.That(t, out.Points[i], test.ShouldResemble, XYZRGBToXYZI(p))
	}
}

func TestConvertCloudIdentity(t *testing.T) {
	in := makeColorCloud(3, 3)
	var out Cloud[XYZRGB]
	test.That(t, ConvertCloud(Identity[XYZRGB](), in, &out), test.ShouldBeNil)
	test.That(t, out.Points, test.ShouldResemble, in.Points)
}

func TestConvertCloudReusesOutput(t *testing.T) {
	in := makeColorCloud(4, 2)
	out := NewOrganizedCloud[XYZHSV](10, 10)
	test.That(t, ConvertCloud(XYZRGBXYZHSV, in, out), test.ShouldBeNil)
	test.That(t, out.Size(), test.ShouldEqual, 8)
	test.That(t, out.Width, test.ShouldEqual, 4)
	test.That(t, out.Height, test.ShouldEqual, 2)
}

func TestConvertCloudSizeMismatch(t *testing.T) {
	in := makeColorCloud(4, 2)
	in.Points = in.Points[:5]
	var out Cloud[XYZI]
	err := ConvertCloud(XYZRGBXYZI, in, &out)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "organized as 4x2")
}

func TestConvertCloudInBatches(t *testing.T) {
	logger := golog.NewTestLogger(t)
	in := makeColorCloud(10, 3)

	var serial, parallel Cloud[XYZHSV]
	test.That(t, ConvertCloud(XYZRGBXYZHSV, in, &serial), test.ShouldBeNil)
	for _, numBatches := range []int{0, 1, 3, 8, 64} {
		test.That(t, ConvertCloudInBatches(logger, numBatches, XYZRGBXYZHSV, in, &parallel), test.ShouldBeNil)
		test.That(t, parallel.Points, test.ShouldResemble, serial.Points)
		test.That(t, parallel.Width, test.ShouldEqual, serial.Width)
		test.That(t, parallel.Height, test.ShouldEqual, serial.Height)
	}

	in.Points = in.Points[:7]
	err := ConvertCloudInBatches(logger, 4, XYZRGBXYZHSV, in, &parallel)
	test.That(t, err, test.ShouldNotBeNil)
}
