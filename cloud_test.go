package pointconv

import (
	"testing"

	"go.viam.com/test"
)

func TestCloudBasic(t *testing.T) {
	pc := NewCloud[RGB](4)
	test.That(t, pc.Size(), test.ShouldEqual, 0)
	test.That(t, pc.Organized(), test.ShouldBeFalse)
	test.That(t, pc.Dense, test.ShouldBeTrue)
	test.That(t, pc.Orientation.Real, test.ShouldEqual, 1.0)

	pc.Append(RGB{R: 1})
	pc.Append(RGB{G: 2})
	test.That(t, pc.Size(), test.ShouldEqual, 2)
	test.That(t, pc.Width, test.ShouldEqual, 2)
	test.That(t, pc.Height, test.ShouldEqual, 1)
}

func TestCloudOrganized(t *testing.T) {
	pc := NewOrganizedCloud[Intensity](3, 2)
	test.That(t, pc.Size(), test.ShouldEqual, 6)
	test.That(t, pc.Organized(), test.ShouldBeTrue)

	pc.SetAt(2, 1, Intensity{I: 0.5})
	test.That(t, pc.At(2, 1), test.ShouldResemble, Intensity{I: 0.5})
	test.That(t, pc.Points[5], test.ShouldResemble, Intensity{I: 0.5})
	test.That(t, pc.At(0, 0), test.ShouldResemble, Intensity{})
}
