package geom_test

import (
	"errors"
	"testing"

	geom "github.com/okian/heft/internal/domain/geom"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPoint(t *testing.T) {
	Convey("Given two points", t, func() {
		a := geom.Point{X: 0, Y: 0}
		b := geom.Point{X: 3, Y: 4}

		Convey("Dist returns the Euclidean distance", func() {
			So(a.Dist(b), ShouldEqual, 5.0)
			So(b.Dist(a), ShouldEqual, 5.0)
			So(a.Dist(a), ShouldEqual, 0.0)
		})

		Convey("Lerp interpolates between them", func() {
			So(geom.Lerp(a, b, 0), ShouldResemble, a)
			So(geom.Lerp(a, b, 1), ShouldResemble, b)
			mid := geom.Lerp(a, b, 0.5)
			So(mid.X, ShouldAlmostEqual, 1.5)
			So(mid.Y, ShouldAlmostEqual, 2.0)
		})

		Convey("Midpoint matches Lerp at one half", func() {
			So(geom.Midpoint(a, b), ShouldResemble, geom.Lerp(a, b, 0.5))
		})
	})
}

func TestSize(t *testing.T) {
	Convey("Given image sizes", t, func() {
		Convey("Valid requires both dimensions positive", func() {
			So(geom.Size{W: 100, H: 50}.Valid(), ShouldBeTrue)
			So(geom.Size{W: 0, H: 50}.Valid(), ShouldBeFalse)
			So(geom.Size{W: 100, H: 0}.Valid(), ShouldBeFalse)
			So(geom.Size{W: -10, H: 50}.Valid(), ShouldBeFalse)
		})

		Convey("Center is half of each dimension", func() {
			c := geom.Size{W: 100, H: 60}.Center()
			So(c.X, ShouldAlmostEqual, 50.0)
			So(c.Y, ShouldAlmostEqual, 30.0)
		})
	})
}

func TestMapper(t *testing.T) {
	Convey("Given a 1000x800 image shown in a 500x500 viewport", t, func() {
		img := geom.Size{W: 1000, H: 800}
		view := geom.Size{W: 500, H: 500}
		m, err := geom.NewMapper(img, view)
		So(err, ShouldBeNil)

		Convey("The contain scale is the smaller axis ratio", func() {
			So(m.Scale(), ShouldAlmostEqual, 0.5)
		})

		Convey("The image is centered on the unused axis", func() {
			// 800px tall image at scale 0.5 occupies 400 of 500, so 50 above.
			top := m.ToScreen(geom.Point{X: 0, Y: 0})
			So(top.X, ShouldAlmostEqual, 0.0)
			So(top.Y, ShouldAlmostEqual, 50.0)
		})

		Convey("ToScreen and ToImage are exact inverses", func() {
			pts := []geom.Point{
				{X: 0, Y: 0},
				{X: 1000, Y: 800},
				{X: 123.4, Y: 567.8},
				{X: 999.99, Y: 0.01},
			}
			for _, p := range pts {
				back := m.ToImage(m.ToScreen(p))
				So(back.X, ShouldAlmostEqual, p.X, 1e-6)
				So(back.Y, ShouldAlmostEqual, p.Y, 1e-6)
			}
		})
	})

	Convey("Given a degenerate geometry", t, func() {
		Convey("A zero-sized image is rejected", func() {
			_, err := geom.NewMapper(geom.Size{}, geom.Size{W: 500, H: 500})
			So(errors.Is(err, geom.ErrInvalidGeometry), ShouldBeTrue)
		})

		Convey("A zero-sized viewport is rejected", func() {
			_, err := geom.NewMapper(geom.Size{W: 100, H: 100}, geom.Size{})
			So(errors.Is(err, geom.ErrInvalidGeometry), ShouldBeTrue)
		})
	})
}
