package session_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
	session "github.com/okian/heft/internal/session"
	. "github.com/smartystreets/goconvey/convey"
)

// newTestSession returns a session with a 1000x800 image shown 1:1, so screen
// coordinates equal image coordinates and drag targets are easy to reason
// about.
func newTestSession() *session.Session {
	s := session.New(session.WithID("test-session"))
	So(s.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
	So(s.SetViewport(geom.Size{W: 1000, H: 800}), ShouldBeNil)
	return s
}

func TestNew(t *testing.T) {
	Convey("Given a fresh session", t, func() {
		s := session.New()

		Convey("It has a generated id and default calibration", func() {
			So(s.ID(), ShouldNotBeEmpty)
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 0.2)
		})

		Convey("No measurement reads before an image is loaded", func() {
			m := s.Measurements()
			So(m.HeightCm, ShouldEqual, 0.0)
			So(m.LengthCm, ShouldEqual, 0.0)
			So(m.GirthCm, ShouldEqual, 0.0)
		})

		Convey("Options override the id, hit radius, and animal", func() {
			s2 := session.New(
				session.WithID("fixed"),
				session.WithHitRadius(50),
				session.WithAnimal(estimate.Angus, estimate.Good),
			)
			So(s2.ID(), ShouldEqual, "fixed")
			est := s2.Estimate()
			So(est.Breed, ShouldEqual, "angus")
			So(est.Condition, ShouldEqual, "good")
		})
	})
}

func TestLoadImage(t *testing.T) {
	Convey("Given a session", t, func() {
		s := session.New()

		Convey("Loading a valid image places the six measurement points", func() {
			So(s.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
			view := s.Snapshot()
			placed := map[string]bool{}
			for _, p := range view.Points {
				placed[p.Role] = p.Placed
			}
			for _, role := range []string{"belly", "spine", "neck", "rear", "girth_left", "girth_right"} {
				So(placed[role], ShouldBeTrue)
			}
			So(placed["calibration_start"], ShouldBeFalse)
			So(placed["calibration_end"], ShouldBeFalse)
		})

		Convey("Detector hints position the points from the landmarks", func() {
			hints := &placement.Hints{
				ShoulderTop:    geom.Point{X: 200, Y: 200},
				ShoulderBottom: geom.Point{X: 200, Y: 600},
				HipTop:         geom.Point{X: 800, Y: 240},
				HipBottom:      geom.Point{X: 800, Y: 560},
			}
			So(s.LoadImage(geom.Size{W: 1000, H: 800}, hints), ShouldBeNil)
			view := s.Snapshot()
			for _, p := range view.Points {
				if p.Role == "neck" {
					So(p.Image, ShouldResemble, geom.Point{X: 200, Y: 400})
				}
				if p.Role == "rear" {
					So(p.Image, ShouldResemble, geom.Point{X: 800, Y: 400})
				}
			}
		})

		Convey("An invalid image size is rejected", func() {
			err := s.LoadImage(geom.Size{W: 0, H: 800}, nil)
			So(errors.Is(err, geom.ErrInvalidGeometry), ShouldBeTrue)
		})

		Convey("Loading a new image discards moved points", func() {
			So(s.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
			So(s.SetViewport(geom.Size{W: 1000, H: 800}), ShouldBeNil)
			grab := session.Belly
			_, err := s.Drag(geom.Point{X: 111, Y: 222}, &grab)
			So(err, ShouldBeNil)

			So(s.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
			view := s.Snapshot()
			for _, p := range view.Points {
				if p.Role == "belly" {
					So(p.Image, ShouldResemble, geom.Point{X: 500, Y: 520})
				}
			}
		})
	})
}

func TestDrag(t *testing.T) {
	Convey("Given a session with an image shown 1:1", t, func() {
		s := newTestSession()

		Convey("A touch near a point grabs and moves it", func() {
			// Belly starts at (500, 520); touch 10px away.
			role, err := s.Drag(geom.Point{X: 505, Y: 528}, nil)
			So(err, ShouldBeNil)
			So(role, ShouldEqual, session.Belly)
		})

		Convey("A touch far from every point hits nothing", func() {
			_, err := s.Drag(geom.Point{X: 10, Y: 10}, nil)
			So(errors.Is(err, session.ErrNoPointHit), ShouldBeTrue)
		})

		Convey("A touch exactly at the hit radius misses", func() {
			// 30px straight up from the belly point.
			_, err := s.Drag(geom.Point{X: 500, Y: 490}, nil)
			So(errors.Is(err, session.ErrNoPointHit), ShouldBeTrue)
		})

		Convey("A grabbed role stays attached beyond the hit radius", func() {
			grab := session.Rear
			role, err := s.Drag(geom.Point{X: 50, Y: 50}, &grab)
			So(err, ShouldBeNil)
			So(role, ShouldEqual, session.Rear)
			view := s.Snapshot()
			for _, p := range view.Points {
				if p.Role == "rear" {
					So(p.Image, ShouldResemble, geom.Point{X: 50, Y: 50})
				}
			}
		})

		Convey("An out-of-range grab role is rejected", func() {
			grab := session.Role(99)
			_, err := s.Drag(geom.Point{X: 500, Y: 400}, &grab)
			So(errors.Is(err, session.ErrUnknownRole), ShouldBeTrue)
		})

		Convey("Calibration points are not grabbable outside calibration mode", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			So(s.SetCalibrating(false), ShouldBeNil)
			// The default segment start sits at (450, 640); nothing else is near.
			_, err := s.Drag(geom.Point{X: 450, Y: 640}, nil)
			So(errors.Is(err, session.ErrNoPointHit), ShouldBeTrue)
		})

		Convey("Without a viewport the drag is rejected", func() {
			bare := session.New()
			So(bare.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
			_, err := bare.Drag(geom.Point{X: 500, Y: 400}, nil)
			So(errors.Is(err, geom.ErrInvalidGeometry), ShouldBeTrue)
		})
	})
}

func TestCalibration(t *testing.T) {
	Convey("Given a session with an image shown 1:1", t, func() {
		s := newTestSession()

		Convey("Calibration mode requires an image", func() {
			bare := session.New()
			So(errors.Is(bare.SetCalibrating(true), session.ErrNoImage), ShouldBeTrue)
		})

		Convey("Entering calibration mode places the default segment", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			view := s.Snapshot()
			So(view.Calibrating, ShouldBeTrue)
			for _, p := range view.Points {
				if p.Role == "calibration_start" {
					So(p.Placed, ShouldBeTrue)
					So(p.Image, ShouldResemble, geom.Point{X: 450, Y: 640})
				}
				if p.Role == "calibration_end" {
					So(p.Placed, ShouldBeTrue)
					So(p.Image, ShouldResemble, geom.Point{X: 550, Y: 640})
				}
			}
		})

		Convey("Placing the default segment does not change the scale", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 0.2)
		})

		Convey("Dragging an endpoint recomputes the scale immediately", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			grab := session.CalibrationEnd
			_, err := s.Drag(geom.Point{X: 650, Y: 640}, &grab)
			So(err, ShouldBeNil)
			// Segment is now 200px for the default 50cm reference.
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 0.25)
		})

		Convey("Changing the reference length rescales from the same segment", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			got := s.SetReferenceLength(100)
			So(got, ShouldAlmostEqual, 100.0)
			// 100cm over the default 100px segment.
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 1.0)
		})

		Convey("The reference length clamps to the supported range", func() {
			So(s.SetReferenceLength(1), ShouldAlmostEqual, 10.0)
			So(s.SetReferenceLength(999), ShouldAlmostEqual, 200.0)
		})

		Convey("Leaving calibration mode keeps the last computed scale", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			grab := session.CalibrationEnd
			_, err := s.Drag(geom.Point{X: 650, Y: 640}, &grab)
			So(err, ShouldBeNil)
			So(s.SetCalibrating(false), ShouldBeNil)
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 0.25)
		})

		Convey("The scale survives an image swap", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			grab := session.CalibrationEnd
			_, err := s.Drag(geom.Point{X: 650, Y: 640}, &grab)
			So(err, ShouldBeNil)
			So(s.LoadImage(geom.Size{W: 640, H: 480}, nil), ShouldBeNil)
			So(s.Measurements().ScaleCm, ShouldAlmostEqual, 0.25)
		})
	})
}

func TestMeasurementsEndToEnd(t *testing.T) {
	Convey("Given points dragged to known positions at the default scale", t, func() {
		s := newTestSession()
		targets := map[session.Role]geom.Point{
			session.Spine:      {X: 500, Y: 100},
			session.Belly:      {X: 500, Y: 500},
			session.Neck:       {X: 200, Y: 300},
			session.Rear:       {X: 800, Y: 300},
			session.GirthLeft:  {X: 300, Y: 300},
			session.GirthRight: {X: 700, Y: 300},
		}
		for role, target := range targets {
			grab := role
			_, err := s.Drag(target, &grab)
			So(err, ShouldBeNil)
		}

		Convey("The derived measurements match the geometry", func() {
			m := s.Measurements()
			So(m.HeightCm, ShouldAlmostEqual, 80.0)
			So(m.LengthCm, ShouldAlmostEqual, 120.0)
			// Circular chest: both semi-axes 40cm.
			So(m.GirthCm, ShouldAlmostEqual, math.Pi*80*1.08, 1e-9)
		})

		Convey("The estimate combines measurements and the animal selection", func() {
			s.SetAnimal(estimate.Angus, estimate.Excellent)
			est := s.Estimate()
			So(est.LiveWeightKg, ShouldBeGreaterThan, 0)
			So(est.DressingPercentage, ShouldAlmostEqual, 0.64)
			So(est.MeatYieldKg, ShouldAlmostEqual, est.LiveWeightKg*0.64, 1e-9)
			So(est.Breed, ShouldEqual, "angus")
			So(est.Condition, ShouldEqual, "excellent")
		})
	})
}

func TestOverlay(t *testing.T) {
	Convey("Given a session with all measurement points placed", t, func() {
		s := newTestSession()

		Convey("The overlay carries markers, lines, and the girth ellipse", func() {
			o, err := s.Overlay()
			So(err, ShouldBeNil)
			So(len(o.Markers), ShouldEqual, 6)
			So(len(o.Lines), ShouldEqual, 2)
			So(o.Ellipse, ShouldNotBeNil)
			So(o.Calibration, ShouldBeNil)
		})

		Convey("Calibration mode adds the reference segment", func() {
			So(s.SetCalibrating(true), ShouldBeNil)
			o, err := s.Overlay()
			So(err, ShouldBeNil)
			So(len(o.Markers), ShouldEqual, 8)
			So(o.Calibration, ShouldNotBeNil)
			So(o.Calibration.From, ShouldResemble, geom.Point{X: 450, Y: 640})
			So(o.Calibration.To, ShouldResemble, geom.Point{X: 550, Y: 640})
		})

		Convey("A letterboxed viewport scales the overlay", func() {
			So(s.SetViewport(geom.Size{W: 500, H: 500}), ShouldBeNil)
			o, err := s.Overlay()
			So(err, ShouldBeNil)
			// Display scale is 0.5 with a 50px letterbox above.
			So(o.Ellipse.SemiAxisX, ShouldAlmostEqual, 100.0)
			for _, mk := range o.Markers {
				if mk.Role == "belly" {
					So(mk.Screen.X, ShouldAlmostEqual, 250.0)
					So(mk.Screen.Y, ShouldAlmostEqual, 310.0)
				}
			}
		})

		Convey("Without a viewport the overlay is unavailable", func() {
			bare := session.New()
			So(bare.LoadImage(geom.Size{W: 1000, H: 800}, nil), ShouldBeNil)
			_, err := bare.Overlay()
			So(errors.Is(err, geom.ErrInvalidGeometry), ShouldBeTrue)
		})
	})
}

func TestParseRole(t *testing.T) {
	Convey("Given role names on the wire", t, func() {
		Convey("Every role round-trips through its name", func() {
			names := []string{"belly", "spine", "neck", "rear", "girth_left", "girth_right", "calibration_start", "calibration_end"}
			for _, name := range names {
				r, err := session.ParseRole(name)
				So(err, ShouldBeNil)
				So(r.String(), ShouldEqual, name)
			}
		})

		Convey("Unknown names are rejected", func() {
			_, err := session.ParseRole("tail")
			So(errors.Is(err, session.ErrUnknownRole), ShouldBeTrue)
		})
	})
}
