package service_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/heft/internal/adapters/repository"
	service "github.com/okian/heft/internal/app"
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
	session "github.com/okian/heft/internal/session"
	"github.com/okian/heft/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func startService(ctx context.Context, opts ...service.Option) *service.Service {
	So(logger.Init(), ShouldBeNil)
	svc := service.New(opts...)
	So(svc.Start(ctx), ShouldBeNil)
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		ctx := context.Background()
		So(logger.Init(), ShouldBeNil)
		svc := service.New(service.WithMaxSessions(5))

		Convey("Start is idempotent", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["maxSessions"], ShouldEqual, 5)
		})

		Convey("Stop marks the service stopped", func() {
			So(svc.Start(ctx), ShouldBeNil)
			svc.Stop()
			So(svc.GetStats()["started"], ShouldBeFalse)
		})
	})
}

func TestServiceSessions(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startService(ctx)

		Convey("CreateSession returns a snapshot with defaults applied", func() {
			view, err := svc.CreateSession(ctx)
			So(err, ShouldBeNil)
			So(view.ID, ShouldNotBeEmpty)
			So(view.ScaleCm, ShouldAlmostEqual, 0.2)
			So(view.Breed, ShouldEqual, "other")
			So(view.Condition, ShouldEqual, "average")

			Convey("And the session is retrievable by id", func() {
				got, err := svc.Session(ctx, view.ID)
				So(err, ShouldBeNil)
				So(got.ID, ShouldEqual, view.ID)
			})

			Convey("And DeleteSession makes it unreachable", func() {
				svc.DeleteSession(ctx, view.ID)
				_, err := svc.Session(ctx, view.ID)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("Unknown session ids report not found on every operation", func() {
			_, err := svc.Session(ctx, "nope")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			_, err = svc.Measurements(ctx, "nope")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			_, _, err = svc.Drag(ctx, "nope", geom.Point{}, nil)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("The session cap is enforced", func() {
			capped := startService(ctx, service.WithMaxSessions(1))
			_, err := capped.CreateSession(ctx)
			So(err, ShouldBeNil)
			_, err = capped.CreateSession(ctx)
			So(errors.Is(err, repository.ErrStoreFull), ShouldBeTrue)
		})

		Convey("A configured default animal seeds new sessions", func() {
			seeded := startService(ctx, service.WithDefaultAnimal(estimate.Hereford, estimate.Good))
			view, err := seeded.CreateSession(ctx)
			So(err, ShouldBeNil)
			So(view.Breed, ShouldEqual, "hereford")
			So(view.Condition, ShouldEqual, "good")
		})
	})
}

func TestServiceMeasurementFlow(t *testing.T) {
	Convey("Given a session with a loaded image and viewport", t, func() {
		ctx := context.Background()
		svc := startService(ctx)
		view, err := svc.CreateSession(ctx)
		So(err, ShouldBeNil)
		id := view.ID

		_, err = svc.LoadImage(ctx, id, geom.Size{W: 1000, H: 800}, nil, nil)
		So(err, ShouldBeNil)
		So(svc.SetViewport(ctx, id, geom.Size{W: 1000, H: 800}), ShouldBeNil)

		Convey("Drag returns the grabbed role and fresh measurements", func() {
			role, m, err := svc.Drag(ctx, id, geom.Point{X: 505, Y: 528}, nil)
			So(err, ShouldBeNil)
			So(role, ShouldEqual, session.Belly)
			So(m.ScaleCm, ShouldAlmostEqual, 0.2)
			So(m.HeightCm, ShouldBeGreaterThan, 0)
		})

		Convey("Calibration toggling and reference length flow through", func() {
			snap, err := svc.SetCalibration(ctx, id, true, nil)
			So(err, ShouldBeNil)
			So(snap.Calibrating, ShouldBeTrue)

			ref := 100.0
			snap, err = svc.SetCalibration(ctx, id, true, &ref)
			So(err, ShouldBeNil)
			So(snap.ReferenceLengthCm, ShouldAlmostEqual, 100.0)
			// 100cm over the default 100px segment.
			So(snap.ScaleCm, ShouldAlmostEqual, 1.0)
		})

		Convey("SetAnimal updates the estimate", func() {
			est, err := svc.SetAnimal(ctx, id, estimate.Holstein, estimate.Thin)
			So(err, ShouldBeNil)
			So(est.Breed, ShouldEqual, "holstein")
			So(est.DressingPercentage, ShouldAlmostEqual, 0.51)
		})

		Convey("Estimate and Overlay read the same state", func() {
			est, err := svc.Estimate(ctx, id)
			So(err, ShouldBeNil)
			So(est.LiveWeightKg, ShouldBeGreaterThan, 0)

			o, err := svc.Overlay(ctx, id)
			So(err, ShouldBeNil)
			So(len(o.Markers), ShouldEqual, 6)
		})
	})
}

func TestServiceDetectorHints(t *testing.T) {
	Convey("Given detector landmarks", t, func() {
		ctx := context.Background()
		img := geom.Size{W: 1000, H: 800}
		hints := &placement.Hints{
			ShoulderTop:    geom.Point{X: 200, Y: 200},
			ShoulderBottom: geom.Point{X: 200, Y: 600},
			HipTop:         geom.Point{X: 800, Y: 240},
			HipBottom:      geom.Point{X: 800, Y: 560},
		}

		Convey("With hints enabled the layout follows the landmarks", func() {
			svc := startService(ctx, service.WithDetectorHints(true))
			view, err := svc.CreateSession(ctx)
			So(err, ShouldBeNil)

			view, err = svc.LoadImage(ctx, view.ID, img, hints, nil)
			So(err, ShouldBeNil)
			for _, p := range view.Points {
				if p.Role == "neck" {
					So(p.Image, ShouldResemble, geom.Point{X: 200, Y: 400})
				}
			}
		})

		Convey("With hints disabled the landmarks are ignored", func() {
			svc := startService(ctx, service.WithDetectorHints(false))
			view, err := svc.CreateSession(ctx)
			So(err, ShouldBeNil)

			view, err = svc.LoadImage(ctx, view.ID, img, hints, nil)
			So(err, ShouldBeNil)
			for _, p := range view.Points {
				if p.Role == "neck" {
					So(p.Image, ShouldResemble, geom.Point{X: 200, Y: 360})
				}
			}
		})

		Convey("A per-request override beats the service default", func() {
			svc := startService(ctx, service.WithDetectorHints(false))
			view, err := svc.CreateSession(ctx)
			So(err, ShouldBeNil)

			enable := true
			view, err = svc.LoadImage(ctx, view.ID, img, hints, &enable)
			So(err, ShouldBeNil)
			for _, p := range view.Points {
				if p.Role == "neck" {
					So(p.Image, ShouldResemble, geom.Point{X: 200, Y: 400})
				}
			}
		})
	})
}
