package pipeline

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubDeriver records which athletes were processed and fails on demand.
type stubDeriver struct {
	mu     sync.Mutex
	seen   []string
	failOn map[string]bool
}

func (s *stubDeriver) Rederive(ctx context.Context, athleteID string) (*model.DerivedParameters, error) {
	s.mu.Lock()
	s.seen = append(s.seen, athleteID)
	s.mu.Unlock()
	if s.failOn[athleteID] {
		return nil, errors.New("broken profile")
	}
	return &model.DerivedParameters{AthleteID: athleteID}, nil
}

func TestQueue(t *testing.T) {
	convey.Convey("Given a bounded in-memory queue", t, func() {
		ctx := context.Background()

		convey.Convey("Enqueue fills up to capacity and then refuses", func() {
			q := NewInMemoryQueue(WithCapacity(2))
			convey.So(q.Enqueue(ctx, Job{AthleteID: "a"}), convey.ShouldBeTrue)
			convey.So(q.Enqueue(ctx, Job{AthleteID: "b"}), convey.ShouldBeTrue)
			convey.So(q.Enqueue(ctx, Job{AthleteID: "c"}), convey.ShouldBeFalse)
			convey.So(q.Len(ctx), convey.ShouldEqual, 2)
		})

		convey.Convey("A closed queue refuses new jobs but drains the backlog", func() {
			q := NewInMemoryQueue(WithCapacity(4))
			convey.So(q.Enqueue(ctx, Job{AthleteID: "a"}), convey.ShouldBeTrue)
			convey.So(q.Close(), convey.ShouldBeNil)
			convey.So(q.IsClosed(), convey.ShouldBeTrue)
			convey.So(q.Enqueue(ctx, Job{AthleteID: "b"}), convey.ShouldBeFalse)

			var drained []string
			for j := range q.Dequeue(ctx) {
				drained = append(drained, j.AthleteID)
			}
			convey.So(drained, convey.ShouldResemble, []string{"a"})
		})

		convey.Convey("Closing twice is a no-op", func() {
			q := NewInMemoryQueue()
			convey.So(q.Close(), convey.ShouldBeNil)
			convey.So(q.Close(), convey.ShouldBeNil)
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Given a worker pool over a batch of athletes", t, func() {
		ctx := context.Background()
		ids := []string{"anna", "jo-rider", "mike", "zed"}

		convey.Convey("When every derivation succeeds", func() {
			d := &stubDeriver{}
			q := NewInMemoryQueue(WithCapacity(len(ids)))
			p := NewPool(3, q, d)

			convey.So(p.Submit(ctx, ids), convey.ShouldEqual, 4)
			done, failed := p.Run(ctx)

			convey.So(done, convey.ShouldEqual, 4)
			convey.So(failed, convey.ShouldEqual, 0)
			convey.So(d.seen, convey.ShouldHaveLength, 4)
		})

		convey.Convey("When one athlete fails the rest still complete", func() {
			d := &stubDeriver{failOn: map[string]bool{"mike": true}}
			q := NewInMemoryQueue(WithCapacity(len(ids)))
			p := NewPool(2, q, d)

			p.Submit(ctx, ids)
			done, failed := p.Run(ctx)

			convey.So(done, convey.ShouldEqual, 3)
			convey.So(failed, convey.ShouldEqual, 1)
		})

		convey.Convey("A non-positive worker count falls back to the CPU count", func() {
			d := &stubDeriver{}
			q := NewInMemoryQueue(WithCapacity(len(ids)))
			p := NewPool(0, q, d)

			p.Submit(ctx, ids)
			done, failed := p.Run(ctx)

			convey.So(done, convey.ShouldEqual, 4)
			convey.So(failed, convey.ShouldEqual, 0)
		})
	})
}
