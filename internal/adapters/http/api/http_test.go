package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/gravelgod/agf/internal/adapters/repository"
	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/types"
	"github.com/gravelgod/agf/internal/intake"
)

// stubDeps implements Dependencies with canned responses.
type stubDeps struct {
	derived  *model.DerivedParameters
	problems []string
	err      error
	athletes []string
}

func (s *stubDeps) Submit(ctx context.Context, f *intake.Form) (*model.DerivedParameters, []string, error) {
	return s.derived, s.problems, s.err
}

func (s *stubDeps) DerivedFor(ctx context.Context, athleteID string) (*model.DerivedParameters, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.derived, nil
}

func (s *stubDeps) Athletes(ctx context.Context) ([]string, error) {
	return s.athletes, s.err
}

type stubStats map[string]interface{}

func (s stubStats) GetStats() map[string]interface{} { return s }

func newMux(deps Dependencies, stats StatsProvider) *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(deps, stats).Register(context.Background(), mux)
	return mux
}

func TestHandlePostIntake(t *testing.T) {
	convey.Convey("Given the intake endpoint", t, func() {
		derived := &model.DerivedParameters{
			AthleteID: "jo-rider",
			Tier:      types.TierCompete,
			RiskLevel: types.RiskLow,
			PlanWeeks: 12,
		}

		convey.Convey("A valid submission returns 201 with the summary", func() {
			mux := newMux(&stubDeps{derived: derived}, stubStats{})
			req := httptest.NewRequest("POST", "/intake", strings.NewReader(`{"name":"Jo Rider"}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
			var resp intakeResponse
			convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
			convey.So(resp.Status, convey.ShouldEqual, "accepted")
			convey.So(resp.AthleteID, convey.ShouldEqual, "jo-rider")
			convey.So(resp.Tier, convey.ShouldEqual, "compete")
			convey.So(resp.PlanWeeks, convey.ShouldEqual, 12)
		})

		convey.Convey("A validation failure returns 400 with the problems", func() {
			deps := &stubDeps{problems: []string{"Missing required field: name"}, err: intake.ErrInvalid}
			mux := newMux(deps, stubStats{})
			req := httptest.NewRequest("POST", "/intake", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			var resp intakeResponse
			convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
			convey.So(resp.Status, convey.ShouldEqual, "rejected")
			convey.So(resp.Problems, convey.ShouldResemble, []string{"Missing required field: name"})
		})

		convey.Convey("A rate limited submission returns 429", func() {
			mux := newMux(&stubDeps{err: intake.ErrRateLimited}, stubStats{})
			req := httptest.NewRequest("POST", "/intake", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusTooManyRequests)
		})

		convey.Convey("A broken body returns 400 with an error payload", func() {
			mux := newMux(&stubDeps{}, stubStats{})
			req := httptest.NewRequest("POST", "/intake", strings.NewReader(`{not json`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			var resp errorResponse
			convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
			convey.So(resp.Code, convey.ShouldEqual, "bad_request")
		})

		convey.Convey("GET is not a valid method", func() {
			mux := newMux(&stubDeps{}, stubStats{})
			req := httptest.NewRequest("GET", "/intake", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleAthletes(t *testing.T) {
	convey.Convey("Given the athletes endpoints", t, func() {
		derived := &model.DerivedParameters{AthleteID: "jo-rider", Tier: types.TierCompete}

		convey.Convey("Listing returns the ids wrapper", func() {
			mux := newMux(&stubDeps{athletes: []string{"anna", "jo-rider"}}, stubStats{})
			req := httptest.NewRequest("GET", "/athletes", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"athletes"`)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "jo-rider")
		})

		convey.Convey("An empty store still returns an array", func() {
			mux := newMux(&stubDeps{}, stubStats{})
			req := httptest.NewRequest("GET", "/athletes", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"athletes":[]`)
		})

		convey.Convey("Fetching derived parameters returns the full record", func() {
			mux := newMux(&stubDeps{derived: derived}, stubStats{})
			req := httptest.NewRequest("GET", "/athletes/jo-rider/derived", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var resp model.DerivedParameters
			convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
			convey.So(resp.AthleteID, convey.ShouldEqual, "jo-rider")
			convey.So(resp.Tier, convey.ShouldEqual, types.TierCompete)
		})

		convey.Convey("An unknown athlete returns 404", func() {
			mux := newMux(&stubDeps{err: repository.ErrNotFound}, stubStats{})
			req := httptest.NewRequest("GET", "/athletes/nobody/derived", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
		})

		convey.Convey("A malformed subpath returns 400", func() {
			mux := newMux(&stubDeps{derived: derived}, stubStats{})
			req := httptest.NewRequest("GET", "/athletes/jo-rider/unknown", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHandleStats(t *testing.T) {
	convey.Convey("Given the stats endpoint", t, func() {
		mux := newMux(&stubDeps{}, stubStats{"athletes": 3, "default_plan_weeks": 12})
		req := httptest.NewRequest("GET", "/stats", http.NoBody)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
		convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/json; charset=utf-8")

		var stats map[string]interface{}
		convey.So(json.Unmarshal(w.Body.Bytes(), &stats), convey.ShouldBeNil)
		convey.So(stats["athletes"], convey.ShouldEqual, float64(3))
	})
}

func TestHealthz(t *testing.T) {
	convey.Convey("Given the health endpoint", t, func() {
		mux := newMux(&stubDeps{}, stubStats{})
		req := httptest.NewRequest("GET", "/healthz", http.NoBody)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		convey.Convey("Then a metrics scrape doubles as the liveness signal", func() {
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "agf_engine")
		})
	})
}
