package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"crimedash/internal/engine"
	"crimedash/internal/models"
)

func testStore() *engine.Store {
	return &engine.Store{
		Years:    []int32{2018, 2019, 2019, 2020},
		TypeIDs:  []int32{0, 0, 1, 0},
		Lats:     []float64{41.8, 41.81, 41.82, 0},
		Lons:     []float64{-87.6, -87.61, -87.62, 0},
		HasCoord: []bool{true, true, true, false},
		TypeDict: []string{"THEFT", "BATTERY"},
		Columns:  []string{"ID", "Year", "Primary Type", "Latitude", "Longitude"},
		Extra: [][]string{
			{"1", "2018", "THEFT", "41.8", "-87.6"},
			{"2", "2019", "THEFT", "41.81", "-87.61"},
			{"3", "2019", "BATTERY", "41.82", "-87.62"},
			{"4", "2020", "THEFT", "", ""},
		},
	}
}

func testEcho(h *Handler) *echo.Echo {
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadingGate(t *testing.T) {
	h := NewHandler(nil, engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/dashboard")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before the dataset lands, got %d", rec.Code)
	}

	// SetStore flips the API live without a restart
	h.SetStore(testStore())
	rec = do(e, "/api/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after SetStore, got %d", rec.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/dashboard?from=2019&to=2019")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var view models.DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Summary.Rows != 2 {
		t.Errorf("expected 2 filtered rows, got %d", view.Summary.Rows)
	}
	if len(view.Yearly) != 1 || view.Yearly[0].Year != 2019 || view.Yearly[0].Count != 2 {
		t.Errorf("unexpected yearly counts: %v", view.Yearly)
	}
	if len(view.Geo) != 2 {
		t.Errorf("expected 2 geo points, got %d", len(view.Geo))
	}
	if len(view.TopTypes) != 2 {
		t.Errorf("expected top types on the unrestricted view, got %v", view.TopTypes)
	}
}

func TestGetDashboardDefaultsToFullRange(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/dashboard")
	var view models.DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Summary.Rows != 4 {
		t.Errorf("expected all 4 rows without params, got %d", view.Summary.Rows)
	}
	if view.Filter.YearMin != 2018 || view.Filter.YearMax != 2020 {
		t.Errorf("expected dataset bounds as defaults, got %+v", view.Filter)
	}
}

func TestBadParams(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	if rec := do(e, "/api/dashboard?from=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer from: expected 400, got %d", rec.Code)
	}
	if rec := do(e, "/api/dashboard?from=2020&to=2019"); rec.Code != http.StatusBadRequest {
		t.Errorf("inverted range: expected 400, got %d", rec.Code)
	}
}

func TestUnknownTypeYieldsEmptyViews(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/dashboard?type=ARSON")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown type is not an error, got %d", rec.Code)
	}

	var view models.DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Summary.Rows != 0 || len(view.Yearly) != 0 || len(view.Geo) != 0 {
		t.Errorf("expected empty views, got %+v", view)
	}
}

func TestGetMeta(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/meta")
	var meta models.Meta
	if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
		t.Fatal(err)
	}
	if meta.MinYear != 2018 || meta.MaxYear != 2020 || meta.Rows != 4 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if len(meta.Types) != 2 {
		t.Errorf("expected 2 types in the domain, got %v", meta.Types)
	}
}

func TestTrendAndTopEndpoints(t *testing.T) {
	h := NewHandler(testStore(), engine.ViewOptions{})
	e := testEcho(h)

	rec := do(e, "/api/trend?type=THEFT")
	var yearly []models.YearCount
	if err := json.Unmarshal(rec.Body.Bytes(), &yearly); err != nil {
		t.Fatal(err)
	}
	if len(yearly) != 3 {
		t.Errorf("expected 3 THEFT years, got %v", yearly)
	}

	rec = do(e, "/api/types/top")
	var top []models.TypeCount
	if err := json.Unmarshal(rec.Body.Bytes(), &top); err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].Type != "THEFT" || top[0].Count != 3 {
		t.Errorf("unexpected top types: %v", top)
	}
}

func TestNewServerHealth(t *testing.T) {
	h := NewHandler(nil, engine.ViewOptions{})
	e := NewServer(h, 0)

	rec := do(e, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("expected healthy server, got %d", rec.Code)
	}
}
