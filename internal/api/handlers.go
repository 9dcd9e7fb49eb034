package api

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"crimedash/internal/engine"
	"crimedash/internal/models"
)

// Handler serves the dashboard views. It starts with a nil store so
// the API is live immediately; requests get 503 until the background
// load flips the store in via SetStore.
type Handler struct {
	mu    sync.RWMutex
	store *engine.Store
	opts  engine.ViewOptions
}

func NewHandler(store *engine.Store, opts engine.ViewOptions) *Handler {
	return &Handler{store: store, opts: opts}
}

// SetStore swaps in a freshly loaded dataset.
func (h *Handler) SetStore(s *engine.Store) {
	h.mu.Lock()
	h.store = s
	h.mu.Unlock()
}

func (h *Handler) getStore() *engine.Store {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.store
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/meta", h.GetMeta)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/summary", h.GetSummary)
	api.GET("/trend", h.GetTrend)
	api.GET("/map", h.GetMap)
	api.GET("/types/top", h.GetTopTypes)
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// filterParams parses from/to/type query params against the dataset
// bounds. Missing params default to the full range and "All".
func filterParams(c echo.Context, s *engine.Store) (models.FilterState, error) {
	f := models.FilterState{
		YearMin: s.MinYear(),
		YearMax: s.MaxYear(),
		Type:    c.QueryParam("type"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "from must be an integer")
		}
		f.YearMin = v
	}
	if raw := c.QueryParam("to"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "to must be an integer")
		}
		f.YearMax = v
	}
	if f.YearMin > f.YearMax {
		return f, echo.NewHTTPError(http.StatusBadRequest, "from must not exceed to")
	}
	return f, nil
}

// withView runs fn against the current store and filter state, or
// reports loading when no dataset is in yet.
func (h *Handler) withView(c echo.Context, fn func(s *engine.Store, f models.FilterState) error) error {
	s := h.getStore()
	if s == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	f, err := filterParams(c, s)
	if err != nil {
		return err
	}
	return fn(s, f)
}

func (h *Handler) GetMeta(c echo.Context) error {
	s := h.getStore()
	if s == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, engine.Metadata(s))
}

func (h *Handler) GetDashboard(c echo.Context) error {
	return h.withView(c, func(s *engine.Store, f models.FilterState) error {
		return c.JSON(http.StatusOK, engine.Render(s, f, h.opts))
	})
}

func (h *Handler) GetSummary(c echo.Context) error {
	return h.withView(c, func(s *engine.Store, f models.FilterState) error {
		idx := engine.Filter(s, f)
		return c.JSON(http.StatusOK, engine.Summarize(s, idx))
	})
}

func (h *Handler) GetTrend(c echo.Context) error {
	return h.withView(c, func(s *engine.Store, f models.FilterState) error {
		idx := engine.Filter(s, f)
		return c.JSON(http.StatusOK, engine.YearlyCounts(s, idx))
	})
}

func (h *Handler) GetMap(c echo.Context) error {
	return h.withView(c, func(s *engine.Store, f models.FilterState) error {
		opts := h.opts
		idx := engine.Filter(s, f)
		cap, seed := opts.GeoCap, opts.GeoSeed
		if cap == 0 {
			cap = engine.DefaultGeoCap
		}
		if seed == 0 {
			seed = engine.DefaultGeoSeed
		}
		return c.JSON(http.StatusOK, engine.GeoSample(s, idx, cap, seed))
	})
}

func (h *Handler) GetTopTypes(c echo.Context) error {
	return h.withView(c, func(s *engine.Store, f models.FilterState) error {
		k := h.opts.TopK
		if k == 0 {
			k = engine.DefaultTopK
		}
		idx := engine.Filter(s, f)
		return c.JSON(http.StatusOK, engine.TopTypes(s, idx, k))
	})
}
