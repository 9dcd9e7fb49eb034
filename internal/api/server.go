package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewServer builds the echo instance with the dashboard's middleware
// stack and routes. rateRPS caps requests per second per client IP;
// zero disables the limiter (tests).
func NewServer(h *Handler, rateRPS float64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if rateRPS > 0 {
		e.Use(middleware.RateLimiter(
			middleware.NewRateLimiterMemoryStore(rate.Limit(rateRPS)),
		))
	}

	h.RegisterRoutes(e)
	return e
}
