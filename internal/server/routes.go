package server

import (
	"net/http"

	"github.com/cisto/site/web"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the routes that belong to no module.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET("/metrics", s.Metrics.Handler())
}
