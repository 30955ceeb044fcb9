package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	appmiddleware "github.com/cisto/site/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central HTTP error handler. Expected
// errors (*echo.HTTPError) are answered as-is; anything else is logged with
// a stack trace and answered with a bare 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		log := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				log.Debug("Request rejected", "status", he.Code, "error", he.Internal)
			}
			e.DefaultHTTPErrorHandler(he, c)
			return
		}

		log.Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			slog.String("stack_trace", string(debug.Stack())),
		)
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError), c)
	}
}
