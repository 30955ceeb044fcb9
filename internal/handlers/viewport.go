package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cisto/site/internal/middleware"
	"github.com/cisto/site/internal/navbar"
	"github.com/cisto/site/internal/pubsub"
	"github.com/cisto/site/internal/session"
	"github.com/cisto/site/web/src/templates/components"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 10 * time.Second

// PageExitReason is the close reason the page sends when it is unloaded.
const PageExitReason = "pagehide"

// Viewport upgrades to a WebSocket for one page session. Scroll offsets
// read from the socket are published to the session's scroll topic; every
// navigation state change is pushed back as a rendered nav fragment.
//
// The session ends with the socket only when the page says it is leaving.
// A dropped connection releases the session, which then lives until the
// idle TTL so the page can reconnect and its taps keep working.
func (h *PageHandler) Viewport(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Attach(s); err != nil {
		return fmt.Errorf("attach scroll observer: %w", err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "page_id", s.ID, "error", err)
		return err
	}

	log := middleware.FromContext(c.Request().Context()).With("page_id", s.ID)
	log.Info("Viewport connected")

	s.Hold()
	defer s.Release()

	ctx, cancel := context.WithCancel(c.Request().Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.pushNav(ctx, conn, s, log)
	}()

	err = h.readViewport(ctx, conn, s)
	cancel()
	<-done

	switch {
	case leftPage(err):
		h.sessions.Close(s.ID, session.ReasonDisconnect)
		log.Info("Viewport closed by client")
	case errors.Is(err, context.Canceled):
		log.Info("Viewport closed by server")
	default:
		s.Touch(time.Now())
		log.Warn("Viewport dropped, keeping page session", "error", err)
	}
	conn.Close(websocket.StatusNormalClosure, "")
	return nil
}

// leftPage reports whether the socket was closed because the page unloaded.
func leftPage(err error) bool {
	var ce websocket.CloseError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Code == websocket.StatusGoingAway ||
		(ce.Code == websocket.StatusNormalClosure && ce.Reason == PageExitReason)
}

// readViewport forwards scroll frames to the bus until the socket fails.
func (h *PageHandler) readViewport(ctx context.Context, conn *websocket.Conn, s *session.Session) error {
	topic := navbar.ScrollTopic(s.ID)
	for {
		var msg ViewportMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return err
		}
		s.Touch(time.Now())

		if msg.Type != MessageTypeScroll {
			slog.Debug("Ignoring viewport message", "page_id", s.ID, "type", msg.Type)
			continue
		}
		ev := navbar.ScrollEvent{Offset: msg.Offset, Seq: msg.Seq}
		if err := pubsub.Publish(ctx, h.bus, topic, s.ID, ev); err != nil {
			return err
		}
		h.metrics.NavEvent("scroll")
	}
}

// pushNav writes the nav fragment whenever the session's state changes. It
// closes the socket when the session is torn down from elsewhere.
func (h *PageHandler) pushNav(ctx context.Context, conn *websocket.Conn, s *session.Session, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.Done():
			conn.Close(websocket.StatusGoingAway, "page session closed")
			return
		case nav := <-s.Nav.Changes():
			frame, err := h.renderer.RenderComponent(ctx, components.Navbar(h.catalog.Site(), s.ID, nav))
			if err != nil {
				log.Error("Failed to render nav fragment", "error", err)
				continue
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err = conn.Write(wctx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				log.Warn("WebSocket write error", "error", err)
				conn.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}
