package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/config"
	"github.com/cisto/site/internal/server"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// setupIntegrationTest starts a full server on a random port.
func setupIntegrationTest(t *testing.T) (*server.Server, *httptest.Server) {
	t.Helper()

	cfg := config.FromEnv(func(key string) string {
		if key == "UI_RATE_LIMIT" {
			return "1000"
		}
		return ""
	})
	srv, err := server.New(server.Dependencies{
		Config:  cfg,
		Catalog: catalog.NewStore(catalog.MustDefault()),
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.E)
	t.Cleanup(func() {
		srv.Sessions.Shutdown()
		ts.Close()
		_ = srv.Bus.Close()
	})
	return srv, ts
}

type page struct {
	doc *html.Node
}

func parsePage(t *testing.T, r io.Reader) page {
	t.Helper()
	doc, err := html.Parse(r)
	require.NoError(t, err)
	return page{doc: doc}
}

func (p page) find(match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p.doc)
	return out
}

func (p page) byID(id string) *html.Node {
	found := p.find(func(n *html.Node) bool { return attr(n, "id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// readNav reads pushed frames until one satisfies want.
func readNav(t *testing.T, conn *websocket.Conn, want func(page) bool) page {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		p := parsePage(t, strings.NewReader(string(data)))
		if want(p) {
			return p
		}
	}
}

func navTheme(p page) string {
	if nav := p.byID("site-nav"); nav != nil {
		return attr(nav, "data-theme")
	}
	return ""
}

func TestLandingPage_EndToEnd(t *testing.T) {
	srv, ts := setupIntegrationTest(t)

	// Load at offset 0.
	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	p := parsePage(t, resp.Body)
	body := p.find(func(n *html.Node) bool { return n.Data == "body" })
	require.Len(t, body, 1)
	pageID := attr(body[0], "data-page-id")
	require.NotEmpty(t, pageID)

	assert.Equal(t, "transparent", navTheme(p))
	assert.True(t, hasAttr(p.byID("mobile-menu"), "hidden"))

	cta := p.find(func(n *html.Node) bool { return attr(n, "data-cta") == "hero" })
	require.Len(t, cta, 1)
	assert.Equal(t, "Pridobi ponudbo", textOf(cta[0]))

	services := p.find(func(n *html.Node) bool { return hasAttr(n, "data-service-id") })
	assert.Len(t, services, 4)
	reviews := p.find(func(n *html.Node) bool { return hasAttr(n, "data-review-id") })
	assert.Len(t, reviews, 3)

	// Scroll to 120 over the viewport socket.
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/page/" + pageID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "scroll", "offset": 120, "seq": 1}))
	readNav(t, conn, func(p page) bool { return navTheme(p) == "opaque" })

	// Tap the menu icon.
	resp, err = http.PostForm(ts.URL+"/ui/nav/"+pageID+"/menu", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	nav := parsePage(t, resp.Body)
	menu := nav.byID("mobile-menu")
	require.NotNil(t, menu)
	assert.False(t, hasAttr(menu, "hidden"))
	assert.Equal(t, "opaque", navTheme(nav), "menu and scroll state are independent")
	links := nav.find(func(n *html.Node) bool { return hasAttr(n, "data-section") })
	assert.Len(t, links, 4)

	// The same change is pushed to the socket.
	readNav(t, conn, func(p page) bool { return attr(p.byID("site-nav"), "data-menu-open") == "true" })

	// Tap "Cenik".
	resp, err = http.PostForm(ts.URL+"/ui/nav/"+pageID+"/select", url.Values{"anchor": {"cenik"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nav = parsePage(t, resp.Body)
	assert.True(t, hasAttr(nav.byID("mobile-menu"), "hidden"))

	// Leaving the page tears the session down.
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "pagehide")))
	require.Eventually(t, func() bool { return srv.Sessions.Len() == 0 }, 5*time.Second, 10*time.Millisecond)

	resp, err = http.Get(ts.URL + "/ui/nav/" + pageID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_AmbientRoutes(t *testing.T) {
	_, ts := setupIntegrationTest(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(ts.URL + "/static/js/site.js")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "IntersectionObserver")

	resp, err = http.Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "cisto_page_sessions_active 1")
	assert.Contains(t, string(body), "cisto_pages_rendered_total 1")
	assert.Contains(t, string(body), "cisto_http_requests_total")
}
