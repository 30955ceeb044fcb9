package view

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestReveal(t *testing.T) {
	assert.Equal(t,
		`<div data-reveal="rise" style="--reveal-delay: 300ms"></div>`,
		render(t, h.Div(Reveal(Rise, 3))))

	assert.Equal(t,
		`<div data-reveal="zoom" style="--reveal-delay: 0ms"></div>`,
		render(t, h.Div(Reveal(Zoom, -1))))
}

type ctxKey struct{}

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		c := AdaptGomponentToTempl(h.P(g.Text("hi")))
		require.NoError(t, c.Render(context.Background(), &buf))
		assert.Equal(t, "<p>hi</p>", buf.String())
	})

	t.Run("templ inside gomponent keeps the context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey{}, "from-request")
		inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, ctx.Value(ctxKey{}).(string))
			return err
		})
		assert.Equal(t, "<main>from-request</main>", render(t, h.Main(AdaptTemplToGomponent(ctx, inner))))
	})
}
