package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets gomponents content be rendered inside a templ layout.
type gomponentComponent struct {
	node gomponents.Node
}

// Render implements templ.Component. gomponents has no use for the context.
func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ component be nested inside a gomponents tree while
// keeping the request context of the outer render.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render implements gomponents.Node.
func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents Node that
// renders with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return templNode{ctx: ctx, component: component}
}
