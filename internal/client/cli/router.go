package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hotelhub/internal/common"
)

// Router keeps exactly one View mounted. It is driven from the REPL
// goroutine and is not safe for concurrent use.
type Router struct {
	ctx     context.Context
	out     io.Writer
	header  func(ctx context.Context, w io.Writer)
	routes  map[string]func() View
	current View
}

func NewRouter(out io.Writer) *Router {
	return &Router{
		ctx:    context.Background(),
		out:    out,
		routes: make(map[string]func() View),
	}
}

// Handle registers the factory building the view for route. A fresh view
// is built on every navigation.
func (r *Router) Handle(route string, factory func() View) {
	r.routes[route] = factory
}

func (r *Router) Has(route string) bool {
	_, ok := r.routes[route]
	return ok
}

// SetHeader installs a renderer drawn above every view.
func (r *Router) SetHeader(fn func(ctx context.Context, w io.Writer)) {
	r.header = fn
}

// Start sets the context handed to mounted views.
func (r *Router) Start(ctx context.Context) {
	r.ctx = ctx
}

// Navigate unmounts the current view, mounts the one registered for route
// and renders it. Unknown routes are reported and leave the current view in
// place.
func (r *Router) Navigate(route string) {
	factory, ok := r.routes[route]
	if !ok {
		fmt.Fprintf(r.out, "No such page: %s\n", route)
		return
	}
	if r.current != nil {
		r.current.Unmount()
	}
	v := factory()
	r.current = v
	v.Mount(r.ctx)
	r.Render()
}

// Render redraws the header and the current view.
func (r *Router) Render() {
	if r.header != nil {
		r.header(r.ctx, r.out)
	}
	if r.current != nil {
		r.current.Render(r.ctx, r.out)
	}
}

func (r *Router) Current() View { return r.current }

// Route returns the path of the mounted view, RouteHome before the first
// navigation.
func (r *Router) Route() string {
	if r.current == nil {
		return common.RouteHome
	}
	return r.current.Route()
}

// Stop unmounts the current view.
func (r *Router) Stop() {
	if r.current != nil {
		r.current.Unmount()
		r.current = nil
	}
}
