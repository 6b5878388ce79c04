// Package router implements the in-app navigation model: a route table, a
// browser-style history stack, and the guards that gate protected routes.
//
// Guards never cache: session state is read fresh on every navigation, so a
// check always reflects the storage slots as they are right now.
package router

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/realtydesk/internal/common"
)

// Route paths known to the application.
const (
	PathHome          = "/home"
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathResetPassword = "/reset-password"
	PathAccount       = "/account"
	PathAdmin         = "/admin"
)

// Handler renders the page for a route. A handler (typically a guard) may
// call Ctx.Redirect instead of rendering.
type Handler func(c *Ctx) (string, error)

// Ctx carries per-navigation state into a handler.
type Ctx struct {
	ctx      context.Context
	redirect string
}

func (c *Ctx) Context() context.Context {
	return c.ctx
}

// Redirect abandons the current navigation in favor of path. The abandoned
// entry is replaced in history, not stacked on, so going back never lands on
// the route that redirected.
func (c *Ctx) Redirect(path string) {
	c.redirect = path
}

// Router dispatches navigation over a fixed route table and keeps the
// visited history.
type Router struct {
	routes  map[string]Handler
	history []string
}

func New() *Router {
	return &Router{routes: make(map[string]Handler)}
}

// Handle registers the handler for path, replacing any previous one.
func (r *Router) Handle(path string, h Handler) {
	r.routes[path] = h
}

// Current returns the path of the page currently shown, or "" before the
// first navigation.
func (r *Router) Current() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// History returns a copy of the visited stack, oldest first.
func (r *Router) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Navigate pushes path onto the history and renders it. If a guard
// redirects, the redirect target replaces the pushed entry.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	return r.visit(ctx, path, opPush)
}

// Replace renders path, replacing the current history entry.
func (r *Router) Replace(ctx context.Context, path string) (string, error) {
	return r.visit(ctx, path, opReplace)
}

// Back pops the current entry and re-renders the previous one. Guards run
// again on the way back, so a page that became forbidden redirects as usual.
func (r *Router) Back(ctx context.Context) (string, error) {
	if len(r.history) < 2 {
		return "", fmt.Errorf("no earlier page in history")
	}
	r.history = r.history[:len(r.history)-1]
	return r.visit(ctx, r.Current(), opNone)
}

type historyOp int

const (
	opPush historyOp = iota
	opReplace
	opNone // history top is already the target
)

// A guard cycle (e.g. two routes redirecting to each other) is a programming
// error; cap the hops so it surfaces as an error instead of spinning.
const maxRedirects = 8

func (r *Router) visit(ctx context.Context, path string, op historyOp) (string, error) {
	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			return "", fmt.Errorf("redirect loop while navigating to %s", path)
		}

		h, ok := r.routes[path]
		if !ok {
			return "", fmt.Errorf("%w: no route %s", common.ErrNotFound, path)
		}

		switch op {
		case opPush:
			r.history = append(r.history, path)
		case opReplace:
			r.replaceTop(path)
		}
		// Every hop after the first replaces the entry just recorded.
		op = opReplace

		c := &Ctx{ctx: ctx}
		out, err := h(c)
		if err != nil {
			return "", err
		}
		if c.redirect == "" {
			return out, nil
		}
		path = c.redirect
	}
}

func (r *Router) replaceTop(path string) {
	if len(r.history) == 0 {
		r.history = append(r.history, path)
		return
	}
	r.history[len(r.history)-1] = path
}
