// Package router maps the current page selection to its handler.
// It is a lookup table plus an authentication guard and performs no
// business logic of its own.
package router

import (
	"context"
	"fmt"

	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/session"
)

// Handler renders one page for one session and returns the rendered body.
type Handler func(ctx context.Context, s *session.Session) ([]byte, error)

// Router resolves a session's current page to one handler invocation per
// render cycle. It is only consulted for authenticated sessions; the guard
// rejects everything else.
type Router struct {
	handlers map[domain.PageID]Handler
}

func New() *Router {
	return &Router{handlers: make(map[domain.PageID]Handler)}
}

// Register binds a page to its handler.
func (r *Router) Register(page domain.PageID, h Handler) {
	r.handlers[page] = h
}

// Render dispatches the session's current page. An out-of-enum page value
// falls back to the Home handler rather than faulting.
func (r *Router) Render(ctx context.Context, s *session.Session) ([]byte, error) {
	if s == nil || !s.Authenticated {
		return nil, errors.ErrAuthFailed
	}

	h, ok := r.handlers[s.Page]
	if !ok {
		h = r.handlers[domain.PageHome]
	}
	if h == nil {
		return nil, fmt.Errorf("no handler registered for %q", domain.PageHome)
	}
	return h(ctx, s)
}
