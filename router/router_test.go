package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/session"
)

func newRouterWithPages() *Router {
	r := New()
	for _, page := range []domain.PageID{domain.PageHome, domain.PageDiagnostics, domain.PageAbout, domain.PageFeedback} {
		p := page
		r.Register(p, func(context.Context, *session.Session) ([]byte, error) {
			return []byte(p), nil
		})
	}
	return r
}

func TestRouter_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("should dispatch the session's current page", func(t *testing.T) {
		req := require.New(t)
		r := newRouterWithPages()
		s := &session.Session{Authenticated: true, Page: domain.PageDiagnostics}

		body, err := r.Render(ctx, s)

		req.NoError(err)
		req.Equal("diagnostics", string(body))
	})

	t.Run("should fall back to home for an out-of-enum page value", func(t *testing.T) {
		req := require.New(t)
		r := newRouterWithPages()
		s := &session.Session{Authenticated: true, Page: domain.PageID("corrupted")}

		body, err := r.Render(ctx, s)

		req.NoError(err)
		req.Equal("home", string(body))
	})

	t.Run("should refuse unauthenticated sessions", func(t *testing.T) {
		req := require.New(t)
		r := newRouterWithPages()

		_, err := r.Render(ctx, &session.Session{Authenticated: false, Page: domain.PageHome})
		req.ErrorIs(err, errors.ErrAuthFailed)

		_, err = r.Render(ctx, nil)
		req.ErrorIs(err, errors.ErrAuthFailed)
	})
}
