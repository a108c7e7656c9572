// Package web is the HTTP transport of the portal. It owns no business
// logic: it translates requests into session, dispatcher and pipeline
// calls and writes their typed outcomes back to the client.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"diag-hub/auth"
	"diag-hub/contract"
	"diag-hub/domain"
	"diag-hub/observability"
	"diag-hub/router"
	"diag-hub/services"
	"diag-hub/session"
)

const sessionCookie = "diag_session"

// PortalServer serves the gated portal surface: the login gate, the four
// pages, the diagnostic upload and the feedback submission.
type PortalServer struct {
	log      *slog.Logger
	sessions *session.Manager
	issuer   *auth.TokenIssuer
	diag     services.IDiagnosticService
	feedback services.IFeedbackService
	pages    *router.Router
	renderer contract.ResultRenderer
	monitor  *observability.Monitor
	assets   AssetStore
	catalog  domain.Catalog

	maxUploadBytes int64
	httpServer     *http.Server
}

func NewPortalServer(
	addr string,
	log *slog.Logger,
	sessions *session.Manager,
	issuer *auth.TokenIssuer,
	diag services.IDiagnosticService,
	feedback services.IFeedbackService,
	renderer contract.ResultRenderer,
	monitor *observability.Monitor,
	assets AssetStore,
	catalog domain.Catalog,
	maxUploadBytes int64,
) *PortalServer {
	s := &PortalServer{
		log:            log,
		sessions:       sessions,
		issuer:         issuer,
		diag:           diag,
		feedback:       feedback,
		pages:          router.New(),
		renderer:       renderer,
		monitor:        monitor,
		assets:         assets,
		catalog:        catalog,
		maxUploadBytes: maxUploadBytes,
	}
	s.registerPages()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /page/{page}", s.handlePage)
	mux.HandleFunc("GET /page", s.handlePage)
	mux.HandleFunc("POST /diagnose", s.handleDiagnose)
	mux.HandleFunc("POST /feedback", s.handleFeedback)
	mux.HandleFunc("GET /assets/{name}", s.handleAsset)
	mux.HandleFunc("GET /status", s.handleStatus)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.counted(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until Shutdown is invoked.
func (s *PortalServer) Start() error {
	s.log.Info("Portal listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *PortalServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routing surface (useful for tests).
func (s *PortalServer) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *PortalServer) counted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.monitor.IncrRequests()
		next.ServeHTTP(w, r)
	})
}

// sessionFor resolves the caller's session from the signed cookie; any
// absent, expired or forged token silently starts a fresh unauthenticated
// session at the gate.
func (s *PortalServer) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if claims, err := s.issuer.Validate(cookie.Value); err == nil {
			if id, err := uuid.Parse(claims.SessionID); err == nil {
				if sess, err := s.sessions.Get(id); err == nil {
					return sess
				}
			}
		}
	}

	sess := s.sessions.Begin()
	token, err := s.issuer.Issue(sess.ID.String())
	if err != nil {
		// Without a token the session cannot be referenced again; it will
		// be recreated on the next request.
		s.log.Error("Session token issuance failed", "error", err)
		return sess
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
