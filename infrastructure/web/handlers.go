package web

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/session"
)

// allowedExtensions is the upload allowlist enforced at the boundary.
// The dispatcher re-validates the content itself; this check only stops
// obviously wrong files before they are read.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func (s *PortalServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.sessions.Login(sess.ID, r.PostFormValue("access_key")); err != nil {
		s.monitor.IncrAuthFailures()
		writeError(w, http.StatusUnauthorized, errors.ErrAuthFailed)
		return
	}

	// Redirect so the page router is consulted immediately with the new
	// state; gated content is never rendered stale.
	http.Redirect(w, r, "/page/"+string(sess.Page), http.StatusSeeOther)
}

func (s *PortalServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if err := s.sessions.Logout(sess.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeMessage(w, http.StatusOK, "logged out")
}

func (s *PortalServer) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if !sess.Authenticated {
		writeError(w, http.StatusUnauthorized, errors.ErrAuthFailed)
		return
	}

	// Unknown page values fold to Home before they reach the router.
	page := domain.ParsePage(r.PathValue("page"))
	if err := s.sessions.SetPage(sess.ID, page); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	body, err := s.pages.Render(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *PortalServer) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if !sess.Authenticated {
		writeError(w, http.StatusUnauthorized, errors.ErrAuthFailed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if goerrors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		// Malformed, not oversized.
		writeError(w, http.StatusBadRequest, err)
		return
	}

	disease, err := domain.ParseDiseaseID(r.PostFormValue("disease"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrInvalidImage)
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); !allowedExtensions[ext] {
		writeError(w, http.StatusUnprocessableEntity, errors.ErrInvalidImage)
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrInvalidImage)
		return
	}

	result, err := s.diag.Diagnose(r.Context(), domain.DiagnosticRequest{
		Disease: disease,
		Image:   raw,
	})
	if err != nil {
		s.writeDiagnoseError(w, err)
		return
	}
	s.monitor.IncrDiagnoses()

	body, err := s.renderer.RenderResult(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}

// writeDiagnoseError maps dispatcher faults onto request-scoped responses.
// Nothing here is fatal to the session: every failure is one request's.
func (s *PortalServer) writeDiagnoseError(w http.ResponseWriter, err error) {
	switch {
	case goerrors.Is(err, errors.ErrUnknownDisease), goerrors.Is(err, errors.ErrInvalidImage):
		writeError(w, http.StatusUnprocessableEntity, err)
	case goerrors.Is(err, errors.ErrBackendUnavailable):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "analysis failed, try again",
		})
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *PortalServer) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if !sess.Authenticated {
		writeError(w, http.StatusUnauthorized, errors.ErrAuthFailed)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, errors.ErrInvalidFeedback)
		return
	}

	record := domain.NewFeedbackRecord(
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		rating,
		r.PostFormValue("message"),
	)

	outcome, err := s.feedback.Submit(r.Context(), record)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if outcome.Logged {
		s.monitor.IncrFeedbacks()
		_ = s.sessions.MarkFeedbackSubmitted(sess.ID)
	}

	writeJSON(w, feedbackStatus(outcome.Logged), map[string]any{
		"logged":   outcome.Logged,
		"notified": outcome.Notified,
		"message":  feedbackMessage(outcome.Logged, outcome.Notified),
	})
}

func feedbackStatus(logged bool) int {
	if logged {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// feedbackMessage renders partial success honestly instead of collapsing
// the two sinks into a single boolean.
func feedbackMessage(logged, notified bool) string {
	switch {
	case logged && notified:
		return "thank you, your feedback was saved and forwarded"
	case logged:
		return "saved but notification failed"
	case notified:
		return "notification sent but saving failed, please retry"
	default:
		return "feedback could not be delivered, please retry"
	}
}

func (s *PortalServer) handleAsset(w http.ResponseWriter, r *http.Request) {
	// Cosmetic surface: a missing asset serves a placeholder and the page
	// carries on.
	_, _ = w.Write(s.assets.LoadOrPlaceholder(r.PathValue("name")))
}

func (s *PortalServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.monitor.Snapshot(s.sessions.Count()))
}

// registerPages binds the four navigation targets. Handlers only describe
// page content; styling and layout belong to the rendering collaborator.
func (s *PortalServer) registerPages() {
	s.pages.Register(domain.PageHome, func(_ context.Context, _ *session.Session) ([]byte, error) {
		return json.Marshal(map[string]any{
			"page":  string(domain.PageHome),
			"title": "AI Health Diagnostic Hub",
			"intro": "Instant preliminary analysis for breast cancer (ultrasound), pneumonia (chest X-ray) and malaria (blood smear).",
			"logo":  "/assets/logo.jpg",
		})
	})

	s.pages.Register(domain.PageDiagnostics, func(_ context.Context, _ *session.Session) ([]byte, error) {
		type tool struct {
			ID          string   `json:"id"`
			DisplayName string   `json:"display_name"`
			Classes     []string `json:"classes"`
		}
		tools := make([]tool, 0, len(s.catalog))
		for _, id := range []domain.DiseaseID{domain.BreastCancer, domain.Pneumonia, domain.Malaria} {
			entry := s.catalog[id]
			tools = append(tools, tool{
				ID:          string(id),
				DisplayName: entry.DisplayName,
				Classes:     entry.Classes,
			})
		}
		return json.Marshal(map[string]any{
			"page":    string(domain.PageDiagnostics),
			"title":   "Medical Diagnostics",
			"tools":   tools,
			"formats": []string{"png", "jpg", "jpeg"},
		})
	})

	s.pages.Register(domain.PageAbout, func(_ context.Context, _ *session.Session) ([]byte, error) {
		return json.Marshal(map[string]any{
			"page":       string(domain.PageAbout),
			"title":      "About Our Platform",
			"mission":    "To democratize access to medical diagnostics through AI technology, particularly in underserved communities.",
			"disclaimer": "This tool provides preliminary analysis only and should not replace professional medical diagnosis. Always consult a healthcare provider.",
		})
	})

	s.pages.Register(domain.PageFeedback, func(_ context.Context, sess *session.Session) ([]byte, error) {
		return json.Marshal(map[string]any{
			"page":      string(domain.PageFeedback),
			"title":     "Feedback",
			"submitted": sess.FeedbackSubmitted,
			"fields":    []string{"name", "email", "rating", "message"},
		})
	})
}
