//go:generate go run go.uber.org/mock/mockgen -source=diagnostic_service.go -destination=../mocks/mock_diagnostic_service.go -package=mocks
package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	// Register the decoders for the supported upload formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"diag-hub/contract"
	"diag-hub/domain"
	"diag-hub/errors"
)

// distributionTolerance is the floating tolerance on the probability sum
// before the dispatcher renormalizes backend output.
const distributionTolerance = 1e-6

type IDiagnosticService interface {
	Diagnose(ctx context.Context, req domain.DiagnosticRequest) (domain.DiagnosticResult, error)
}

// DiagnosticService resolves a selected disease to its backend, invokes it
// and normalizes the raw scores into a DiagnosticResult. Every invocation
// is a fresh computation: results are never cached or persisted, since both
// backend and image vary per call and medical output must never be stale.
type DiagnosticService struct {
	catalog  domain.Catalog
	backends map[domain.DiseaseID]contract.DiagnosticBackend
	log      *slog.Logger
	timeout  time.Duration
}

func NewDiagnosticService(
	catalog domain.Catalog,
	backends map[domain.DiseaseID]contract.DiagnosticBackend,
	log *slog.Logger,
	timeout time.Duration,
) *DiagnosticService {
	return &DiagnosticService{
		catalog:  catalog,
		backends: backends,
		log:      log,
		timeout:  timeout,
	}
}

// Diagnose validates the request, runs the backend under a deadline and
// returns the normalized result. Upstream callers already reject bad
// uploads at the boundary, but the dispatcher re-validates defensively:
// it never trusts upstream.
func (s *DiagnosticService) Diagnose(ctx context.Context, req domain.DiagnosticRequest) (domain.DiagnosticResult, error) {
	entry, err := s.catalog.Entry(req.Disease)
	if err != nil {
		return domain.DiagnosticResult{}, err
	}

	backend, ok := s.backends[req.Disease]
	if !ok {
		return domain.DiagnosticResult{}, fmt.Errorf("%w: no backend registered for %q", errors.ErrBackendUnavailable, req.Disease)
	}

	img, err := decodeUpload(req.Image)
	if err != nil {
		return domain.DiagnosticResult{}, err
	}

	scores, err := s.invoke(ctx, backend, img)
	if err != nil {
		return domain.DiagnosticResult{}, err
	}

	return s.normalize(req.Disease, entry, scores, backend.Stub())
}

// decodeUpload checks that the bytes are a decodable raster image in a
// supported format (png, jpg, jpeg).
func decodeUpload(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty upload", errors.ErrInvalidImage)
	}

	mt := mimetype.Detect(raw)
	if !mt.Is("image/png") && !mt.Is("image/jpeg") {
		return nil, fmt.Errorf("%w: detected %s", errors.ErrInvalidImage, mt.String())
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidImage, err)
	}
	return img, nil
}

// invoke runs the backend under the configured deadline. Inference may be
// compute-heavy; the call is cancellable and bounded so one request can
// never hang a session. Any backend fault, panic included, is caught here
// and converted: raw runtime failures never reach the render layer.
func (s *DiagnosticService) invoke(ctx context.Context, backend contract.DiagnosticBackend, img image.Image) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type prediction struct {
		scores []float64
		err    error
	}
	resChan := make(chan prediction, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- prediction{err: fmt.Errorf("backend panic: %v", r)}
			}
		}()
		scores, err := backend.Predict(ctx, img)
		resChan <- prediction{scores: scores, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, ctx.Err())
	case res := <-resChan:
		if res.err != nil {
			s.log.Error("Backend invocation failed", "error", res.err)
			return nil, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, res.err)
		}
		return res.scores, nil
	}
}

// normalize turns raw backend scores into the result contract: one entry
// per catalog class in catalog order, non-negative probabilities summing to
// 1 within tolerance, label equal to the top class.
func (s *DiagnosticService) normalize(disease domain.DiseaseID, entry domain.CatalogEntry, scores []float64, stub bool) (domain.DiagnosticResult, error) {
	if len(scores) != len(entry.Classes) {
		s.log.Error("Backend returned wrong class count",
			"disease", disease, "expected", len(entry.Classes), "got", len(scores))
		return domain.DiagnosticResult{}, fmt.Errorf("%w: backend returned %d scores for %d classes",
			errors.ErrBackendUnavailable, len(scores), len(entry.Classes))
	}

	sum := 0.0
	cleaned := make([]float64, len(scores))
	for i, p := range scores {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			p = 0
		}
		cleaned[i] = p
		sum += p
	}
	if sum == 0 {
		return domain.DiagnosticResult{}, fmt.Errorf("%w: backend returned an all-zero distribution", errors.ErrBackendUnavailable)
	}

	if math.Abs(sum-1) > distributionTolerance {
		// Non-fatal anomaly: correct and continue.
		s.log.Warn("Backend anomaly: distribution does not sum to 1, renormalizing",
			"disease", disease, "sum", sum)
		for i := range cleaned {
			cleaned[i] /= sum
		}
	}

	distribution := make([]domain.ClassProbability, len(cleaned))
	for i, p := range cleaned {
		distribution[i] = domain.ClassProbability{Class: entry.Classes[i], Probability: p}
	}

	top := lo.MaxBy(distribution, func(a, b domain.ClassProbability) bool {
		return a.Probability > b.Probability
	})

	return domain.DiagnosticResult{
		Disease:      disease,
		Label:        top.Class,
		Confidence:   top.Probability,
		Distribution: distribution,
		Stub:         stub,
		At:           time.Now().UTC(),
	}, nil
}
