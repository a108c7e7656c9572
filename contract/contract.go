//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"image"

	"diag-hub/domain"
)

// DiagnosticBackend turns a decoded image into raw per-class scores for one
// disease, in the catalog's class order. Backends are opaque and
// interchangeable: a real model integration is a drop-in implementation
// behind this interface and never changes the dispatcher.
type DiagnosticBackend interface {
	// Predict may be compute-heavy; implementations must honour ctx
	// cancellation. Scores need not be normalized.
	Predict(ctx context.Context, img image.Image) ([]float64, error)

	// Stub reports whether the backend produces placeholder output rather
	// than model inference.
	Stub() bool
}

// FeedbackSink durably records or forwards one feedback record.
// Sinks are independent: a failure in one must never affect another.
type FeedbackSink interface {
	Deliver(ctx context.Context, record domain.FeedbackRecord) error
}

// ResultRenderer is the presentation collaborator consuming a diagnostic
// result. Rendering technology is outside the core; the core only
// guarantees the result contract (label, confidence, ordered class series).
type ResultRenderer interface {
	RenderResult(result domain.DiagnosticResult) ([]byte, error)
}
