// Package backend hosts the shipped implementations of the diagnostic
// backend interface. Until a real model is registered for a disease, a
// fixed stub distribution stands in; stub output is tagged so it can never
// be mistaken for model inference.
package backend

import (
	"context"
	"image"

	"diag-hub/contract"
	"diag-hub/domain"
)

// StubBackend returns a fixed, disease-specific class distribution.
// The peak class and confidence mirror the placeholder policy the portal
// shipped with before model integration.
type StubBackend struct {
	scores []float64
}

func NewStubBackend(scores []float64) StubBackend {
	return StubBackend{scores: scores}
}

func (s StubBackend) Predict(_ context.Context, _ image.Image) ([]float64, error) {
	out := make([]float64, len(s.scores))
	copy(out, s.scores)
	return out, nil
}

func (s StubBackend) Stub() bool { return true }

// DefaultRegistry wires one stub backend per catalog disease, keyed the way
// the dispatcher resolves them. Real backends replace entries here without
// touching the dispatcher.
func DefaultRegistry() map[domain.DiseaseID]contract.DiagnosticBackend {
	return map[domain.DiseaseID]contract.DiagnosticBackend{
		// Class order follows the catalog: Benign, Malignant, Normal.
		domain.BreastCancer: NewStubBackend([]float64{0.92, 0.05, 0.03}),
		// Normal, Pneumonia.
		domain.Pneumonia: NewStubBackend([]float64{0.88, 0.12}),
		// Uninfected, Parasitized.
		domain.Malaria: NewStubBackend([]float64{0.95, 0.05}),
	}
}
