package web

import (
	"encoding/json"
	"fmt"
	"time"

	"diag-hub/domain"
)

// renderedClass is one bar of the per-class probability series, in catalog
// order.
type renderedClass struct {
	Class       string  `json:"class"`
	Probability float64 `json:"probability"`
}

type renderedResult struct {
	Disease       string          `json:"disease"`
	Diagnosis     string          `json:"diagnosis"`
	Confidence    string          `json:"confidence"`
	Distribution  []renderedClass `json:"distribution"`
	NonDiagnostic bool            `json:"non_diagnostic,omitempty"`
	Notice        string          `json:"notice,omitempty"`
	At            string          `json:"at"`
}

// JSONRenderer is the shipped implementation of the result rendering
// collaborator. It emits the result contract as JSON: label, confidence
// percentage with one decimal place, and the ordered class series.
type JSONRenderer struct{}

func (JSONRenderer) RenderResult(result domain.DiagnosticResult) ([]byte, error) {
	out := renderedResult{
		Disease:      string(result.Disease),
		Diagnosis:    result.Label,
		Confidence:   fmt.Sprintf("%.1f%%", result.Confidence*100),
		Distribution: make([]renderedClass, 0, len(result.Distribution)),
		At:           result.At.Format(time.RFC3339),
	}
	for _, cp := range result.Distribution {
		out.Distribution = append(out.Distribution, renderedClass{
			Class:       cp.Class,
			Probability: cp.Probability,
		})
	}
	if result.Stub {
		out.NonDiagnostic = true
		out.Notice = "placeholder output: no model is registered for this disease"
	}
	return json.Marshal(out)
}
