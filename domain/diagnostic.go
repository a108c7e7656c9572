package domain

import "time"

// DiagnosticRequest carries one disease selection and the raw uploaded
// image bytes. It is immutable once built, consumed synchronously by the
// dispatcher and then discarded; nothing here is ever persisted.
type DiagnosticRequest struct {
	Disease DiseaseID
	Image   []byte
}

// ClassProbability is one entry of an ordered class distribution.
type ClassProbability struct {
	Class       string
	Probability float64
}

// DiagnosticResult is the normalized output contract of every backend.
// The distribution holds one entry per catalog class in catalog order,
// probabilities are non-negative and sum to 1 within floating tolerance,
// and Label always equals the class with maximal probability.
// Stub marks placeholder output produced before a real model is registered;
// callers must never present stub output as a diagnosis.
type DiagnosticResult struct {
	Disease      DiseaseID
	Label        string
	Confidence   float64
	Distribution []ClassProbability
	Stub         bool
	At           time.Time
}
