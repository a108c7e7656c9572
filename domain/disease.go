package domain

import (
	"diag-hub/errors"
	"fmt"
)

// DiseaseID is the closed set of diagnostic categories supported by the hub.
// Routing is always done on the identifier, never on display names.
type DiseaseID string

const (
	BreastCancer DiseaseID = "breast-cancer"
	Pneumonia    DiseaseID = "pneumonia"
	Malaria      DiseaseID = "malaria"
)

// CatalogEntry binds a disease to its backend reference and the fixed,
// ordered set of output classes. Backend scores are interpreted in this
// class order.
type CatalogEntry struct {
	DisplayName string
	BackendRef  string
	Classes     []string
}

// Catalog is the static disease registry, fixed at startup and read-only
// thereafter.
type Catalog map[DiseaseID]CatalogEntry

// DefaultCatalog lists the three shipped diagnostic tools.
func DefaultCatalog() Catalog {
	return Catalog{
		BreastCancer: {
			DisplayName: "Breast Cancer Detection",
			BackendRef:  "breast-cancer-cnn",
			Classes:     []string{"Benign", "Malignant", "Normal"},
		},
		Pneumonia: {
			DisplayName: "Pneumonia Detection",
			BackendRef:  "pneumonia-cnn",
			Classes:     []string{"Normal", "Pneumonia"},
		},
		Malaria: {
			DisplayName: "Malaria Detection",
			BackendRef:  "malaria-cnn",
			Classes:     []string{"Uninfected", "Parasitized"},
		},
	}
}

// Entry resolves a disease, failing with ErrUnknownDisease for anything
// outside the catalog.
func (c Catalog) Entry(id DiseaseID) (CatalogEntry, error) {
	entry, ok := c[id]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: %q", errors.ErrUnknownDisease, id)
	}
	return entry, nil
}

// ParseDiseaseID maps raw user input to a DiseaseID. Unlike page parsing
// this does not fail closed: an unknown disease is a caller-input fault.
func ParseDiseaseID(raw string) (DiseaseID, error) {
	switch DiseaseID(raw) {
	case BreastCancer, Pneumonia, Malaria:
		return DiseaseID(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownDisease, raw)
	}
}
