package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"diag-hub/errors"
)

func TestParsePage(t *testing.T) {
	t.Run("should accept every known page", func(t *testing.T) {
		req := require.New(t)
		for _, page := range []PageID{PageHome, PageDiagnostics, PageAbout, PageFeedback} {
			req.Equal(page, ParsePage(string(page)))
		}
	})

	t.Run("should fail closed to home on unknown values", func(t *testing.T) {
		req := require.New(t)
		for _, raw := range []string{"", "admin", "Home", "diagnostics/../etc"} {
			req.Equal(PageHome, ParsePage(raw))
		}
	})
}

func TestParseDiseaseID(t *testing.T) {
	t.Run("should accept catalog diseases", func(t *testing.T) {
		req := require.New(t)
		id, err := ParseDiseaseID("pneumonia")
		req.NoError(err)
		req.Equal(Pneumonia, id)
	})

	t.Run("should reject unknown diseases explicitly", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseDiseaseID("tuberculosis")
		req.ErrorIs(err, errors.ErrUnknownDisease)
	})
}

func TestCatalog_Entry(t *testing.T) {
	t.Run("should expose a fixed class set per disease", func(t *testing.T) {
		req := require.New(t)
		catalog := DefaultCatalog()

		entry, err := catalog.Entry(BreastCancer)
		req.NoError(err)
		req.Equal([]string{"Benign", "Malignant", "Normal"}, entry.Classes)

		_, err = catalog.Entry("made-up")
		req.ErrorIs(err, errors.ErrUnknownDisease)
	})
}
