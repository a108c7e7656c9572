package web

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"diag-hub/errors"
)

// placeholderAsset is served when a cosmetic asset file is absent.
// Asset loss degrades the page, it never aborts it.
var placeholderAsset = []byte("asset unavailable")

// AssetStore loads presentation assets (logo, illustrations) from a
// directory. A missing or unreadable file is a typed outcome so callers
// can tell a cosmetic gap from a functional failure.
type AssetStore struct {
	dir string
	log *slog.Logger
}

func NewAssetStore(dir string, log *slog.Logger) AssetStore {
	return AssetStore{dir: dir, log: log}
}

// Load returns the asset bytes or ErrAssetMissing.
func (a AssetStore) Load(name string) ([]byte, error) {
	if a.dir == "" {
		return nil, fmt.Errorf("%w: no assets directory configured", errors.ErrAssetMissing)
	}

	data, err := os.ReadFile(filepath.Join(a.dir, filepath.Clean(name)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrAssetMissing, name)
	}
	return data, nil
}

// LoadOrPlaceholder degrades gracefully: the placeholder is returned in
// place of any missing asset, with a log entry for the operator.
func (a AssetStore) LoadOrPlaceholder(name string) []byte {
	data, err := a.Load(name)
	if err != nil {
		a.log.Warn("Asset missing, serving placeholder", "asset", name)
		return placeholderAsset
	}
	return data
}
