package ports

import "go.trai.ch/reqs/internal/core/domain"

// ManifestLoader reads the package manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads package.json from root. Errors wrap domain.ErrManifest.
	Load(root string) (*domain.Manifest, error)
}
