package domain

import (
	"context"
	"io"
)

// AssetKind decides the storage prefix an uploaded blob lands under.
type AssetKind string

const (
	AssetCertificate  AssetKind = "certificate"
	AssetResume       AssetKind = "resume"
	AssetProjectVideo AssetKind = "project-video"
)

// AssetStore is the blob-storage collaborator. Deleting a missing key
// is a no-op.
type AssetStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL recovers the storage key from a previously issued
	// public URL. Returns false when the URL does not carry the known
	// public prefix.
	KeyFromURL(rawURL string) (string, bool)
}

type AssetUsecase interface {
	Upload(ctx context.Context, kind AssetKind, ownerID int64, filename string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, assetURL string) error
}
