package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
)

type assetUsecase struct {
	store domain.AssetStore
}

func NewAssetUsecase(store domain.AssetStore) domain.AssetUsecase {
	return &assetUsecase{store: store}
}

// Upload stores the blob under a key namespaced by purpose and owner and
// returns the public URL. Attaching the URL to a profile or collection
// record is a separate call made by the client.
func (u *assetUsecase) Upload(ctx context.Context, kind domain.AssetKind, ownerID int64, filename string, body io.Reader, size int64, contentType string) (string, error) {
	if filename == "" {
		return "", apperror.BadRequest("No file provided")
	}

	key, err := assetKey(kind, ownerID, filename)
	if err != nil {
		return "", err
	}

	url, err := u.store.Put(ctx, key, body, size, contentType)
	if err != nil {
		return "", apperror.Dependency("Failed to store file", err)
	}
	return url, nil
}

func assetKey(kind domain.AssetKind, ownerID int64, filename string) (string, error) {
	// path.Base strips any directory components a client might smuggle
	// into the filename.
	filename = path.Base(filename)
	if filename == "." || filename == "/" {
		return "", apperror.BadRequest("Invalid file name")
	}

	switch kind {
	case domain.AssetCertificate:
		return "certificates/" + filename, nil
	case domain.AssetResume:
		if ownerID == 0 {
			return "", apperror.BadRequest("user_id missing")
		}
		return fmt.Sprintf("resumes/%d/%s", ownerID, filename), nil
	case domain.AssetProjectVideo:
		if ownerID == 0 {
			return "", apperror.BadRequest("user_id missing")
		}
		return fmt.Sprintf("project-videos/%d/%s", ownerID, filename), nil
	default:
		return "", apperror.BadRequest("Unknown asset kind")
	}
}

// Delete removes the blob behind a previously issued URL. A blob that is
// already gone is a silent no-op.
func (u *assetUsecase) Delete(ctx context.Context, assetURL string) error {
	if assetURL == "" {
		return apperror.BadRequest("Asset URL is required")
	}

	key, ok := u.store.KeyFromURL(assetURL)
	if !ok {
		return apperror.BadRequest("Invalid asset URL")
	}

	if err := u.store.Delete(ctx, key); err != nil {
		return apperror.Dependency("Failed to delete file", err)
	}
	return nil
}
