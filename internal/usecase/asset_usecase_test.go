package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssetUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("resume keys are namespaced by owner", func(t *testing.T) {
		store := new(MockAssetStore)
		uc := usecase.NewAssetUsecase(store)

		body := strings.NewReader("pdf bytes")
		store.On("Put", ctx, "resumes/7/cv.pdf", body, int64(9), "application/pdf").
			Return("https://cdn.example.com/resumes/7/cv.pdf", nil)

		url, err := uc.Upload(ctx, domain.AssetResume, 7, "cv.pdf", body, 9, "application/pdf")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/resumes/7/cv.pdf", url)
	})

	t.Run("certificate keys carry no owner segment", func(t *testing.T) {
		store := new(MockAssetStore)
		uc := usecase.NewAssetUsecase(store)

		body := strings.NewReader("img")
		store.On("Put", ctx, "certificates/aws-cp.png", body, int64(3), "image/png").
			Return("https://cdn.example.com/certificates/aws-cp.png", nil)

		_, err := uc.Upload(ctx, domain.AssetCertificate, 0, "aws-cp.png", body, 3, "image/png")
		assert.NoError(t, err)
	})

	t.Run("path components are stripped from the filename", func(t *testing.T) {
		store := new(MockAssetStore)
		uc := usecase.NewAssetUsecase(store)

		body := strings.NewReader("x")
		store.On("Put", ctx, "resumes/7/cv.pdf", body, int64(1), "").
			Return("https://cdn.example.com/resumes/7/cv.pdf", nil)

		_, err := uc.Upload(ctx, domain.AssetResume, 7, "../../etc/cv.pdf", body, 1, "")
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("owner-scoped uploads require an owner", func(t *testing.T) {
		uc := usecase.NewAssetUsecase(new(MockAssetStore))

		_, err := uc.Upload(ctx, domain.AssetProjectVideo, 0, "demo.mp4", strings.NewReader("x"), 1, "video/mp4")
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("empty filename is rejected", func(t *testing.T) {
		uc := usecase.NewAssetUsecase(new(MockAssetStore))

		_, err := uc.Upload(ctx, domain.AssetResume, 7, "", strings.NewReader("x"), 1, "")
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})
}

func TestAssetDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign URL is rejected", func(t *testing.T) {
		store := new(MockAssetStore)
		uc := usecase.NewAssetUsecase(store)

		store.On("KeyFromURL", "https://elsewhere.com/cv.pdf").Return("", false)

		err := uc.Delete(ctx, "https://elsewhere.com/cv.pdf")
		assertAppErrorCode(t, err, http.StatusBadRequest)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deleting an already-gone blob succeeds", func(t *testing.T) {
		store := new(MockAssetStore)
		uc := usecase.NewAssetUsecase(store)

		store.On("KeyFromURL", "https://cdn.example.com/resumes/7/cv.pdf").Return("resumes/7/cv.pdf", true)
		store.On("Delete", ctx, "resumes/7/cv.pdf").Return(nil)

		assert.NoError(t, uc.Delete(ctx, "https://cdn.example.com/resumes/7/cv.pdf"))
	})
}
