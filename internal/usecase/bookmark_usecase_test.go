package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookmarkAdd(t *testing.T) {
	ctx := context.Background()
	recruiter := &domain.RecruiterProfile{ID: 2, AccountID: 9}
	student := &domain.StudentProfile{ID: 5, AccountID: 7}

	t.Run("creates a new bookmark", func(t *testing.T) {
		bookmarks := new(MockBookmarkRepo)
		recruiters := new(MockRecruiterRepo)
		students := new(MockStudentRepo)
		uc := usecase.NewBookmarkUsecase(bookmarks, recruiters, students)

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(recruiter, nil)
		students.On("GetByID", ctx, int64(5)).Return(student, nil)
		bookmarks.On("Create", ctx, int64(2), int64(5)).Return(true, nil)

		created, err := uc.Add(ctx, 9, 5)
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("re-adding the same pair is a no-op", func(t *testing.T) {
		bookmarks := new(MockBookmarkRepo)
		recruiters := new(MockRecruiterRepo)
		students := new(MockStudentRepo)
		uc := usecase.NewBookmarkUsecase(bookmarks, recruiters, students)

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(recruiter, nil)
		students.On("GetByID", ctx, int64(5)).Return(student, nil)
		bookmarks.On("Create", ctx, int64(2), int64(5)).Return(false, nil)

		created, err := uc.Add(ctx, 9, 5)
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("missing recruiter profile is not found", func(t *testing.T) {
		recruiters := new(MockRecruiterRepo)
		uc := usecase.NewBookmarkUsecase(new(MockBookmarkRepo), recruiters, new(MockStudentRepo))

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(nil, nil)

		_, err := uc.Add(ctx, 9, 5)
		assertAppErrorCode(t, err, http.StatusNotFound)
	})

	t.Run("missing student profile is not found", func(t *testing.T) {
		recruiters := new(MockRecruiterRepo)
		students := new(MockStudentRepo)
		uc := usecase.NewBookmarkUsecase(new(MockBookmarkRepo), recruiters, students)

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(recruiter, nil)
		students.On("GetByID", ctx, int64(44)).Return(nil, nil)

		_, err := uc.Add(ctx, 9, 44)
		assertAppErrorCode(t, err, http.StatusNotFound)
	})
}

func TestBookmarkRemove(t *testing.T) {
	ctx := context.Background()
	recruiter := &domain.RecruiterProfile{ID: 2, AccountID: 9}

	t.Run("removing a missing bookmark is not found", func(t *testing.T) {
		bookmarks := new(MockBookmarkRepo)
		recruiters := new(MockRecruiterRepo)
		uc := usecase.NewBookmarkUsecase(bookmarks, recruiters, new(MockStudentRepo))

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(recruiter, nil)
		bookmarks.On("Delete", ctx, int64(2), int64(5)).Return(false, nil)

		err := uc.Remove(ctx, 9, 5)
		assertAppErrorCode(t, err, http.StatusNotFound)
	})
}

func TestBookmarkReads(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous check answers false without hitting the store", func(t *testing.T) {
		bookmarks := new(MockBookmarkRepo)
		uc := usecase.NewBookmarkUsecase(bookmarks, new(MockRecruiterRepo), new(MockStudentRepo))

		bookmarked, err := uc.IsBookmarked(ctx, 0, 5)
		assert.NoError(t, err)
		assert.False(t, bookmarked)
		bookmarks.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("profile-less recruiter checks as false", func(t *testing.T) {
		recruiters := new(MockRecruiterRepo)
		uc := usecase.NewBookmarkUsecase(new(MockBookmarkRepo), recruiters, new(MockStudentRepo))

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(nil, nil)

		bookmarked, err := uc.IsBookmarked(ctx, 9, 5)
		assert.NoError(t, err)
		assert.False(t, bookmarked)
	})

	t.Run("anonymous list is empty", func(t *testing.T) {
		uc := usecase.NewBookmarkUsecase(new(MockBookmarkRepo), new(MockRecruiterRepo), new(MockStudentRepo))

		students, err := uc.ListForRecruiter(ctx, 0)
		assert.NoError(t, err)
		assert.Empty(t, students)
	})

	t.Run("list returns the recruiter's saved students", func(t *testing.T) {
		bookmarks := new(MockBookmarkRepo)
		recruiters := new(MockRecruiterRepo)
		uc := usecase.NewBookmarkUsecase(bookmarks, recruiters, new(MockStudentRepo))

		recruiters.On("GetByAccountID", ctx, int64(9)).Return(&domain.RecruiterProfile{ID: 2, AccountID: 9}, nil)
		bookmarks.On("ListStudents", ctx, int64(2)).Return([]domain.StudentSummary{{ID: 5, Name: "Alice"}}, nil)

		students, err := uc.ListForRecruiter(ctx, 9)
		assert.NoError(t, err)
		assert.Len(t, students, 1)
		assert.Equal(t, "Alice", students[0].Name)
	})
}
