package usecase

import (
	"context"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
)

type bookmarkUsecase struct {
	bookmarkRepo  domain.BookmarkRepository
	recruiterRepo domain.RecruiterRepository
	studentRepo   domain.StudentRepository
}

func NewBookmarkUsecase(
	bookmarkRepo domain.BookmarkRepository,
	recruiterRepo domain.RecruiterRepository,
	studentRepo domain.StudentRepository,
) domain.BookmarkUsecase {
	return &bookmarkUsecase{
		bookmarkRepo:  bookmarkRepo,
		recruiterRepo: recruiterRepo,
		studentRepo:   studentRepo,
	}
}

// Add is idempotent: re-adding an existing pair reports created=false
// instead of erroring or duplicating.
func (u *bookmarkUsecase) Add(ctx context.Context, recruiterAccountID, studentID int64) (bool, error) {
	if studentID == 0 {
		return false, apperror.BadRequest("student_id is required")
	}

	recruiter, err := u.recruiterRepo.GetByAccountID(ctx, recruiterAccountID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if recruiter == nil {
		return false, apperror.NotFound("Recruiter profile not found")
	}

	student, err := u.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if student == nil {
		return false, apperror.NotFound("Student profile not found")
	}

	created, err := u.bookmarkRepo.Create(ctx, recruiter.ID, studentID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return created, nil
}

func (u *bookmarkUsecase) Remove(ctx context.Context, recruiterAccountID, studentID int64) error {
	recruiter, err := u.recruiterRepo.GetByAccountID(ctx, recruiterAccountID)
	if err != nil {
		return apperror.Internal(err)
	}
	if recruiter == nil {
		return apperror.NotFound("Recruiter profile not found")
	}

	deleted, err := u.bookmarkRepo.Delete(ctx, recruiter.ID, studentID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("Bookmark not found")
	}
	return nil
}

// IsBookmarked answers false for anonymous callers and recruiters
// without a profile, never an error.
func (u *bookmarkUsecase) IsBookmarked(ctx context.Context, recruiterAccountID, studentID int64) (bool, error) {
	if recruiterAccountID == 0 {
		return false, nil
	}

	recruiter, err := u.recruiterRepo.GetByAccountID(ctx, recruiterAccountID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if recruiter == nil {
		return false, nil
	}

	exists, err := u.bookmarkRepo.Exists(ctx, recruiter.ID, studentID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

// ListForRecruiter returns an empty list for anonymous callers.
func (u *bookmarkUsecase) ListForRecruiter(ctx context.Context, recruiterAccountID int64) ([]domain.StudentSummary, error) {
	if recruiterAccountID == 0 {
		return []domain.StudentSummary{}, nil
	}

	recruiter, err := u.recruiterRepo.GetByAccountID(ctx, recruiterAccountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if recruiter == nil {
		return nil, apperror.NotFound("Recruiter profile not found")
	}

	students, err := u.bookmarkRepo.ListStudents(ctx, recruiter.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return students, nil
}
