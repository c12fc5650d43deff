package domain

import (
	"context"
	"time"
)

// Bookmark joins a recruiter profile to a student profile. The pair is
// unique; re-adding an existing pair is a no-op.
type Bookmark struct {
	ID          int64     `json:"id"`
	RecruiterID int64     `json:"recruiter_id"`
	StudentID   int64     `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookmarkRepository interface {
	// Create inserts the pair if absent. Returns false when the pair
	// already existed.
	Create(ctx context.Context, recruiterID, studentID int64) (bool, error)
	// Delete returns false when the pair did not exist.
	Delete(ctx context.Context, recruiterID, studentID int64) (bool, error)
	Exists(ctx context.Context, recruiterID, studentID int64) (bool, error)
	ListStudents(ctx context.Context, recruiterID int64) ([]StudentSummary, error)
}

type BookmarkUsecase interface {
	// Add returns true when a new bookmark was created, false when the
	// pair already existed.
	Add(ctx context.Context, recruiterAccountID, studentID int64) (bool, error)
	Remove(ctx context.Context, recruiterAccountID, studentID int64) error
	// IsBookmarked and ListForRecruiter are permissive: an anonymous or
	// profile-less caller gets an empty result, not an error.
	IsBookmarked(ctx context.Context, recruiterAccountID, studentID int64) (bool, error)
	ListForRecruiter(ctx context.Context, recruiterAccountID int64) ([]StudentSummary, error)
}
