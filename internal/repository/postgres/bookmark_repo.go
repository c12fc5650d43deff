package postgres

import (
	"context"

	"go-internmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookmarkRepo struct {
	db *pgxpool.Pool
}

func NewBookmarkRepository(db *pgxpool.Pool) domain.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

// Create relies on the unique (recruiter_id, student_id) index: a
// duplicate insert affects zero rows instead of erroring.
func (r *bookmarkRepo) Create(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	query := `
		INSERT INTO bookmarks (recruiter_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (recruiter_id, student_id) DO NOTHING`
	cmdTag, err := r.db.Exec(ctx, query, recruiterID, studentID)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	query := `DELETE FROM bookmarks WHERE recruiter_id = $1 AND student_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, recruiterID, studentID)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *bookmarkRepo) Exists(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE recruiter_id = $1 AND student_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, recruiterID, studentID).Scan(&exists)
	return exists, err
}

func (r *bookmarkRepo) ListStudents(ctx context.Context, recruiterID int64) ([]domain.StudentSummary, error) {
	query := `
		SELECT sp.id, sp.account_id, a.name, a.email, sp.university, sp.major,
		       sp.graduation_year, sp.location, sp.skills, sp.profile_views,
		       sp.internship_type_preference
		FROM bookmarks b
		JOIN student_profiles sp ON sp.id = b.student_id
		JOIN accounts a ON a.id = sp.account_id
		WHERE b.recruiter_id = $1
		ORDER BY b.created_at DESC`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentSummaries(rows)
}
