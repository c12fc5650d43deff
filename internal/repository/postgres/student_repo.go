package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-internmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type studentRepo struct {
	db *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) domain.StudentRepository {
	return &studentRepo{db: db}
}

const studentProfileColumns = `
	sp.id, sp.account_id, a.name, a.email,
	sp.phone, sp.university, sp.major, sp.graduation_year, sp.bio, sp.location,
	sp.github_url, sp.website_url, sp.linkedin_url,
	sp.internship_type_preference, sp.preferred_internship_location,
	sp.preferred_locations, sp.open_to_relocate, sp.multiple_website_urls,
	sp.skills, sp.profile_views, sp.updated_at`

func scanStudentProfile(row pgx.Row) (*domain.StudentProfile, error) {
	var p domain.StudentProfile
	var preferredLocations, websiteURLs, skills []string

	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Email,
		&p.Phone, &p.University, &p.Major, &p.GraduationYear, &p.Bio, &p.Location,
		&p.GithubURL, &p.WebsiteURL, &p.LinkedinURL,
		&p.InternshipTypePreference, &p.PreferredInternshipLocation,
		pq.Array(&preferredLocations), &p.OpenToRelocate, pq.Array(&websiteURLs),
		pq.Array(&skills), &p.ProfileViews, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.PreferredLocations = preferredLocations
	p.MultipleWebsiteURLs = websiteURLs
	p.Skills = skills
	return &p, nil
}

func (r *studentRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.StudentProfile, error) {
	query := `SELECT ` + studentProfileColumns + `
	          FROM student_profiles sp JOIN accounts a ON a.id = sp.account_id
	          WHERE sp.account_id = $1`
	return scanStudentProfile(r.db.QueryRow(ctx, query, accountID))
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*domain.StudentProfile, error) {
	query := `SELECT ` + studentProfileColumns + `
	          FROM student_profiles sp JOIN accounts a ON a.id = sp.account_id
	          WHERE sp.id = $1`
	return scanStudentProfile(r.db.QueryRow(ctx, query, id))
}

func (r *studentRepo) Upsert(ctx context.Context, profile *domain.StudentProfile) (int64, error) {
	// Update first; insert when no row exists for the account yet.
	updateQuery := `
		UPDATE student_profiles SET
			phone = $1, university = $2, major = $3, graduation_year = $4,
			bio = $5, location = $6, github_url = $7, website_url = $8,
			linkedin_url = $9, internship_type_preference = $10,
			preferred_internship_location = $11, preferred_locations = $12,
			open_to_relocate = $13, multiple_website_urls = $14, skills = $15,
			updated_at = NOW()
		WHERE account_id = $16
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, updateQuery,
		profile.Phone, profile.University, profile.Major, profile.GraduationYear,
		profile.Bio, profile.Location, profile.GithubURL, profile.WebsiteURL,
		profile.LinkedinURL, profile.InternshipTypePreference,
		profile.PreferredInternshipLocation, pq.Array(profile.PreferredLocations),
		profile.OpenToRelocate, pq.Array(profile.MultipleWebsiteURLs), pq.Array(profile.Skills),
		profile.AccountID,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to update profile: %w", err)
	}

	insertQuery := `
		INSERT INTO student_profiles (
			account_id, phone, university, major, graduation_year, bio, location,
			github_url, website_url, linkedin_url, internship_type_preference,
			preferred_internship_location, preferred_locations, open_to_relocate,
			multiple_website_urls, skills
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err = r.db.QueryRow(ctx, insertQuery,
		profile.AccountID, profile.Phone, profile.University, profile.Major,
		profile.GraduationYear, profile.Bio, profile.Location,
		profile.GithubURL, profile.WebsiteURL, profile.LinkedinURL,
		profile.InternshipTypePreference, profile.PreferredInternshipLocation,
		pq.Array(profile.PreferredLocations), profile.OpenToRelocate,
		pq.Array(profile.MultipleWebsiteURLs), pq.Array(profile.Skills),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert profile: %w", err)
	}
	return id, nil
}

func (r *studentRepo) List(ctx context.Context) ([]domain.StudentSummary, error) {
	query := `
		SELECT sp.id, sp.account_id, a.name, a.email, sp.university, sp.major,
		       sp.graduation_year, sp.location, sp.skills, sp.profile_views,
		       sp.internship_type_preference
		FROM student_profiles sp
		JOIN accounts a ON a.id = sp.account_id
		ORDER BY sp.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentSummaries(rows)
}

func scanStudentSummaries(rows pgx.Rows) ([]domain.StudentSummary, error) {
	summaries := []domain.StudentSummary{}
	for rows.Next() {
		var s domain.StudentSummary
		var skills []string
		err := rows.Scan(
			&s.ID, &s.AccountID, &s.Name, &s.Email, &s.University, &s.Major,
			&s.GraduationYear, &s.Location, pq.Array(&skills), &s.ProfileViews,
			&s.InternshipTypePreference,
		)
		if err != nil {
			return nil, err
		}
		s.Skills = skills
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *studentRepo) IncrementViews(ctx context.Context, accountID int64) error {
	query := `UPDATE student_profiles SET profile_views = profile_views + 1 WHERE account_id = $1`
	_, err := r.db.Exec(ctx, query, accountID)
	return err
}

func (r *studentRepo) ListProjects(ctx context.Context, studentID int64) ([]domain.Project, error) {
	query := `SELECT id, student_id, title, description, technologies, video_url
	          FROM student_projects WHERE student_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		var technologies []string
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Title, &p.Description, pq.Array(&technologies), &p.VideoURL); err != nil {
			return nil, err
		}
		p.Technologies = technologies
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ReplaceProjects swaps the full project list inside one transaction so
// concurrent readers never observe the deleted-but-not-reinserted state.
func (r *studentRepo) ReplaceProjects(ctx context.Context, studentID int64, items []domain.Project) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM student_projects WHERE student_id = $1`, studentID); err != nil {
		return 0, fmt.Errorf("failed to delete projects: %w", err)
	}

	insertQuery := `
		INSERT INTO student_projects (student_id, title, description, technologies, video_url)
		VALUES ($1, $2, $3, $4, $5)`
	for _, p := range items {
		_, err := tx.Exec(ctx, insertQuery, studentID, p.Title, p.Description, pq.Array(p.Technologies), p.VideoURL)
		if err != nil {
			return 0, fmt.Errorf("failed to insert project: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *studentRepo) ListCertifications(ctx context.Context, studentID int64) ([]domain.Certification, error) {
	query := `
		SELECT id, student_id, certification_name, issuing_organization, issue_date,
		       expiry_date, credential_id, credential_url, certificate_file_url,
		       certificate_filename
		FROM student_certifications WHERE student_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		err := rows.Scan(
			&c.ID, &c.StudentID, &c.CertificationName, &c.IssuingOrganization,
			&c.IssueDate, &c.ExpiryDate, &c.CredentialID, &c.CredentialURL,
			&c.CertificateFileURL, &c.CertificateFilename,
		)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (r *studentRepo) ReplaceCertifications(ctx context.Context, studentID int64, items []domain.Certification) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM student_certifications WHERE student_id = $1`, studentID); err != nil {
		return 0, fmt.Errorf("failed to delete certifications: %w", err)
	}

	insertQuery := `
		INSERT INTO student_certifications (
			student_id, certification_name, issuing_organization, issue_date,
			expiry_date, credential_id, credential_url, certificate_file_url,
			certificate_filename
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, c := range items {
		_, err := tx.Exec(ctx, insertQuery,
			studentID, c.CertificationName, c.IssuingOrganization, c.IssueDate,
			c.ExpiryDate, c.CredentialID, c.CredentialURL, c.CertificateFileURL,
			c.CertificateFilename,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert certification: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(items), nil
}
