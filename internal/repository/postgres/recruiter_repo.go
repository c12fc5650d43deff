package postgres

import (
	"context"
	"errors"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.RecruiterProfile, error) {
	query := `
		SELECT rp.id, rp.account_id, a.email, rp.name, rp.phone, rp.company_name,
		       rp.position, rp.location, rp.updated_at
		FROM recruiter_profiles rp
		JOIN accounts a ON a.id = rp.account_id
		WHERE rp.account_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&p.ID, &p.AccountID, &p.Email, &p.Name, &p.Phone, &p.CompanyName,
		&p.Position, &p.Location, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *recruiterRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) (int64, error) {
	query := `
		INSERT INTO recruiter_profiles (account_id, name, phone, company_name, position, location)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		profile.AccountID, profile.Name, profile.Phone, profile.CompanyName,
		profile.Position, profile.Location,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperror.Conflict("Profile already exists")
		}
		return 0, apperror.Internal(err)
	}
	return id, nil
}

func (r *recruiterRepo) Update(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `
		UPDATE recruiter_profiles SET
			name = $1, phone = $2, company_name = $3, position = $4, location = $5,
			updated_at = NOW()
		WHERE account_id = $6`
	_, err := r.db.Exec(ctx, query,
		profile.Name, profile.Phone, profile.CompanyName, profile.Position,
		profile.Location, profile.AccountID,
	)
	return err
}
