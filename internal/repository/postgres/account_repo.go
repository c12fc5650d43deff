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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (email, password_hash, role, name, is_verified, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		account.Email, account.PasswordHash, account.Role, account.Name,
		account.IsVerified, account.CreatedAt, account.UpdatedAt,
	).Scan(&account.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, role, name, is_verified, created_at, updated_at
	          FROM accounts WHERE id = $1`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role,
		&account.Name, &account.IsVerified, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, role, name, is_verified, created_at, updated_at
	          FROM accounts WHERE email = $1`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role,
		&account.Name, &account.IsVerified, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) SetVerified(ctx context.Context, email string) error {
	query := `UPDATE accounts SET is_verified = true, updated_at = NOW() WHERE email = $1`
	cmdTag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
