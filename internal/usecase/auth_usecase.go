package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"
	"go-internmatch-backend/pkg/password"

	"github.com/google/uuid"
)

type authUsecase struct {
	accountRepo   domain.AccountRepository
	studentRepo   domain.StudentRepository
	recruiterRepo domain.RecruiterRepository
	sessionRepo   domain.SessionRepository
	otpUC         domain.OTPUsecase
	sessionTTL    time.Duration
}

func NewAuthUsecase(
	accountRepo domain.AccountRepository,
	studentRepo domain.StudentRepository,
	recruiterRepo domain.RecruiterRepository,
	sessionRepo domain.SessionRepository,
	otpUC domain.OTPUsecase,
	sessionTTL time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		accountRepo:   accountRepo,
		studentRepo:   studentRepo,
		recruiterRepo: recruiterRepo,
		sessionRepo:   sessionRepo,
		otpUC:         otpUC,
		sessionTTL:    sessionTTL,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Account, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Role == "" {
		return nil, apperror.BadRequest("Missing fields")
	}
	if !slices.Contains(domain.ValidRoles, req.Role) {
		return nil, apperror.BadRequest("Role must be student or recruiter")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         req.Role,
		Name:         req.Name,
		// Students need no email verification; recruiters earn the flag
		// through the OTP flow.
		IsVerified: req.Role == domain.RoleStudent,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if req.Role == domain.RoleRecruiter {
		// A failed dispatch must not undo the signup; the client can hit
		// resend-otp to get a fresh code.
		if err := u.otpUC.Issue(ctx, req.Email); err != nil {
			logger.Log.Warn("Failed to issue signup OTP", "email", req.Email, "error", err)
		}
	}

	return account, nil
}

func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, string, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, "", apperror.BadRequest("Email, password, and role are required")
	}

	account, err := u.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if account == nil || !password.Compare(account.PasswordHash, req.Password) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}
	if account.Role != req.Role {
		return nil, "", apperror.Forbidden("Incorrect role")
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		AccountID: account.ID,
		Role:      account.Role,
	}
	if err := u.sessionRepo.Create(ctx, session, u.sessionTTL); err != nil {
		return nil, "", apperror.Internal(err)
	}

	return account, session.Token, nil
}

// Logout is idempotent: deleting an unknown token succeeds.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessionRepo.Delete(ctx, token)
}

func (u *authUsecase) CurrentUser(ctx context.Context, accountID int64) (*domain.UserProfileView, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if account == nil {
		return nil, apperror.NotFound("User not found")
	}

	view := &domain.UserProfileView{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}

	// The profile payload depends on the account role; a missing profile
	// leaves both branches empty rather than failing the request.
	switch account.Role {
	case domain.RoleStudent:
		profile, err := u.studentRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		view.Student = profile
	case domain.RoleRecruiter:
		profile, err := u.recruiterRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		view.Recruiter = profile
	default:
		return nil, apperror.Internal(fmt.Errorf("unknown account role %q", account.Role))
	}

	return view, nil
}
