package usecase

import (
	"context"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recruiterUsecase struct {
	recruiterRepo domain.RecruiterRepository
	accountRepo   domain.AccountRepository
	validate      *validator.Validate
}

func NewRecruiterUsecase(recruiterRepo domain.RecruiterRepository, accountRepo domain.AccountRepository, validate *validator.Validate) domain.RecruiterUsecase {
	return &recruiterUsecase{recruiterRepo: recruiterRepo, accountRepo: accountRepo, validate: validate}
}

func (u *recruiterUsecase) CreateProfile(ctx context.Context, req domain.CreateRecruiterProfileRequest) (int64, error) {
	if err := u.validate.Struct(req); err != nil {
		return 0, apperror.BadRequest(err.Error())
	}

	account, err := u.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if account == nil {
		return 0, apperror.NotFound("User not found")
	}
	if account.Role != domain.RoleRecruiter {
		return 0, apperror.BadRequest("Account is not a recruiter")
	}

	existing, err := u.recruiterRepo.GetByAccountID(ctx, req.AccountID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if existing != nil {
		return 0, apperror.Conflict("Profile already exists")
	}

	profile := &domain.RecruiterProfile{
		AccountID:   req.AccountID,
		Name:        req.Name,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Location:    req.Location,
	}
	return u.recruiterRepo.Create(ctx, profile)
}

func (u *recruiterUsecase) GetProfile(ctx context.Context, accountID int64) (*domain.RecruiterProfile, error) {
	profile, err := u.recruiterRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Recruiter profile not found")
	}
	return profile, nil
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, accountID int64, upd domain.RecruiterProfileUpdate) error {
	profile, err := u.recruiterRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return apperror.Internal(err)
	}
	if profile == nil {
		return apperror.NotFound("Profile not found")
	}

	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.CompanyName != nil {
		profile.CompanyName = *upd.CompanyName
	}
	if upd.Position != nil {
		profile.Position = *upd.Position
	}
	if upd.Location != nil {
		profile.Location = *upd.Location
	}

	if err := u.recruiterRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
