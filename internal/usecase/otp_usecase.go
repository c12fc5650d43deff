package usecase

import (
	"context"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/otp"
)

type otpUsecase struct {
	otpRepo     domain.OTPRepository
	accountRepo domain.AccountRepository
	sender      domain.OTPSender
	ttl         time.Duration
}

func NewOTPUsecase(
	otpRepo domain.OTPRepository,
	accountRepo domain.AccountRepository,
	sender domain.OTPSender,
	ttl time.Duration,
) domain.OTPUsecase {
	return &otpUsecase{
		otpRepo:     otpRepo,
		accountRepo: accountRepo,
		sender:      sender,
		ttl:         ttl,
	}
}

// Issue stores a fresh code for the email, overwriting any pending one,
// then dispatches it. The code stays stored even when dispatch fails so
// a resend reaches the same state.
func (u *otpUsecase) Issue(ctx context.Context, email string) error {
	if email == "" {
		return apperror.BadRequest("Missing parameters")
	}

	code, err := otp.Generate()
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.otpRepo.Set(ctx, email, code, u.ttl); err != nil {
		return apperror.Internal(err)
	}

	if err := u.sender.SendOTP(email, code); err != nil {
		return apperror.Dependency("Failed to send OTP email", err)
	}
	return nil
}

// Verify flips the account's verified flag on a matching code and
// consumes the code exactly once. A mismatch leaves the pending code
// intact.
func (u *otpUsecase) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperror.BadRequest("Missing parameters")
	}

	stored, err := u.otpRepo.Get(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if stored == "" {
		return apperror.NotFound("OTP not found")
	}
	if stored != code {
		return apperror.BadRequest("Invalid OTP")
	}

	if err := u.accountRepo.SetVerified(ctx, email); err != nil {
		return err
	}

	consumed, err := u.otpRepo.ConsumeIfMatch(ctx, email, code)
	if err != nil {
		return apperror.Internal(err)
	}
	if !consumed {
		// The code was overwritten or consumed between the match above
		// and the delete; the account is already verified, so the later
		// call simply lost the race.
		return apperror.NotFound("OTP not found")
	}
	return nil
}

func (u *otpUsecase) Resend(ctx context.Context, email string) error {
	return u.Issue(ctx, email)
}
