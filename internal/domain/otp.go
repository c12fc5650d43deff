package domain

import (
	"context"
	"time"
)

// OTPRepository stores one pending code per email. Set unconditionally
// overwrites any previous code.
type OTPRepository interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	// Get returns "" when no code is pending for the email.
	Get(ctx context.Context, email string) (string, error)
	// ConsumeIfMatch deletes the pending code only if it equals the
	// supplied one, atomically. Returns false if the code was missing
	// or differed at deletion time.
	ConsumeIfMatch(ctx context.Context, email, code string) (bool, error)
}

// OTPSender dispatches a code to the recipient. A failed dispatch does
// not roll back the stored code.
type OTPSender interface {
	SendOTP(email, code string) error
}

type OTPUsecase interface {
	Issue(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
	Resend(ctx context.Context, email string) error
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Type  string `json:"type" binding:"required"`
}
