package domain

import (
	"context"
	"time"
)

type RecruiterProfile struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"company_name"`
	Position    string    `json:"position"`
	Location    string    `json:"location"`
	UpdatedAt   time.Time `json:"-"`
}

// RecruiterProfileUpdate carries a partial update; nil fields keep their
// prior values.
type RecruiterProfileUpdate struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	Position    *string `json:"position"`
	Location    *string `json:"location"`
}

type CreateRecruiterProfileRequest struct {
	AccountID   int64  `json:"account_id" binding:"required" validate:"required"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
}

type RecruiterRepository interface {
	// GetByAccountID returns (nil, nil) when no profile exists.
	GetByAccountID(ctx context.Context, accountID int64) (*RecruiterProfile, error)
	Create(ctx context.Context, profile *RecruiterProfile) (int64, error)
	Update(ctx context.Context, profile *RecruiterProfile) error
}

type RecruiterUsecase interface {
	CreateProfile(ctx context.Context, req CreateRecruiterProfileRequest) (int64, error)
	GetProfile(ctx context.Context, accountID int64) (*RecruiterProfile, error)
	UpdateProfile(ctx context.Context, accountID int64, upd RecruiterProfileUpdate) error
}
