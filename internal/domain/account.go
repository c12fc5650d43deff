package domain

import (
	"context"
	"time"
)

// Account roles
const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// ValidRoles for validation
var ValidRoles = []string{RoleStudent, RoleRecruiter}

// Account is a login identity with exactly one role. Role is immutable
// after creation. Recruiters start unverified and only become verified
// through the OTP flow; students are verified at signup.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserProfileView is the role-tagged projection returned for the current
// session. Exactly one of Student/Recruiter is set when the matching
// profile exists.
type UserProfileView struct {
	ID        int64             `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      string            `json:"role"`
	Student   *StudentProfile   `json:"student,omitempty"`
	Recruiter *RecruiterProfile `json:"recruiter,omitempty"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	SetVerified(ctx context.Context, email string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, req SignupRequest) (*Account, error)
	Login(ctx context.Context, req LoginRequest) (*Account, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, accountID int64) (*UserProfileView, error)
}
