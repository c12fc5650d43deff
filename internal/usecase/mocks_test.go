package usecase_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) SetVerified(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.StudentProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}

func (m *MockStudentRepo) GetByID(ctx context.Context, id int64) (*domain.StudentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}

func (m *MockStudentRepo) Upsert(ctx context.Context, profile *domain.StudentProfile) (int64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepo) List(ctx context.Context) ([]domain.StudentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentSummary), args.Error(1)
}

func (m *MockStudentRepo) IncrementViews(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockStudentRepo) ListProjects(ctx context.Context, studentID int64) ([]domain.Project, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockStudentRepo) ReplaceProjects(ctx context.Context, studentID int64, items []domain.Project) (int, error) {
	args := m.Called(ctx, studentID, items)
	return args.Int(0), args.Error(1)
}

func (m *MockStudentRepo) ListCertifications(ctx context.Context, studentID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockStudentRepo) ReplaceCertifications(ctx context.Context, studentID int64, items []domain.Certification) (int, error) {
	args := m.Called(ctx, studentID, items)
	return args.Int(0), args.Error(1)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockRecruiterRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) (int64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecruiterRepo) Update(ctx context.Context, profile *domain.RecruiterProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockBookmarkRepo struct {
	mock.Mock
}

func (m *MockBookmarkRepo) Create(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	args := m.Called(ctx, recruiterID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepo) Delete(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	args := m.Called(ctx, recruiterID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepo) Exists(ctx context.Context, recruiterID, studentID int64) (bool, error) {
	args := m.Called(ctx, recruiterID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepo) ListStudents(ctx context.Context, recruiterID int64) ([]domain.StudentSummary, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentSummary), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockOTPRepo struct {
	mock.Mock
}

func (m *MockOTPRepo) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return m.Called(ctx, email, code, ttl).Error(0)
}

func (m *MockOTPRepo) Get(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockOTPRepo) ConsumeIfMatch(ctx context.Context, email, code string) (bool, error) {
	args := m.Called(ctx, email, code)
	return args.Bool(0), args.Error(1)
}

type MockOTPSender struct {
	mock.Mock
}

func (m *MockOTPSender) SendOTP(email, code string) error {
	return m.Called(email, code).Error(0)
}

type MockOTPUsecase struct {
	mock.Mock
}

func (m *MockOTPUsecase) Issue(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockOTPUsecase) Verify(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *MockOTPUsecase) Resend(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockAssetStore) KeyFromURL(rawURL string) (string, bool) {
	args := m.Called(rawURL)
	return args.String(0), args.Bool(1)
}
