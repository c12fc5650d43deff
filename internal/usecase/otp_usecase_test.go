package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-internmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOTPIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a six digit code then dispatches it", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		sender := new(MockOTPSender)
		uc := usecase.NewOTPUsecase(otpRepo, new(MockAccountRepo), sender, 10*time.Minute)

		var issued string
		otpRepo.On("Set", ctx, "bob@corp.com", mock.AnythingOfType("string"), 10*time.Minute).
			Run(func(args mock.Arguments) { issued = args.String(2) }).Return(nil)
		sender.On("SendOTP", "bob@corp.com", mock.AnythingOfType("string")).Return(nil)

		err := uc.Issue(ctx, "bob@corp.com")
		assert.NoError(t, err)
		assert.Len(t, issued, 6)
		sender.AssertCalled(t, "SendOTP", "bob@corp.com", issued)
	})

	t.Run("failed dispatch reports bad gateway but keeps the code", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		sender := new(MockOTPSender)
		uc := usecase.NewOTPUsecase(otpRepo, new(MockAccountRepo), sender, 10*time.Minute)

		otpRepo.On("Set", ctx, "bob@corp.com", mock.AnythingOfType("string"), 10*time.Minute).Return(nil)
		sender.On("SendOTP", "bob@corp.com", mock.AnythingOfType("string")).Return(errors.New("smtp: connection refused"))

		err := uc.Issue(ctx, "bob@corp.com")
		assertAppErrorCode(t, err, http.StatusBadGateway)
		// The code was stored before the dispatch attempt, so a later
		// resend overwrites rather than orphans it.
		otpRepo.AssertCalled(t, "Set", ctx, "bob@corp.com", mock.AnythingOfType("string"), 10*time.Minute)
	})
}

func TestOTPVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("no pending code is not found", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		uc := usecase.NewOTPUsecase(otpRepo, new(MockAccountRepo), new(MockOTPSender), 10*time.Minute)

		otpRepo.On("Get", ctx, "bob@corp.com").Return("", nil)

		err := uc.Verify(ctx, "bob@corp.com", "123456")
		assertAppErrorCode(t, err, http.StatusNotFound)
	})

	t.Run("wrong code leaves the pending code intact", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		accounts := new(MockAccountRepo)
		uc := usecase.NewOTPUsecase(otpRepo, accounts, new(MockOTPSender), 10*time.Minute)

		otpRepo.On("Get", ctx, "bob@corp.com").Return("654321", nil)

		err := uc.Verify(ctx, "bob@corp.com", "123456")
		assertAppErrorCode(t, err, http.StatusBadRequest)
		accounts.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything)
		otpRepo.AssertNotCalled(t, "ConsumeIfMatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("matching code verifies the account and is consumed once", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		accounts := new(MockAccountRepo)
		uc := usecase.NewOTPUsecase(otpRepo, accounts, new(MockOTPSender), 10*time.Minute)

		otpRepo.On("Get", ctx, "bob@corp.com").Return("654321", nil)
		accounts.On("SetVerified", ctx, "bob@corp.com").Return(nil)
		otpRepo.On("ConsumeIfMatch", ctx, "bob@corp.com", "654321").Return(true, nil)

		err := uc.Verify(ctx, "bob@corp.com", "654321")
		assert.NoError(t, err)
		accounts.AssertExpectations(t)
		otpRepo.AssertExpectations(t)
	})

	t.Run("code consumed by a concurrent verify is not found", func(t *testing.T) {
		otpRepo := new(MockOTPRepo)
		accounts := new(MockAccountRepo)
		uc := usecase.NewOTPUsecase(otpRepo, accounts, new(MockOTPSender), 10*time.Minute)

		otpRepo.On("Get", ctx, "bob@corp.com").Return("654321", nil)
		accounts.On("SetVerified", ctx, "bob@corp.com").Return(nil)
		otpRepo.On("ConsumeIfMatch", ctx, "bob@corp.com", "654321").Return(false, nil)

		err := uc.Verify(ctx, "bob@corp.com", "654321")
		assertAppErrorCode(t, err, http.StatusNotFound)
	})
}
