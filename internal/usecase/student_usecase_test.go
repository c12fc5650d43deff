package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestStudentGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile is not found", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(nil, nil)

		_, err := uc.GetProfile(ctx, 7, "")
		assertAppErrorCode(t, err, http.StatusNotFound)
	})

	t.Run("anonymous view does not bump the counter", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(&domain.StudentProfile{ID: 3, AccountID: 7, ProfileViews: 4}, nil)

		profile, err := uc.GetProfile(ctx, 7, "")
		assert.NoError(t, err)
		assert.Equal(t, 4, profile.ProfileViews)
		students.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("recruiter view bumps the counter", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(&domain.StudentProfile{ID: 3, AccountID: 7, ProfileViews: 4}, nil)
		students.On("IncrementViews", ctx, int64(7)).Return(nil)

		profile, err := uc.GetProfile(ctx, 7, domain.RoleRecruiter)
		assert.NoError(t, err)
		assert.Equal(t, 5, profile.ProfileViews)
	})
}

func TestStudentSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("first save creates the profile", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(nil, nil)
		students.On("Upsert", ctx, mock.MatchedBy(func(p *domain.StudentProfile) bool {
			return p.AccountID == 7 && p.University == "ITB" && p.Major == "Informatics"
		})).Return(int64(3), nil)

		id, err := uc.SaveProfile(ctx, 7, domain.StudentProfileUpdate{
			University: strPtr("ITB"),
			Major:      strPtr("Informatics"),
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("omitted fields keep their prior values", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(&domain.StudentProfile{
			ID: 3, AccountID: 7, University: "ITB", Bio: "hello", Skills: []string{"go"},
		}, nil)
		students.On("Upsert", ctx, mock.MatchedBy(func(p *domain.StudentProfile) bool {
			return p.University == "ITB" && p.Bio == "updated" && len(p.Skills) == 1
		})).Return(int64(3), nil)

		_, err := uc.SaveProfile(ctx, 7, domain.StudentProfileUpdate{Bio: strPtr("updated")})
		assert.NoError(t, err)
		students.AssertExpectations(t)
	})

	t.Run("explicit empty slice clears the list", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(&domain.StudentProfile{
			ID: 3, AccountID: 7, Skills: []string{"go", "sql"},
		}, nil)
		students.On("Upsert", ctx, mock.MatchedBy(func(p *domain.StudentProfile) bool {
			return len(p.Skills) == 0 && p.Skills != nil
		})).Return(int64(3), nil)

		_, err := uc.SaveProfile(ctx, 7, domain.StudentProfileUpdate{Skills: []string{}})
		assert.NoError(t, err)
		students.AssertExpectations(t)
	})

	t.Run("zero account id is rejected", func(t *testing.T) {
		uc := usecase.NewStudentUsecase(new(MockStudentRepo))

		_, err := uc.SaveProfile(ctx, 0, domain.StudentProfileUpdate{})
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})
}

func TestReplaceCollections(t *testing.T) {
	ctx := context.Background()

	t.Run("projects require a title", func(t *testing.T) {
		uc := usecase.NewStudentUsecase(new(MockStudentRepo))

		_, err := uc.ReplaceProjects(ctx, 3, []domain.Project{{Description: "no title"}})
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("certifications require a name", func(t *testing.T) {
		uc := usecase.NewStudentUsecase(new(MockStudentRepo))

		_, err := uc.ReplaceCertifications(ctx, 3, []domain.Certification{{IssuingOrganization: "AWS"}})
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("empty list clears the collection", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("ReplaceProjects", ctx, int64(3), []domain.Project{}).Return(0, nil)

		count, err := uc.ReplaceProjects(ctx, 3, []domain.Project{})
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("replacement reports the inserted count", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		items := []domain.Project{{Title: "Compiler"}, {Title: "Chat app"}}
		students.On("ReplaceProjects", ctx, int64(3), items).Return(2, nil)

		count, err := uc.ReplaceProjects(ctx, 3, items)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("listing resolves the profile from the account id", func(t *testing.T) {
		students := new(MockStudentRepo)
		uc := usecase.NewStudentUsecase(students)

		students.On("GetByAccountID", ctx, int64(7)).Return(&domain.StudentProfile{ID: 3, AccountID: 7}, nil)
		students.On("ListProjects", ctx, int64(3)).Return([]domain.Project{{ID: 1, Title: "Compiler"}}, nil)

		projects, err := uc.GetProjects(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, projects, 1)
	})
}
