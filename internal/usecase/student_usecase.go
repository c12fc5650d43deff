package usecase

import (
	"context"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"
)

type studentUsecase struct {
	studentRepo domain.StudentRepository
}

func NewStudentUsecase(studentRepo domain.StudentRepository) domain.StudentUsecase {
	return &studentUsecase{studentRepo: studentRepo}
}

func (u *studentUsecase) GetProfile(ctx context.Context, accountID int64, viewerRole string) (*domain.StudentProfile, error) {
	profile, err := u.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	// A recruiter viewing the profile counts as a profile view. The
	// counter is best effort; a failed bump never fails the read.
	if viewerRole == domain.RoleRecruiter {
		if err := u.studentRepo.IncrementViews(ctx, accountID); err != nil {
			logger.Log.Warn("Failed to increment profile views", "account_id", accountID, "error", err)
		} else {
			profile.ProfileViews++
		}
	}

	return profile, nil
}

// SaveProfile is an idempotent upsert keyed by account id: provided
// fields overwrite, absent fields keep their prior (or zero) values.
func (u *studentUsecase) SaveProfile(ctx context.Context, accountID int64, upd domain.StudentProfileUpdate) (int64, error) {
	if accountID == 0 {
		return 0, apperror.BadRequest("account_id is required")
	}

	profile, err := u.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if profile == nil {
		profile = &domain.StudentProfile{AccountID: accountID}
	}

	applyStudentUpdate(profile, upd)

	id, err := u.studentRepo.Upsert(ctx, profile)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return id, nil
}

func applyStudentUpdate(p *domain.StudentProfile, upd domain.StudentProfileUpdate) {
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.University != nil {
		p.University = *upd.University
	}
	if upd.Major != nil {
		p.Major = *upd.Major
	}
	if upd.GraduationYear != nil {
		p.GraduationYear = *upd.GraduationYear
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.GithubURL != nil {
		p.GithubURL = *upd.GithubURL
	}
	if upd.WebsiteURL != nil {
		p.WebsiteURL = *upd.WebsiteURL
	}
	if upd.LinkedinURL != nil {
		p.LinkedinURL = *upd.LinkedinURL
	}
	if upd.InternshipTypePreference != nil {
		p.InternshipTypePreference = *upd.InternshipTypePreference
	}
	if upd.PreferredInternshipLocation != nil {
		p.PreferredInternshipLocation = *upd.PreferredInternshipLocation
	}
	if upd.PreferredLocations != nil {
		p.PreferredLocations = upd.PreferredLocations
	}
	if upd.OpenToRelocate != nil {
		p.OpenToRelocate = *upd.OpenToRelocate
	}
	if upd.MultipleWebsiteURLs != nil {
		p.MultipleWebsiteURLs = upd.MultipleWebsiteURLs
	}
	if upd.Skills != nil {
		p.Skills = upd.Skills
	}
}

func (u *studentUsecase) ListStudents(ctx context.Context) ([]domain.StudentSummary, error) {
	summaries, err := u.studentRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return summaries, nil
}

func (u *studentUsecase) GetProjects(ctx context.Context, accountID int64) ([]domain.Project, error) {
	profile, err := u.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	projects, err := u.studentRepo.ListProjects(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (u *studentUsecase) ReplaceProjects(ctx context.Context, studentID int64, items []domain.Project) (int, error) {
	if studentID == 0 {
		return 0, apperror.BadRequest("student_id is required")
	}
	for _, p := range items {
		if p.Title == "" {
			return 0, apperror.BadRequest("Project title is required")
		}
	}

	count, err := u.studentRepo.ReplaceProjects(ctx, studentID, items)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (u *studentUsecase) GetCertifications(ctx context.Context, accountID int64) ([]domain.Certification, error) {
	profile, err := u.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	certs, err := u.studentRepo.ListCertifications(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return certs, nil
}

func (u *studentUsecase) ReplaceCertifications(ctx context.Context, studentID int64, items []domain.Certification) (int, error) {
	if studentID == 0 {
		return 0, apperror.BadRequest("student_id is required")
	}
	for _, c := range items {
		if c.CertificationName == "" {
			return 0, apperror.BadRequest("Certification name is required")
		}
	}

	count, err := u.studentRepo.ReplaceCertifications(ctx, studentID, items)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
