package domain

import (
	"context"
	"time"
)

// StudentProfile is the student-side extension of an Account. Name and
// Email are joined from the account on reads.
type StudentProfile struct {
	ID                          int64     `json:"id"`
	AccountID                   int64     `json:"account_id"`
	Name                        string    `json:"name,omitempty"`
	Email                       string    `json:"email,omitempty"`
	Phone                       string    `json:"phone"`
	University                  string    `json:"university"`
	Major                       string    `json:"major"`
	GraduationYear              string    `json:"graduation_year"`
	Bio                         string    `json:"bio"`
	Location                    string    `json:"location"`
	GithubURL                   string    `json:"github_url"`
	WebsiteURL                  string    `json:"website_url"`
	LinkedinURL                 string    `json:"linkedin_url"`
	InternshipTypePreference    string    `json:"internship_type_preference"`
	PreferredInternshipLocation string    `json:"preferred_internship_location"`
	PreferredLocations          []string  `json:"preferred_locations"`
	OpenToRelocate              bool      `json:"open_to_relocate"`
	MultipleWebsiteURLs         []string  `json:"multiple_website_urls"`
	Skills                      []string  `json:"skills"`
	ProfileViews                int       `json:"profile_views"`
	UpdatedAt                   time.Time `json:"-"`
}

// StudentProfileUpdate carries a partial profile save. Nil fields are
// left at their prior (or zero) values; slices distinguish absence (nil)
// from an explicit empty list.
type StudentProfileUpdate struct {
	Phone                       *string  `json:"phone"`
	University                  *string  `json:"university"`
	Major                       *string  `json:"major"`
	GraduationYear              *string  `json:"graduation_year"`
	Bio                         *string  `json:"bio"`
	Location                    *string  `json:"location"`
	GithubURL                   *string  `json:"github_url"`
	WebsiteURL                  *string  `json:"website_url"`
	LinkedinURL                 *string  `json:"linkedin_url"`
	InternshipTypePreference    *string  `json:"internship_type_preference"`
	PreferredInternshipLocation *string  `json:"preferred_internship_location"`
	PreferredLocations          []string `json:"preferred_locations"`
	OpenToRelocate              *bool    `json:"open_to_relocate"`
	MultipleWebsiteURLs         []string `json:"multiple_website_urls"`
	Skills                      []string `json:"skills"`
}

// StudentSummary is the listing projection used by recruiter-facing
// endpoints.
type StudentSummary struct {
	ID                       int64    `json:"id"`
	AccountID                int64    `json:"account_id"`
	Name                     string   `json:"name"`
	Email                    string   `json:"email"`
	University               string   `json:"university"`
	Major                    string   `json:"major"`
	GraduationYear           string   `json:"graduation_year"`
	Location                 string   `json:"location"`
	Skills                   []string `json:"skills"`
	ProfileViews             int      `json:"profile_views"`
	InternshipTypePreference string   `json:"internship_type_preference"`
}

type Project struct {
	ID           int64    `json:"id"`
	StudentID    int64    `json:"-"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	VideoURL     string   `json:"video_url"`
}

type Certification struct {
	ID                  int64  `json:"id"`
	StudentID           int64  `json:"-"`
	CertificationName   string `json:"certification_name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	ExpiryDate          string `json:"expiry_date"`
	CredentialID        string `json:"credential_id"`
	CredentialURL       string `json:"credential_url"`
	CertificateFileURL  string `json:"certificate_file_url"`
	CertificateFilename string `json:"certificate_filename"`
}

type StudentRepository interface {
	// GetByAccountID returns (nil, nil) when no profile exists.
	GetByAccountID(ctx context.Context, accountID int64) (*StudentProfile, error)
	GetByID(ctx context.Context, id int64) (*StudentProfile, error)
	// Upsert persists the full profile keyed by account id and returns
	// the profile id.
	Upsert(ctx context.Context, profile *StudentProfile) (int64, error)
	List(ctx context.Context) ([]StudentSummary, error)
	IncrementViews(ctx context.Context, accountID int64) error

	ListProjects(ctx context.Context, studentID int64) ([]Project, error)
	// ReplaceProjects deletes all rows for the student and reinserts the
	// given set in one transaction. Returns the inserted count.
	ReplaceProjects(ctx context.Context, studentID int64, items []Project) (int, error)
	ListCertifications(ctx context.Context, studentID int64) ([]Certification, error)
	ReplaceCertifications(ctx context.Context, studentID int64, items []Certification) (int, error)
}

type StudentUsecase interface {
	GetProfile(ctx context.Context, accountID int64, viewerRole string) (*StudentProfile, error)
	SaveProfile(ctx context.Context, accountID int64, upd StudentProfileUpdate) (int64, error)
	ListStudents(ctx context.Context) ([]StudentSummary, error)
	GetProjects(ctx context.Context, accountID int64) ([]Project, error)
	ReplaceProjects(ctx context.Context, studentID int64, items []Project) (int, error)
	GetCertifications(ctx context.Context, accountID int64) ([]Certification, error)
	ReplaceCertifications(ctx context.Context, studentID int64, items []Certification) (int, error)
}
