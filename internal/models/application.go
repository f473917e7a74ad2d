package models

import "time"

// ApplicationStatus is the finite status set of a job application. The
// machine is not forward-only: any of the five statuses may transition to
// any other, so an employer can correct a mistaken decision.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
)

// ValidStatus reports whether s is one of the five recognized statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application is one user's application to one job, stored in the
// applied_<userId> sequence. At most one exists per (user, job) pair.
type Application struct {
	ID              string             `json:"id"`
	JobID           string             `json:"jobId"`
	AppliedAt       time.Time          `json:"appliedAt"`
	Status          ApplicationStatus  `json:"status"`
	StatusUpdatedAt *time.Time         `json:"statusUpdatedAt,omitempty"`
	UpdatedBy       string             `json:"updatedBy,omitempty"`
	Profile         *ApplicantSnapshot `json:"profile,omitempty"`
	CoverLetter     string             `json:"coverLetter,omitempty"`
	HasResume       bool               `json:"hasResume,omitempty"`
}

// ApplicantSnapshot is the profile copy embedded at apply time. Later
// profile edits never alter a submitted application.
type ApplicantSnapshot struct {
	FullName       string           `json:"fullName,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Location       string           `json:"location,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Experience     string           `json:"experience,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
}

// Applicant is the enriched applicant view returned to employers. Snapshot
// data wins over the live profile, which wins over the bare user record.
type Applicant struct {
	ID             string           `json:"id"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	Location       string           `json:"location,omitempty"`
	Bio            string           `json:"bio,omitempty"`
	PhotoURL       string           `json:"photoUrl,omitempty"`
	Skills         []string         `json:"skills"`
	Experience     string           `json:"experience,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	HasResume      bool             `json:"hasResume"`
	Resume         *ResumeFile      `json:"resume,omitempty"`
}

// EmployerApplication joins an application with its applicant and job for
// the employer/admin aggregation view.
type EmployerApplication struct {
	Application
	Applicant Applicant `json:"applicant"`
	Job       Job       `json:"job"`
}
