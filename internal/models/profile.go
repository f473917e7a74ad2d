package models

import "time"

// Profile holds a user's free-form profile data, stored whole under
// profile_<userId>. Sub-records are owned by the profile and have no
// independent lifecycle.
type Profile struct {
	FullName       string           `json:"fullName,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Location       string           `json:"location,omitempty"`
	Bio            string           `json:"bio,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Experience     string           `json:"experience,omitempty"`
	PhotoURL       string           `json:"photoUrl,omitempty"`
	ResumeFile     *ResumeFile      `json:"resumeFile,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
}

// ResumeFile is a résumé stored inline in the profile record.
type ResumeFile struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty"`
	Data string `json:"data,omitempty"`
}

// WorkExperience is a profile sub-record with a generated id.
type WorkExperience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Company     string    `json:"company,omitempty"`
	Period      string    `json:"period,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Education is a profile sub-record with a generated id.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree,omitempty"`
	School      string    `json:"school,omitempty"`
	Period      string    `json:"period,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
