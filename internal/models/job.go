package models

// Job is a posting, either supplied by the caller from the static catalog
// or employer-submitted via the custom jobs store. Job ids are opaque
// strings; the store never validates them against any catalog.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
	PostedDate  string `json:"postedDate,omitempty"`
	PostedBy    string `json:"postedBy,omitempty"`
}
