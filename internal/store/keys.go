package store

// Storage layout. Collection keys are fixed; per-user namespaces are keyed
// by user id and must be deleted one by one when the owning user goes away.
const (
	usersKey       = "users"
	sessionKey     = "session"
	customJobsKey  = "custom_jobs"
	reviewsKey     = "company_reviews"
	resetTokensKey = "reset_tokens"
	analyticsKey   = "job_analytics"
)

func savedKey(userID string) string    { return "saved_" + userID }
func appliedKey(userID string) string  { return "applied_" + userID }
func profileKey(userID string) string  { return "profile_" + userID }
func settingsKey(userID string) string { return "settings_" + userID }
