// Package store implements the local authorization and application-state
// stores of the job portal: user identity and the session singleton,
// per-user profiles, the job-application lifecycle, saved jobs, company
// reviews, password-reset tokens, usage analytics, and employer-posted
// jobs. Everything persists as JSON in a flat key/value namespace.
//
// There is no transaction coordinator. Every operation reads its whole
// key, mutates in memory, and writes the whole key back; calls within one
// process are serialized, but writers sharing the same storage from
// separate processes can lose updates. A failed operation leaves the prior
// state untouched.
package store
