package domain

// AuthMethod indicates how the issue tracker is accessed.
type AuthMethod string

const (
	// AuthMethodNone means anonymous access (public repositories only).
	AuthMethodNone AuthMethod = "none"
	// AuthMethodPAT means a personal access token.
	AuthMethodPAT AuthMethod = "pat"
)
