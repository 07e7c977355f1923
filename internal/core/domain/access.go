package domain

// AccessDecision is the terminal outcome of an authorization check on a
// property record.
type AccessDecision string

const (
	AccessAllowed         AccessDecision = "allowed"
	AccessUnauthenticated AccessDecision = "unauthenticated"
	AccessUnauthorized    AccessDecision = "unauthorized"
	AccessNotFound        AccessDecision = "not_found"
)
