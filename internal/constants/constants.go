package constants

import "time"

// Context and session keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyPrincipal = "principal"
	ContextKeyToken     = "auth_token"
	SessionKeyToken     = "token"
	SessionCookieName   = "hiring_session"
)

// Authentication
const (
	MinPasswordLength = 8
	DefaultTokenTTL   = 7 * 24 * time.Hour
	BearerPrefix      = "Bearer "
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Dashboard
const (
	RecentApplicationsLimit = 10
)
