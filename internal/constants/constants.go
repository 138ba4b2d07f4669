package constants

// Session
const (
	SessionCookieName = "list_session"
	ContextKeyUserID  = "user_id"
)

// Validation limits
const (
	MaxUsernameLength = 250
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
