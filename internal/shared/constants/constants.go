package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Search result cap
	DefaultSearchSize = 20
	MaxSearchSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"

	// Roles
	RoleAdmin = "admin"
	RoleUser  = "user"

	// DefaultReviewer is assigned when a bucket has no registered mapping.
	DefaultReviewer = "Admin"

	// SystemUser is recorded when no identity is supplied for an operation
	// that tolerates anonymous attribution (secondary path additions).
	SystemUser = "System"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Authentication required"
	ErrMsgForbidden           = "Admin access required"
)
