package constants

// SentinelNoReply marks a requester created without a real contact
// address. Notification dispatch is skipped entirely for this value
// rather than attempted and failed.
const SentinelNoReply = "noreply@local"

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUsername = "username"
	ContextKeyStaff    = "staff"
)
