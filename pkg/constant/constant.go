package constant

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"

	RefreshCookieName = "refreshToken"
)
