package constants

// JWT 相关
const (
	JWTContextKey  = "jwt_user"
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)
