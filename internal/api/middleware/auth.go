package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"worktrack/internal/dto"
	"worktrack/internal/pkg/jwt"
	"worktrack/pkg/constants"
	"worktrack/pkg/responses"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, 401, "缺少Authorization Header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, 401, "Authorization格式错误")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		// 检查Token类型(必须是AccessToken)
		if claims.Type != constants.JWTTypeAccess {
			responses.ErrorWithCode(c, 401, "无效的Token类型")
			c.Abort()
			return
		}

		userInfo := &dto.UserInfo{
			UserID:      claims.UserID,
			Name:        claims.Name,
			Email:       claims.Email,
			Authorities: claims.Authorities,
		}
		c.Set("user", userInfo)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// RequireRoles 角色校验中间件, 持有任一指定角色即放行
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			responses.ErrorWithCode(c, 401, "未认证")
			c.Abort()
			return
		}

		if !lo.Some(user.Authorities, roles) {
			responses.ErrorWithCode(c, 403, "没有操作权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetCurrentUser 从context获取当前用户
func GetCurrentUser(c *gin.Context) *dto.UserInfo {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*dto.UserInfo)
	if !ok {
		return nil
	}
	return user
}
