package middleware

import (
	"strings"

	"campus-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// 认证上下文键
const (
	ContextAdminID  = "admin_id"
	ContextUsername = "username"
)

// AuthMiddleware 管理员认证中间件
// 缺失、格式错误、签名无效或过期的令牌一律 401，不进入业务处理。
// OPTIONS 预检请求由 CORS 中间件在进入本中间件之前放行。
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawAuth := c.GetHeader("Authorization")
		if rawAuth == "" || !strings.HasPrefix(rawAuth, "Bearer ") {
			utils.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(rawAuth, "Bearer "))
		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			utils.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// GetAdminID 从请求上下文获取当前管理员ID
func GetAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUsername 从请求上下文获取当前管理员用户名
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextUsername)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}
