package middleware

import (
	"strings"

	"campus-admin/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS 跨域中间件
// 所有响应都带 CORS 头；OPTIONS 预检在认证之前直接返回 204。
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origins := cfg.CORS.Origins
		origin := c.Request.Header.Get("Origin")

		// 允许列表包含 * 时直接放开，否则回显命中的来源
		allowAll := false
		allowed := false
		for _, o := range origins {
			if o == "*" {
				allowAll = true
				break
			}
			if o == origin {
				allowed = true
			}
		}

		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		if methods := cfg.CORS.AllowMethods; len(methods) > 0 {
			c.Header("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		}

		if headers := cfg.CORS.AllowHeaders; len(headers) > 0 {
			c.Header("Access-Control-Allow-Headers", strings.Join(headers, ", "))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
