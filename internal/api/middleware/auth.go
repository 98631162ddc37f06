package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/pkg/jwt"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/redis"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// JWTAuth JWT 인증 미들웨어.
// Authorization: Bearer <token> 에서 Access Token 을 추출·검증하고
// user_id / role 을 컨텍스트에 주입한다.
// rdb 가 nil 이면 블랙리스트 검사는 건너뛴다 (Redis 없이 기동 허용).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 타입이 올바르지 않습니다")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
			// Redis 오류 시에는 차단하지 않고 통과시킨다
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth 역할 권한 미들웨어.
// 현재 사용자가 지정된 역할 중 하나인지 확인한다.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "인증되지 않았습니다")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "접근 권한이 없습니다")
		c.Abort()
	}
}
