package middleware

import (
	"net/http"

	"ichipets/pkg/context"
	"ichipets/pkg/jwt"
	"ichipets/pkg/log"
	"ichipets/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 管理端路由守卫：从会话 cookie 恢复上游 token。
// 无会话或会话失效时清 cookie 并让前端跳登录页。
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(context.SessionCookie)
		if err != nil || cookie == "" {
			unauthorized(c)
			return
		}

		claims, err := jwt.ParseToken(secret, "admin", cookie)
		if err != nil {
			log.L.Info("session rejected", zap.Error(err))
			unauthorized(c)
			return
		}

		c.Set(context.CtxToken, claims.Token)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	context.ClearSession(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
		Code: http.StatusUnauthorized,
		Msg:  "unauthorized",
		Data: gin.H{"redirect": context.LoginPath},
	})
}
