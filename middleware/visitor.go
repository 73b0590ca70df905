package middleware

import (
	"ichipets/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitorCookieMaxAge = 180 * 24 * 60 * 60

// Visitor 给店面访客发匿名ID，用来存"上次下单信息"
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(context.VisitorCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(context.VisitorCookie, id, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Set(context.CtxVisitorID, id)
		c.Next()
	}
}
