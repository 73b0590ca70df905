package handler

import (
	"net/http"
	"time"

	"ichipets/config"
	"ichipets/pkg/context"
	"ichipets/pkg/jwt"
	"ichipets/pkg/log"
	"ichipets/pkg/response"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Config   *config.Config
	Upstream *upstream.Client
}

func (h *AuthHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/admin/login", context.Wrap(h.Login))
	r.POST("/admin/logout", context.Wrap(h.Logout))
}

func (h *AuthHandler) sessionTTL() time.Duration {
	if h.Config.Session != nil && h.Config.Session.TTLMinutes > 0 {
		return time.Duration(h.Config.Session.TTLMinutes) * time.Minute
	}
	return 12 * time.Hour
}

// Login 上游换取凭证，包进会话 cookie，凭证本身不下发
func (h *AuthHandler) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.Upstream.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	ttl := h.sessionTTL()
	session, err := jwt.GenerateToken([]byte(h.Config.Session.Secret), resp.Token, "admin", ttl)
	if err != nil {
		return err
	}

	c.SetCookie(context.SessionCookie, session, int(ttl.Seconds()), "/", "", false, true)
	log.L.Info("admin login", zap.String("username", req.Username))
	response.Success(c, gin.H{"expires_in": int(ttl.Seconds())})
	return nil
}

func (h *AuthHandler) Logout(c *gin.Context) error {
	context.ClearSession(c)
	response.Success(c, nil)
	return nil
}
