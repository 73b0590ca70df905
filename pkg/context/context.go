package context

import (
	"errors"
	"net/http"

	"ichipets/pkg/response"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
)

const (
	CtxToken     = "upstream_token"
	CtxVisitorID = "visitor_id"

	SessionCookie = "ichipets_session"
	VisitorCookie = "ichipets_visitor"

	LoginPath = "/admin/login"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 上游 401：清除会话并让前端跳转登录页，与调用方无关
			if errors.Is(err, upstream.ErrUnauthorized) {
				ClearSession(c)
				c.JSON(http.StatusUnauthorized, response.Response{
					Code: http.StatusUnauthorized,
					Msg:  "session expired",
					Data: gin.H{"redirect": LoginPath},
				})
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// ClearSession 清除会话 cookie，可重复调用
func ClearSession(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

func GetToken(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxToken)
	if !ok {
		return "", errors.New("token not found in context")
	}

	token, ok := v.(string)
	if !ok || token == "" {
		return "", errors.New("token has wrong type")
	}

	return token, nil
}

// GetVisitorID 返回访客ID，未设置时为空串
func GetVisitorID(c *gin.Context) string {
	v, ok := c.Get(CtxVisitorID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
