package handler

import (
	"net/http"

	"ichipets/pkg/context"
	"ichipets/pkg/log"
	"ichipets/pkg/response"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RequestCallHandler struct {
	Upstream *upstream.Client
}

func (h *RequestCallHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/storefront/request-calls", context.Wrap(h.Create))
}

type requestCallBody struct {
	Phone string `json:"phone" binding:"required"`
	Note  string `json:"note"`
}

// Create 客户留电话求回拨
func (h *RequestCallHandler) Create(c *gin.Context) error {
	var body requestCallBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return response.NewError(http.StatusBadRequest, "phone is required")
	}
	call := &types.RequestCall{Phone: body.Phone, Note: body.Note}
	if err := h.Upstream.CreateRequestCall(c.Request.Context(), call); err != nil {
		return err
	}
	log.L.Info("request call created", zap.String("phone", body.Phone))
	response.Success(c, nil)
	return nil
}
