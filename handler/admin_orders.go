package handler

import (
	"net/http"
	"strconv"

	"ichipets/pkg/context"
	"ichipets/pkg/response"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
)

// AdminOrderHandler 订单与回电请求的后台管理
type AdminOrderHandler struct {
	Upstream *upstream.Client
}

func (h *AdminOrderHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/orders", context.Wrap(h.Orders))
	r.PUT("/orders/:id", context.Wrap(h.UpdateOrder))
	r.DELETE("/orders/:id", context.Wrap(h.DeleteOrder))

	r.GET("/request-calls", context.Wrap(h.RequestCalls))
	r.DELETE("/request-calls/:id", context.Wrap(h.DeleteRequestCall))
}

func (h *AdminOrderHandler) Orders(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	orders, err := h.Upstream.Orders(c.Request.Context(), token)
	if err != nil {
		return err
	}
	response.Success(c, orders)
	return nil
}

func (h *AdminOrderHandler) UpdateOrder(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid order id")
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.Upstream.UpdateOrder(c.Request.Context(), token, id, patch); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminOrderHandler) DeleteOrder(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid order id")
	}
	if err := h.Upstream.DeleteOrder(c.Request.Context(), token, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminOrderHandler) RequestCalls(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	calls, err := h.Upstream.RequestCalls(c.Request.Context(), token)
	if err != nil {
		return err
	}
	response.Success(c, calls)
	return nil
}

func (h *AdminOrderHandler) DeleteRequestCall(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request call id")
	}
	if err := h.Upstream.DeleteRequestCall(c.Request.Context(), token, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
