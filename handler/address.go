package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"ichipets/pkg/address"
	"ichipets/pkg/context"
	"ichipets/pkg/response"
	"ichipets/service"
	"ichipets/types"

	"github.com/gin-gonic/gin"
)

// AddressHandler 行政区划级联查询，数据来自公共 API，走缓存
type AddressHandler struct {
	Address *address.Client
	Ref     *service.RefCache
}

func (h *AddressHandler) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/address")
	g.GET("/provinces", context.Wrap(h.Provinces))
	g.GET("/provinces/:code/districts", context.Wrap(h.Districts))
	g.GET("/districts/:code/wards", context.Wrap(h.Wards))
}

func (h *AddressHandler) Provinces(c *gin.Context) error {
	ctx := c.Request.Context()
	var units []types.AdminUnit
	err := h.Ref.GetJSON(ctx, "addr:provinces", &units, func() (interface{}, error) {
		return h.Address.Provinces(ctx)
	})
	if err != nil {
		return err
	}
	response.Success(c, units)
	return nil
}

func (h *AddressHandler) Districts(c *gin.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid province code")
	}
	ctx := c.Request.Context()
	var units []types.AdminUnit
	err = h.Ref.GetJSON(ctx, fmt.Sprintf("addr:districts:%d", code), &units, func() (interface{}, error) {
		return h.Address.Districts(ctx, code)
	})
	if err != nil {
		return err
	}
	response.Success(c, units)
	return nil
}

func (h *AddressHandler) Wards(c *gin.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid district code")
	}
	ctx := c.Request.Context()
	var units []types.AdminUnit
	err = h.Ref.GetJSON(ctx, fmt.Sprintf("addr:wards:%d", code), &units, func() (interface{}, error) {
		return h.Address.Wards(ctx, code)
	})
	if err != nil {
		return err
	}
	response.Success(c, units)
	return nil
}
