package handler

import (
	"errors"
	"net/http"

	"ichipets/pkg/context"
	"ichipets/pkg/log"
	"ichipets/pkg/response"
	"ichipets/service"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Orders   service.IOrderService
	Upstream *upstream.Client
}

func (h *OrderHandler) RegisterRouter(r gin.IRouter) {
	storefront := r.Group("/v1/storefront")
	storefront.POST("/orders/draft", context.Wrap(h.Draft))
	storefront.POST("/orders", context.Wrap(h.Create))
	storefront.GET("/profile", context.Wrap(h.Profile))
	storefront.POST("/profile", context.Wrap(h.SaveProfile))
}

type draftRequest struct {
	ProductID int   `json:"product_id" binding:"required"`
	ValueIDs  []int `json:"attribute_value_ids"`
	Quantity  int   `json:"quantity"`
}

type createOrderBody struct {
	draftRequest
	Form     types.CheckoutForm `json:"form"`
	SaveInfo bool               `json:"save_info"`
}

// buildDraft 按当前商品数据重建报价，不信任客户端的任何金额
func (h *OrderHandler) buildDraft(c *gin.Context, req *draftRequest) (*types.OrderDraft, error) {
	product, err := h.Upstream.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		return nil, err
	}

	sel := service.NewSelection()
	for _, id := range req.ValueIDs {
		for _, v := range product.AttributeValues {
			if v.ID == id {
				sel.Select(v)
			}
		}
	}

	draft, err := h.Orders.BuildDraft(product, sel, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteSelection) || errors.Is(err, service.ErrInvalidQuantity) {
			return nil, response.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, err
	}
	return draft, nil
}

// Draft 结算页预览：返回报价快照，不落单
func (h *OrderHandler) Draft(c *gin.Context) error {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	draft, err := h.buildDraft(c, &req)
	if err != nil {
		return err
	}
	response.Success(c, draft)
	return nil
}

func (h *OrderHandler) Create(c *gin.Context) error {
	var body createOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	draft, err := h.buildDraft(c, &body.draftRequest)
	if err != nil {
		return err
	}

	order, err := h.Orders.Submit(c.Request.Context(), draft, &body.Form)
	if err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return response.NewError(http.StatusBadRequest, verr.Error())
		}
		return err
	}

	// 勾选"记住信息"时为下次结算预填
	if body.SaveInfo {
		if visitorID := context.GetVisitorID(c); visitorID != "" {
			profile := &types.CustomerProfile{
				CustomerName:  body.Form.CustomerName,
				CustomerPhone: body.Form.CustomerPhone,
				Address:       body.Form.Address,
				DeliveryTime:  body.Form.DeliveryTime,
				Message:       body.Form.Message,
				ProvinceCode:  body.Form.ProvinceCode,
				DistrictCode:  body.Form.DistrictCode,
				WardCode:      body.Form.WardCode,
			}
			// 预填信息保存失败不影响订单结果
			if err := h.Orders.SaveProfile(c.Request.Context(), visitorID, profile); err != nil {
				log.L.Warn("save customer profile", zap.Error(err))
			}
		}
	}

	response.Success(c, order)
	return nil
}

func (h *OrderHandler) Profile(c *gin.Context) error {
	visitorID := context.GetVisitorID(c)
	if visitorID == "" {
		response.Success(c, nil)
		return nil
	}
	profile, err := h.Orders.LoadProfile(c.Request.Context(), visitorID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *OrderHandler) SaveProfile(c *gin.Context) error {
	visitorID := context.GetVisitorID(c)
	if visitorID == "" {
		return response.NewError(http.StatusBadRequest, "missing visitor cookie")
	}
	var profile types.CustomerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.Orders.SaveProfile(c.Request.Context(), visitorID, &profile); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
