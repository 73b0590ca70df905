package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ichipets/pkg/address"
	"ichipets/pkg/log"
	"ichipets/pkg/snowflake"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrIncompleteSelection 变体未选全，禁止进入下单流程
	ErrIncompleteSelection = errors.New("vui lòng chọn đầy đủ các thuộc tính")
	ErrInvalidQuantity     = errors.New("số lượng phải lớn hơn 0")
)

type IOrderService interface {
	BuildDraft(p *types.Product, sel Selection, quantity int) (*types.OrderDraft, error)
	Submit(ctx context.Context, draft *types.OrderDraft, form *types.CheckoutForm) (*types.Order, error)
	SaveProfile(ctx context.Context, visitorID string, profile *types.CustomerProfile) error
	LoadProfile(ctx context.Context, visitorID string) (*types.CustomerProfile, error)
}

type OrderService struct {
	Upstream *upstream.Client
	Address  *address.Client
	Profiles ProfileStore

	validate *validator.Validate
}

var _ IOrderService = (*OrderService)(nil)

func NewOrderService(up *upstream.Client, addr *address.Client, profiles ProfileStore) *OrderService {
	return &OrderService{
		Upstream: up,
		Address:  addr,
		Profiles: profiles,
		validate: validator.New(),
	}
}

// BuildDraft 选中商品+变体+数量 → 不可变的下单草稿。
// 变体未选全时拒绝，无任何副作用。
func (o *OrderService) BuildDraft(p *types.Product, sel Selection, quantity int) (*types.OrderDraft, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !sel.IsComplete(p) {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteSelection, strings.Join(sel.Missing(p), ", "))
	}

	// 按维度首次出现顺序摊平选择，保证草稿内容确定
	attrs := make([]types.DraftAttribute, 0, len(sel))
	for _, id := range productGroupIDs(p) {
		v := sel[id]
		attrs = append(attrs, types.DraftAttribute{
			AttributeID:   id,
			AttributeName: v.ProductAttribute.Name,
			Value:         v.Value,
			ExtraPrice:    v.ExtraPrice,
		})
	}

	unit := UnitPrice(p)
	return &types.OrderDraft{
		DraftID:    snowflake.GenDraftID(),
		ProductID:  p.ID,
		Name:       p.Name,
		Code:       p.Code,
		Category:   p.Category,
		MainImage:  p.MainImage(),
		Attributes: attrs,
		Quantity:   quantity,
		UnitPrice:  unit,
		Total:      unit * int64(quantity),
	}, nil
}

// AttributeSummary 订单行的扁平化变体描述，例如 "Size: L; Màu: Hồng"
func AttributeSummary(attrs []types.DraftAttribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.AttributeName+": "+a.Value)
	}
	return strings.Join(parts, "; ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// resolvePlace 把表单里的区划 code 解析成名称，code 为空时返回 nil
func (o *OrderService) resolvePlace(ctx context.Context, form *types.CheckoutForm) (province, district, ward *string, err error) {
	if form.ProvinceCode == "" {
		return nil, nil, nil, nil
	}
	pCode, err := strconv.Atoi(form.ProvinceCode)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid province code %q", form.ProvinceCode)
	}

	provinces, err := o.Address.Provinces(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	province = optional(address.ResolveName(provinces, pCode))

	if form.DistrictCode != "" {
		dCode, convErr := strconv.Atoi(form.DistrictCode)
		if convErr != nil {
			return nil, nil, nil, fmt.Errorf("invalid district code %q", form.DistrictCode)
		}
		districts, lookupErr := o.Address.Districts(ctx, pCode)
		if lookupErr != nil {
			return nil, nil, nil, lookupErr
		}
		district = optional(address.ResolveName(districts, dCode))

		if form.WardCode != "" {
			wCode, convErr := strconv.Atoi(form.WardCode)
			if convErr != nil {
				return nil, nil, nil, fmt.Errorf("invalid ward code %q", form.WardCode)
			}
			wards, lookupErr := o.Address.Wards(ctx, dCode)
			if lookupErr != nil {
				return nil, nil, nil, lookupErr
			}
			ward = optional(address.ResolveName(wards, wCode))
		}
	}
	return province, district, ward, nil
}

// Submit 合并草稿与收货信息并提交订单。
// 校验失败不出网；上游错误原样带回给调用方重试。
func (o *OrderService) Submit(ctx context.Context, draft *types.OrderDraft, form *types.CheckoutForm) (*types.Order, error) {
	if err := o.validate.Struct(form); err != nil {
		return nil, err
	}

	province, district, ward, err := o.resolvePlace(ctx, form)
	if err != nil {
		return nil, err
	}

	deliveryType := form.DeliveryType
	if deliveryType == "" {
		deliveryType = "self"
	}

	req := &types.CreateOrderRequest{
		CustomerName:  form.CustomerName,
		CustomerPhone: form.CustomerPhone,
		DeliveryType:  deliveryType,
		DeliveryTime:  optional(form.DeliveryTime),
		Message:       optional(form.Message),
		Province:      province,
		District:      district,
		Ward:          ward,
		Address:       optional(form.Address),
		PickupBranch:  optional(form.PickupBranch),
		Note:          optional(form.Note),
		PaymentMethod: "cod",
		Total:         draft.Total,
		Items: []types.OrderItem{
			{
				ProductID:        draft.ProductID,
				ProductName:      draft.Name,
				AttributeSummary: AttributeSummary(draft.Attributes),
				Quantity:         draft.Quantity,
				Price:            draft.UnitPrice,
				Total:            draft.Total,
			},
		},
	}

	order, err := o.Upstream.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	log.L.Info("order created",
		zap.Int("order_id", order.ID),
		zap.Int("product_id", draft.ProductID),
		zap.Int64("total", draft.Total),
	)
	return order, nil
}

func (o *OrderService) SaveProfile(ctx context.Context, visitorID string, profile *types.CustomerProfile) error {
	if visitorID == "" {
		return errors.New("missing visitor id")
	}
	return o.Profiles.Save(ctx, visitorID, profile)
}

func (o *OrderService) LoadProfile(ctx context.Context, visitorID string) (*types.CustomerProfile, error) {
	if visitorID == "" {
		return nil, nil
	}
	return o.Profiles.Load(ctx, visitorID)
}
