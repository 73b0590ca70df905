package types

// DraftAttribute 下单时刻选中的一个变体值快照
type DraftAttribute struct {
	AttributeID   int    `json:"attribute_id"`
	AttributeName string `json:"attribute_name"`
	Value         string `json:"value"`
	ExtraPrice    int64  `json:"extra_price"`
}

// OrderDraft 结算页的唯一交接值，构造后不再修改
type OrderDraft struct {
	DraftID    int64            `json:"draft_id"`
	ProductID  int              `json:"product_id"`
	Name       string           `json:"name"`
	Code       string           `json:"code"`
	Category   *Category        `json:"category"`
	MainImage  string           `json:"main_image"`
	Attributes []DraftAttribute `json:"attributes"`
	Quantity   int              `json:"quantity"`
	UnitPrice  int64            `json:"unit_price"`
	Total      int64            `json:"total"`
}

// CheckoutForm 收货/配送信息表单
type CheckoutForm struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	DeliveryType  string `json:"delivery_type" validate:"omitempty,oneof=self gift"`
	DeliveryTime  string `json:"delivery_time"`
	Message       string `json:"message_on_cake"`
	ProvinceCode  string `json:"province_code"`
	DistrictCode  string `json:"district_code"`
	WardCode      string `json:"ward_code"`
	Address       string `json:"address" validate:"required"`
	PickupBranch  string `json:"pickup_branch"`
	Note          string `json:"note"`
}

type OrderItem struct {
	ProductID        int    `json:"product_id"`
	ProductName      string `json:"product_name"`
	AttributeSummary string `json:"attribute_summary"`
	Quantity         int    `json:"quantity"`
	Price            int64  `json:"price"`
	Total            int64  `json:"total"`
}

// CreateOrderRequest 提交给上游 /api/orders 的载荷
type CreateOrderRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	DeliveryType  string      `json:"delivery_type"`
	DeliveryTime  *string     `json:"delivery_time"`
	Message       *string     `json:"message_on_cake"`
	Province      *string     `json:"province"`
	District      *string     `json:"district"`
	Ward          *string     `json:"ward"`
	Address       *string     `json:"address"`
	PickupBranch  *string     `json:"pickup_branch"`
	Note          *string     `json:"note"`
	PaymentMethod string      `json:"payment_method"`
	Total         int64       `json:"total"`
	Items         []OrderItem `json:"items"`
}

type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	DeliveryType  string      `json:"delivery_type"`
	Status        string      `json:"status"`
	DeliveryTime  string      `json:"delivery_time,omitempty"`
	Province      string      `json:"province,omitempty"`
	District      string      `json:"district,omitempty"`
	Ward          string      `json:"ward,omitempty"`
	Address       string      `json:"address,omitempty"`
	PickupBranch  string      `json:"pickup_branch,omitempty"`
	Note          string      `json:"note,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Total         int64       `json:"total"`
	Items         []OrderItem `json:"items"`
	CreatedAt     string      `json:"created_at,omitempty"`
}

// CustomerProfile 访客上次下单使用的联系/地址信息，仅用于预填
type CustomerProfile struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	DeliveryTime  string `json:"delivery_time"`
	Message       string `json:"message_on_cake"`
	ProvinceCode  string `json:"province_code"`
	DistrictCode  string `json:"district_code"`
	WardCode      string `json:"ward_code"`
}
