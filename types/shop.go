package types

// ShopInfo 全局唯一的店铺信息
type ShopInfo struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	LogoImage    string `json:"logo_image,omitempty"`
	LinkFace     string `json:"link_face,omitempty"`
	LinkMess     string `json:"link_mess,omitempty"`
	LinkTiktok   string `json:"link_tiktok,omitempty"`
	OpeningHours string `json:"opening_hours,omitempty"`
	Description  string `json:"description,omitempty"`
}

// RequestCall 客户回电请求
type RequestCall struct {
	ID        int    `json:"id,omitempty"`
	Phone     string `json:"phone"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
