package types

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Image struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	IsMain   bool   `json:"is_main"`
}

// ProductAttribute 变体维度，例如 "Color"、"Size"
type ProductAttribute struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// AttributeValue 属于唯一商品，引用唯一变体维度
type AttributeValue struct {
	ID               int               `json:"id"`
	Value            string            `json:"value"`
	ExtraPrice       int64             `json:"extra_price"`
	ProductAttribute *ProductAttribute `json:"product_attribute"`
}

type Product struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Code            string           `json:"code,omitempty"`
	Price           int64            `json:"price"`
	CategoryID      int              `json:"category_id"`
	Category        *Category        `json:"category,omitempty"`
	Description     string           `json:"description,omitempty"`
	SortOrder       int              `json:"sort_order"`
	InStock         bool             `json:"instock"`
	Images          []Image          `json:"images"`
	AttributeValues []AttributeValue `json:"product_attribute_values"`
}

// MainImage 主图 URL：标记 is_main 的一张，否则第一张
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}
