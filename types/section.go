package types

// SectionItem 描述区块的一行内容：文本或图片 URL
type SectionItem struct {
	ID        int    `json:"id,omitempty"`
	Content   string `json:"content"`
	IsImage   bool   `json:"is_image"`
	SortOrder *int   `json:"sort_order,omitempty"`
}

// ProductSection 商品详情的描述区块，整树替换式保存
type ProductSection struct {
	ID        int           `json:"id,omitempty"`
	Title     string        `json:"title"`
	SortOrder *int          `json:"sort_order,omitempty"`
	Items     []SectionItem `json:"items"`
}
