package types

type Banner struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"image_url"`
	IsSubBanner bool   `json:"isSubBanner"`
	SortOrder   int    `json:"sort_order"`
}
