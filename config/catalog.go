package config

type Catalog struct {
	PageSize        int `json:"page_size" yaml:"page_size"`
	HomePageSize    int `json:"home_page_size" yaml:"home_page_size"`
	SuggestLimit    int `json:"suggest_limit" yaml:"suggest_limit"`
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func (c *Catalog) PageSizeOrDefault() int {
	if c == nil || c.PageSize <= 0 {
		return 12
	}
	return c.PageSize
}

func (c *Catalog) SuggestLimitOrDefault() int {
	if c == nil || c.SuggestLimit <= 0 {
		return 5
	}
	return c.SuggestLimit
}
