package types

// AdminUnit 行政区划条目：省/县/乡共用同一形状
type AdminUnit struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}
