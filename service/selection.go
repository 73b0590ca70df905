package service

import "ichipets/types"

// Selection 变体选择状态：每个变体维度至多一个选中值
type Selection map[int]types.AttributeValue

func NewSelection() Selection {
	return make(Selection)
}

// Select 覆盖该维度之前的选择
func (s Selection) Select(v types.AttributeValue) {
	if v.ProductAttribute == nil {
		return
	}
	s[v.ProductAttribute.ID] = v
}

func productGroupIDs(p *types.Product) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, v := range p.AttributeValues {
		if v.ProductAttribute == nil {
			continue
		}
		if _, ok := seen[v.ProductAttribute.ID]; ok {
			continue
		}
		seen[v.ProductAttribute.ID] = struct{}{}
		ids = append(ids, v.ProductAttribute.ID)
	}
	return ids
}

// IsComplete 商品的每个变体维度都有选中值，且没有多余的选择
func (s Selection) IsComplete(p *types.Product) bool {
	ids := productGroupIDs(p)
	if len(s) != len(ids) {
		return false
	}
	for _, id := range ids {
		if _, ok := s[id]; !ok {
			return false
		}
	}
	return true
}

// Missing 未选择的维度名，用于校验提示
func (s Selection) Missing(p *types.Product) []string {
	var missing []string
	seen := make(map[int]struct{})
	for _, v := range p.AttributeValues {
		if v.ProductAttribute == nil {
			continue
		}
		id := v.ProductAttribute.ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := s[id]; !ok {
			missing = append(missing, v.ProductAttribute.Name)
		}
	}
	return missing
}

// UnitPrice 单价取商品基础价。
// 变体的 extra_price 随数据带过来但当前不参与计价。
func UnitPrice(p *types.Product) int64 {
	return p.Price
}

// LineTotal 单价 × 数量，数量最小为 1
func LineTotal(p *types.Product, quantity int) int64 {
	return UnitPrice(p) * int64(quantity)
}

// AttributeGroup 按维度归组的变体值，保持首次出现顺序
type AttributeGroup struct {
	Attribute types.ProductAttribute `json:"attribute"`
	Values    []types.AttributeValue `json:"values"`
}

func GroupValues(p *types.Product) []AttributeGroup {
	index := make(map[int]int)
	var groups []AttributeGroup
	for _, v := range p.AttributeValues {
		if v.ProductAttribute == nil {
			continue
		}
		id := v.ProductAttribute.ID
		pos, ok := index[id]
		if !ok {
			pos = len(groups)
			index[id] = pos
			groups = append(groups, AttributeGroup{Attribute: *v.ProductAttribute})
		}
		groups[pos].Values = append(groups[pos].Values, v)
	}
	return groups
}
