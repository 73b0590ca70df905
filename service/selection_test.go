package service

import (
	"testing"

	"ichipets/types"
)

func attrValue(id int, groupID int, groupName, value string, extra int64) types.AttributeValue {
	return types.AttributeValue{
		ID:         id,
		Value:      value,
		ExtraPrice: extra,
		ProductAttribute: &types.ProductAttribute{
			ID:   groupID,
			Name: groupName,
		},
	}
}

func twoGroupProduct() *types.Product {
	return &types.Product{
		ID:    5,
		Name:  "Bed",
		Price: 200000,
		AttributeValues: []types.AttributeValue{
			attrValue(1, 1, "Size", "M", 0),
			attrValue(2, 1, "Size", "L", 20000),
			attrValue(3, 2, "Màu", "Hồng", 0),
		},
	}
}

func TestSelectOverwritesGroup(t *testing.T) {
	sel := NewSelection()
	sel.Select(attrValue(1, 1, "Size", "M", 0))
	sel.Select(attrValue(2, 1, "Size", "L", 20000))

	if len(sel) != 1 {
		t.Fatalf("expected one entry per group, got %d", len(sel))
	}
	if sel[1].Value != "L" {
		t.Fatalf("expected later pick to win, got %q", sel[1].Value)
	}
}

func TestIsComplete(t *testing.T) {
	p := twoGroupProduct()

	sel := NewSelection()
	if sel.IsComplete(p) {
		t.Fatal("empty selection must be incomplete")
	}

	sel.Select(attrValue(2, 1, "Size", "L", 20000))
	if sel.IsComplete(p) {
		t.Fatal("one of two groups selected must be incomplete")
	}
	if missing := sel.Missing(p); len(missing) != 1 || missing[0] != "Màu" {
		t.Fatalf("expected missing group Màu, got %v", missing)
	}

	sel.Select(attrValue(3, 2, "Màu", "Hồng", 0))
	if !sel.IsComplete(p) {
		t.Fatal("all groups selected must be complete")
	}

	// 多余的选择也算不完整：键数必须与维度数一致
	sel.Select(attrValue(9, 3, "Chất liệu", "Bông", 0))
	if sel.IsComplete(p) {
		t.Fatal("extra group key must make the selection incomplete")
	}
}

func TestIsCompleteNoAttributes(t *testing.T) {
	p := &types.Product{ID: 1, Price: 100}
	if !NewSelection().IsComplete(p) {
		t.Fatal("product without attribute groups is trivially complete")
	}
}

func TestUnitPriceIgnoresExtraPrice(t *testing.T) {
	p := twoGroupProduct()
	if got := UnitPrice(p); got != 200000 {
		t.Fatalf("unit price must equal base price, got %d", got)
	}
}

func TestLineTotal(t *testing.T) {
	p := twoGroupProduct()
	for _, q := range []int{1, 2, 7} {
		if got := LineTotal(p, q); got != p.Price*int64(q) {
			t.Fatalf("line total for q=%d: got %d", q, got)
		}
	}
}

func TestGroupValuesOrder(t *testing.T) {
	groups := GroupValues(twoGroupProduct())
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Attribute.Name != "Size" || groups[1].Attribute.Name != "Màu" {
		t.Fatalf("groups must keep first-seen order, got %v", groups)
	}
	if len(groups[0].Values) != 2 {
		t.Fatalf("expected 2 size values, got %d", len(groups[0].Values))
	}
}
