package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen-backend/utils"
)

func TestLineItemDerivations(t *testing.T) {
	it := LineItem{ID: "a", Quantity: 2, UnitPrice: 100, TaxRate: 25}

	assert.InDelta(t, 200, it.Total(), 1e-9)
	assert.InDelta(t, 50, it.Tax(), 1e-9)
	assert.InDelta(t, it.Total()+it.Tax(), it.GrandTotal(), 1e-9)
}

func TestInvoiceTotals(t *testing.T) {
	inv := &Invoice{
		DiscountPct: 10,
		Items: []LineItem{
			{ID: "a", Quantity: 2, UnitPrice: 100, TaxRate: 25},
		},
	}

	assert.InDelta(t, 200, inv.Subtotal(), 1e-9)
	assert.InDelta(t, 50, inv.TotalTax(), 1e-9)
	assert.InDelta(t, 20, inv.DiscountAmount(), 1e-9)
	assert.InDelta(t, 230, inv.GrandTotal(), 1e-9)
}

func TestInvoiceTotalsEmpty(t *testing.T) {
	inv := &Invoice{DiscountPct: 50}

	assert.Zero(t, inv.Subtotal())
	assert.Zero(t, inv.TotalTax())
	assert.Zero(t, inv.DiscountAmount())
	assert.Zero(t, inv.GrandTotal())
}

func TestGrandTotalIdentity(t *testing.T) {
	inv := &Invoice{
		DiscountPct: 12.5,
		Items: []LineItem{
			{ID: "a", Quantity: 3, UnitPrice: 19.99, TaxRate: 25},
			{ID: "b", Quantity: 1, UnitPrice: 1490, TaxRate: 15},
			{ID: "c", Quantity: 0.5, UnitPrice: 1200, TaxRate: 0},
		},
	}

	assert.InDelta(t, inv.Subtotal()-inv.DiscountAmount()+inv.TotalTax(), inv.GrandTotal(), 1e-9)
}

func TestAddItem(t *testing.T) {
	inv := SampleInvoice()
	before := make([]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		before = append(before, it.ID)
	}

	item := inv.AddItem()

	require.Len(t, inv.Items, len(before)+1)
	assert.NotEmpty(t, item.ID)
	assert.NotContains(t, before, item.ID)
	assert.Equal(t, float64(1), item.Quantity)
	assert.Zero(t, item.UnitPrice)
	assert.Zero(t, item.TaxRate)
	for i, id := range before {
		assert.Equal(t, id, inv.Items[i].ID)
	}
}

func TestUpdateItemCoercesBadInput(t *testing.T) {
	inv := &Invoice{Items: []LineItem{{ID: "a", Quantity: 2, UnitPrice: 100}}}

	inv.UpdateItem("a", FieldUnitPrice, "not a number")

	assert.Zero(t, inv.Items[0].UnitPrice)
	assert.False(t, inv.GrandTotal() != inv.GrandTotal(), "grand total must not be NaN")
	assert.Zero(t, inv.GrandTotal())
}

func TestUpdateItemIdempotent(t *testing.T) {
	inv := &Invoice{Items: []LineItem{{ID: "a", Quantity: 1}}}

	inv.UpdateItem("a", FieldQuantity, "3")
	once := append([]LineItem(nil), inv.Items...)

	inv.UpdateItem("a", FieldQuantity, "3")

	assert.Equal(t, once, inv.Items)
}

func TestUpdateItemUnknownIDIsNoop(t *testing.T) {
	inv := &Invoice{Items: []LineItem{{ID: "a", Quantity: 2, UnitPrice: 50}}}
	snapshot := append([]LineItem(nil), inv.Items...)

	inv.UpdateItem("gone", FieldQuantity, "99")

	assert.Equal(t, snapshot, inv.Items)
}

func TestUpdateItemTouchesOnlyTarget(t *testing.T) {
	inv := &Invoice{Items: []LineItem{
		{ID: "a", Description: "first", Quantity: 1},
		{ID: "b", Description: "second", Quantity: 1},
	}}

	inv.UpdateItem("b", FieldDescription, "changed")

	assert.Equal(t, "first", inv.Items[0].Description)
	assert.Equal(t, "changed", inv.Items[1].Description)
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	inv := &Invoice{Items: []LineItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	inv.RemoveItem("b")

	require.Len(t, inv.Items, 2)
	assert.Equal(t, "a", inv.Items[0].ID)
	assert.Equal(t, "c", inv.Items[1].ID)
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	inv := &Invoice{Items: []LineItem{{ID: "a"}, {ID: "b"}}}
	snapshot := append([]LineItem(nil), inv.Items...)

	inv.RemoveItem("gone")

	assert.Equal(t, snapshot, inv.Items)
}

func TestDueDateFromIssueDate(t *testing.T) {
	inv := &Invoice{IssueDate: "2026-01-10", DueDays: 14}

	assert.Equal(t, "2026-01-24", inv.DueDate())
}

func TestDueDateFallsBackToNow(t *testing.T) {
	inv := &Invoice{IssueDate: "garbage", DueDays: 14}

	before := time.Now().AddDate(0, 0, 14).Format(utils.ISODate)
	got := inv.DueDate()
	after := time.Now().AddDate(0, 0, 14).Format(utils.ISODate)

	assert.Contains(t, []string{before, after}, got)
}

func TestFullNumberAndFileName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		number string
		want   string
	}{
		{"both set", "ACME", "0042", "ACME-0042"},
		{"defaults", "", "", "INV-0001"},
		{"prefix only", "ACME", "", "ACME-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invoice{NumberPrefix: tt.prefix, Number: tt.number}
			assert.Equal(t, tt.want, inv.FullNumber())
			assert.Equal(t, "Invoice-"+tt.want+".pdf", inv.FileName("pdf"))
		})
	}
}

func TestParseItemField(t *testing.T) {
	for _, name := range []string{"description", "quantity", "unitPrice", "taxRate"} {
		field, ok := ParseItemField(name)
		assert.True(t, ok, name)
		assert.Equal(t, ItemField(name), field)
	}

	_, ok := ParseItemField("grandTotal")
	assert.False(t, ok)
}

func TestSampleInvoiceIsValid(t *testing.T) {
	inv := SampleInvoice()

	seen := map[string]bool{}
	for _, it := range inv.Items {
		require.NotEmpty(t, it.ID)
		require.False(t, seen[it.ID], "duplicate id in sample")
		seen[it.ID] = true
	}
	assert.Positive(t, inv.GrandTotal())
}
