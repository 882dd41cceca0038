package models

import (
	"time"

	"github.com/google/uuid"

	"invoicegen-backend/utils"
)

// Party is a free-text contact block for the issuer or recipient.
// Empty fields are fine everywhere; nothing here is validated.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	OrgNo   string `json:"orgNo"`
	IBAN    string `json:"iban"`
	Swift   string `json:"swift"`
}

// LineItem is one billable row. The ID is assigned at creation time,
// stays stable across edits and is never reused after removal.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"`
}

// Total returns quantity x unit price for this row.
func (it LineItem) Total() float64 {
	return it.Quantity * it.UnitPrice
}

// Tax returns the tax owed on this row.
func (it LineItem) Tax() float64 {
	return it.Total() * it.TaxRate / 100
}

// GrandTotal returns the row total including tax.
func (it LineItem) GrandTotal() float64 {
	return it.Total() + it.Tax()
}

// Invoice is the single live aggregate for a session. Totals are never
// stored on it; they are always recomputed from Items and DiscountPct.
type Invoice struct {
	NumberPrefix string     `json:"numberPrefix"`
	Number       string     `json:"number"`
	IssueDate    string     `json:"issueDate"` // YYYY-MM-DD
	DueDays      int        `json:"dueDays"`
	Currency     string     `json:"currency"`
	DiscountPct  float64    `json:"discountPct"`
	Issuer       Party      `json:"issuer"`
	Recipient    Party      `json:"recipient"`
	Items        []LineItem `json:"items"`
	Notes        string     `json:"notes"`
	LogoDataURL  string     `json:"logoDataUrl"`
}

// ItemField enumerates the editable line item fields. A closed set
// instead of raw field names keeps mistyped updates out of the model.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "unitPrice"
	FieldTaxRate     ItemField = "taxRate"
)

// ParseItemField maps a wire name to an ItemField.
func ParseItemField(s string) (ItemField, bool) {
	switch ItemField(s) {
	case FieldDescription, FieldQuantity, FieldUnitPrice, FieldTaxRate:
		return ItemField(s), true
	}
	return "", false
}

// NewLineItem returns a fresh item with a unique id and quantity 1.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
}

// AddItem appends a new line item and returns it. Existing items and
// their ids are untouched.
func (inv *Invoice) AddItem() LineItem {
	item := NewLineItem()
	inv.Items = append(inv.Items, item)
	return item
}

// UpdateItem applies a raw field edit to the item with the given id.
// Numeric fields are coerced, so bad input becomes 0 rather than NaN.
// Editing an id that is no longer present is a silent no-op: the UI may
// still hold a row that was just removed.
func (inv *Invoice) UpdateItem(id string, field ItemField, raw string) {
	for i := range inv.Items {
		if inv.Items[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			inv.Items[i].Description = raw
		case FieldQuantity:
			inv.Items[i].Quantity = utils.ParseAmount(raw)
		case FieldUnitPrice:
			inv.Items[i].UnitPrice = utils.ParseAmount(raw)
		case FieldTaxRate:
			inv.Items[i].TaxRate = utils.ParseAmount(raw)
		}
		return
	}
}

// RemoveItem deletes the item with the given id, keeping the order of
// the remaining items. Unknown ids are a no-op.
func (inv *Invoice) RemoveItem(id string) {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}

// Subtotal sums line totals before discount and tax.
func (inv *Invoice) Subtotal() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.Total()
	}
	return sum
}

// TotalTax sums the tax across all line items.
func (inv *Invoice) TotalTax() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.Tax()
	}
	return sum
}

// DiscountAmount returns the subtotal share taken by the discount.
func (inv *Invoice) DiscountAmount() float64 {
	return inv.Subtotal() * inv.DiscountPct / 100
}

// GrandTotal is the final payable amount.
func (inv *Invoice) GrandTotal() float64 {
	return inv.Subtotal() - inv.DiscountAmount() + inv.TotalTax()
}

// DueDate derives the due date from the issue date plus the DueDays
// offset. A malformed issue date falls back to today instead of
// propagating an invalid date.
func (inv *Invoice) DueDate() string {
	return utils.AddDays(utils.ParseDateOrNow(inv.IssueDate), inv.DueDays).Format(utils.ISODate)
}

// FullNumber renders the display number, e.g. "INV-0001".
func (inv *Invoice) FullNumber() string {
	prefix := inv.NumberPrefix
	if prefix == "" {
		prefix = "INV"
	}
	number := inv.Number
	if number == "" {
		number = "0001"
	}
	return prefix + "-" + number
}

// FileName builds the export filename for the given extension.
func (inv *Invoice) FileName(ext string) string {
	return "Invoice-" + inv.FullNumber() + "." + ext
}

// BlankInvoice returns an empty invoice dated today with one blank item.
func BlankInvoice() *Invoice {
	return &Invoice{
		NumberPrefix: "INV",
		Number:       "0001",
		IssueDate:    time.Now().Format(utils.ISODate),
		DueDays:      14,
		Currency:     "USD",
		Items:        []LineItem{NewLineItem()},
	}
}

// SampleInvoice returns the built-in demo invoice used when no snapshot
// has been saved yet.
func SampleInvoice() *Invoice {
	return &Invoice{
		NumberPrefix: "INV",
		Number:       "0001",
		IssueDate:    time.Now().Format(utils.ISODate),
		DueDays:      14,
		Currency:     "NOK",
		Issuer: Party{
			Name:    "Webkraft AI",
			Address: "Kongens gate 1, 7011 Trondheim",
			Email:   "billing@webkraft.ai",
			Phone:   "+47 400 00 000",
			OrgNo:   "Org.nr 123 456 789",
			IBAN:    "NO93 0000 0000 000",
			Swift:   "DNBANOKKXXX",
		},
		Recipient: Party{
			Name:    "Acme AS",
			Address: "Fjordgata 12, 7010 Trondheim",
			Email:   "finance@acme.no",
		},
		Items: []LineItem{
			{ID: uuid.NewString(), Description: "AI integration setup", Quantity: 1, UnitPrice: 12000, TaxRate: 25},
			{ID: uuid.NewString(), Description: "Monthly subscription", Quantity: 1, UnitPrice: 1490, TaxRate: 25},
		},
		Notes: "Takk for samarbeidet! Betalingsfrist 14 dager.",
	}
}
