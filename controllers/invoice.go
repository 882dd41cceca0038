// controllers/invoice.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"
)

// loadInvoice returns the persisted invoice, or the built-in sample when
// nothing has been saved yet. A snapshot that no longer deserializes is
// treated the same as a missing one rather than bricking the session.
// The sample is saved immediately so its item ids stay stable across
// requests.
func loadInvoice(ctx context.Context, store services.SnapshotStore) (*models.Invoice, error) {
	body, found, err := store.Load(ctx, models.SnapshotKey)
	if err != nil {
		return nil, err
	}
	if found {
		inv, err := models.Deserialize([]byte(body))
		if err == nil {
			return inv, nil
		}
		utils.Logger.Warnw("stored snapshot is invalid, falling back to sample", "error", err)
	}

	inv := models.SampleInvoice()
	if err := saveInvoice(ctx, store, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func saveInvoice(ctx context.Context, store services.SnapshotStore, inv *models.Invoice) error {
	body, err := models.Serialize(inv)
	if err != nil {
		return err
	}
	return store.Save(ctx, models.SnapshotKey, string(body))
}

// UpdateItemInput is one raw field edit coming from the form. Value is
// always a string; numeric coercion happens in the model.
type UpdateItemInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type InvoiceController struct {
	Store services.SnapshotStore
}

func NewInvoiceController(store services.SnapshotStore) *InvoiceController {
	return &InvoiceController{Store: store}
}

// GetInvoice returns the current invoice.
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ic.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ReplaceInvoice swaps the whole invoice for the request body. The body
// goes through the same all-or-nothing validation as an imported file,
// so a bad payload leaves the stored invoice untouched.
func (ic *InvoiceController) ReplaceInvoice(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	inv, err := models.Deserialize(raw)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(c, http.StatusBadRequest, vErr.Error())
		} else {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice payload")
		}
		return
	}

	if err := saveInvoice(c.Request.Context(), ic.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ResetInvoice restores the built-in sample.
func (ic *InvoiceController) ResetInvoice(c *gin.Context) {
	inv := models.SampleInvoice()
	if err := saveInvoice(c.Request.Context(), ic.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// AddItem appends a fresh line item.
func (ic *InvoiceController) AddItem(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ic.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	item := inv.AddItem()
	if err := saveInvoice(c.Request.Context(), ic.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem applies one raw field edit to a line item. Editing an item
// that was already removed is not an error; the invoice simply comes
// back unchanged.
func (ic *InvoiceController) UpdateItem(c *gin.Context) {
	var input UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	field, ok := models.ParseItemField(input.Field)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown item field: "+input.Field)
		return
	}

	inv, err := loadInvoice(c.Request.Context(), ic.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	inv.UpdateItem(c.Param("id"), field, input.Value)
	if err := saveInvoice(c.Request.Context(), ic.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// RemoveItem deletes a line item, preserving the order of the rest.
func (ic *InvoiceController) RemoveItem(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ic.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	inv.RemoveItem(c.Param("id"))
	if err := saveInvoice(c.Request.Context(), ic.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// LineTotals mirrors one preview table row.
type LineTotals struct {
	ID         string  `json:"id"`
	Total      float64 `json:"total"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grandTotal"`
	Formatted  string  `json:"formatted"`
}

// GetTotals returns every derived value the preview needs, recomputed
// from the current items on each call.
func (ic *InvoiceController) GetTotals(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ic.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	lines := make([]LineTotals, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, LineTotals{
			ID:         it.ID,
			Total:      it.Total(),
			Tax:        it.Tax(),
			GrandTotal: it.GrandTotal(),
			Formatted:  utils.FormatMoney(it.GrandTotal(), inv.Currency),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal":       inv.Subtotal(),
		"totalTax":       inv.TotalTax(),
		"discountAmount": inv.DiscountAmount(),
		"grandTotal":     inv.GrandTotal(),
		"dueDate":        inv.DueDate(),
		"lines":          lines,
		"formatted": gin.H{
			"subtotal":       utils.FormatMoney(inv.Subtotal(), inv.Currency),
			"totalTax":       utils.FormatMoney(inv.TotalTax(), inv.Currency),
			"discountAmount": utils.FormatMoney(inv.DiscountAmount(), inv.Currency),
			"grandTotal":     utils.FormatMoney(inv.GrandTotal(), inv.Currency),
		},
	})
}
