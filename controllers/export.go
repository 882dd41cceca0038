// controllers/export.go
package controllers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"
)

// 5MB cap for uploaded files (logo images, imported snapshots).
const maxUploadBytes = 5 * 1024 * 1024

type ExportController struct {
	Store services.SnapshotStore
	PDF   *services.PDFService
}

func NewExportController(store services.SnapshotStore, pdf *services.PDFService) *ExportController {
	return &ExportController{Store: store, PDF: pdf}
}

// ExportJSON downloads the invoice as a re-importable snapshot file.
func (ec *ExportController) ExportJSON(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ec.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	body, err := models.Serialize(inv)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to serialize invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+inv.FileName("json")+`"`)
	c.Data(http.StatusOK, "application/json", body)
}

// ImportJSON replaces the invoice with an uploaded snapshot file. Import
// is all-or-nothing: a rejected file leaves the current invoice as it
// was and the response says what was wrong with the upload.
func (ec *ExportController) ImportJSON(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	inv, err := models.Deserialize(raw)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(c, http.StatusBadRequest, vErr.Error())
		} else {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice file")
		}
		return
	}

	if err := saveInvoice(c.Request.Context(), ec.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ExportPDF downloads the rendered A4 invoice.
func (ec *ExportController) ExportPDF(c *gin.Context) {
	inv, err := loadInvoice(c.Request.Context(), ec.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	body, err := ec.PDF.Render(inv)
	if err != nil {
		utils.Logger.Errorw("PDF render failed", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+inv.FileName("pdf")+`"`)
	c.Data(http.StatusOK, "application/pdf", body)
}

// UploadLogo stores an uploaded image on the invoice as a data URL. The
// model keeps it opaque; only the PDF renderer ever decodes it.
func (ec *ExportController) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "Logo exceeds the 5MB limit")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	contentType := http.DetectContentType(raw)
	switch contentType {
	case "image/png", "image/jpeg", "image/gif":
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Logo must be a PNG, JPEG or GIF image")
		return
	}

	inv, err := loadInvoice(c.Request.Context(), ec.Store)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load invoice")
		return
	}

	inv.LogoDataURL = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
	if err := saveInvoice(c.Request.Context(), ec.Store, inv); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}
