// services/pdf_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"invoicegen-backend/models"
	"invoicegen-backend/utils"
)

// PDFService renders the invoice preview as an A4 document.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// Render produces the PDF bytes for an invoice. A logo that cannot be
// decoded is skipped; rendering itself never depends on it.
func (s *PDFService) Render(inv *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	fmtMoney := func(v float64) string {
		return tr(utils.FormatMoney(v, inv.Currency))
	}

	// Header: logo and issuer on the left, invoice meta on the right.
	left := 10.0
	if s.drawLogo(pdf, inv.LogoDataURL) {
		left = 32.0
	}

	pdf.SetXY(left, 12)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(100, 7, tr(inv.Issuer.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{inv.Issuer.Address, inv.Issuer.Email, inv.Issuer.Phone, inv.Issuer.OrgNo} {
		if line != "" {
			pdf.CellFormat(100, 4.5, tr(line), "", 2, "L", false, 0, "")
		}
	}

	pdf.SetXY(130, 12)
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(70, 10, "INVOICE", "", 2, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(70, 5, tr(inv.FullNumber()), "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 5, "Date: "+inv.IssueDate, "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 5, "Due: "+inv.DueDate(), "", 2, "R", false, 0, "")

	// Bill-to block and payment details.
	pdf.SetY(52)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(100, 5, "Bill To", "", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{inv.Recipient.Name, inv.Recipient.Address, inv.Recipient.Email} {
		if line != "" {
			pdf.CellFormat(100, 5, tr(line), "", 2, "L", false, 0, "")
		}
	}
	pdf.SetXY(110, 52)
	pdf.SetFont("Arial", "", 9)
	if inv.Issuer.IBAN != "" {
		pdf.CellFormat(90, 5, tr("IBAN: "+inv.Issuer.IBAN), "", 2, "R", false, 0, "")
	}
	if inv.Issuer.Swift != "" {
		pdf.CellFormat(90, 5, tr("SWIFT/BIC: "+inv.Issuer.Swift), "", 2, "R", false, 0, "")
	}

	// Items table.
	pdf.SetY(80)
	s.drawItemsHeader(pdf)
	pdf.SetFont("Arial", "", 9)
	for _, it := range inv.Items {
		desc := it.Description
		if desc == "" {
			desc = "-"
		}
		pdf.CellFormat(80, 7, tr(desc), "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%g", it.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmtMoney(it.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%g%%", it.TaxRate), "B", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmtMoney(it.GrandTotal()), "B", 1, "R", false, 0, "")
	}

	// Totals.
	pdf.Ln(4)
	s.drawTotal(pdf, "Subtotal", fmtMoney(inv.Subtotal()), false)
	s.drawTotal(pdf, fmt.Sprintf("Discount (%g%%)", inv.DiscountPct), "- "+fmtMoney(inv.DiscountAmount()), false)
	s.drawTotal(pdf, "Tax", fmtMoney(inv.TotalTax()), false)
	s.drawTotal(pdf, "Total", fmtMoney(inv.GrandTotal()), true)

	// Notes and footer.
	if inv.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(120, 5, tr(inv.Notes), "", "L", false)
	}
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(120, 120, 120)
	if inv.Issuer.IBAN != "" || inv.Issuer.Swift != "" {
		pdf.CellFormat(190, 4, tr(strings.TrimSpace("Payment details: "+inv.Issuer.IBAN+" "+inv.Issuer.Swift)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(190, 4, "Thank you for your business.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PDFService) drawItemsHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(80, 8, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Unit", "B", 0, "R", true, 0, "")
	pdf.CellFormat(20, 8, "Tax %", "B", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "B", 1, "R", true, 0, "")
}

func (s *PDFService) drawTotal(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	if bold {
		pdf.SetFont("Arial", "B", 11)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, value, "", 1, "R", false, 0, "")
}

// drawLogo decodes a data-URL logo and places it top-left. Returns
// whether a logo was drawn.
func (s *PDFService) drawLogo(pdf *gofpdf.Fpdf, dataURL string) bool {
	imageType, raw, ok := decodeDataURL(dataURL)
	if !ok {
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	info := pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
	if info == nil || pdf.Err() {
		// A broken logo must not sink the export.
		pdf.ClearError()
		return false
	}
	pdf.ImageOptions("logo", 10, 12, 18, 18, false, opts, 0, "")
	return true
}

func decodeDataURL(dataURL string) (imageType string, raw []byte, ok bool) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(dataURL, "data:image/")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return "", nil, false
	}
	switch rest[:semi] {
	case "png":
		imageType = "PNG"
	case "jpeg", "jpg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return "", nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return "", nil, false
	}
	return imageType, raw, true
}
