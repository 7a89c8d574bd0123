package pdfexport

import (
	"bytes"
	"fmt"
	"project-request-backend/models"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const fontFamily = "Helvetica"

// GenerateInvoice PDF-копия счета по заявке, прикладывается к письму
func GenerateInvoice(tplData models.ProjectRequestTemplateData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateInvoice panic recover: %v", r)
		}
	}()
	tplData = tplData.WithDefaults()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(fmt.Sprintf("Invoice %s", tplData.InvoiceNumber), true)
	pdf.SetAuthor(tplData.Agency.Name, true)
	pdf.AddPage()
	// базовые шрифты поддерживают только cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// шапка
	pdf.SetFillColor(67, 56, 202)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(contentW, 12, tr("Design Project Invoice"), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 10)
	half := contentW / 2
	pdf.CellFormat(half, 6, tr("Invoice #: "+tplData.InvoiceNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, tr("Date: "+tplData.SubmissionDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Due: Upon Receipt", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Terms: Estimation", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, tr, contentW, "PROJECT DETAILS", [][2]string{
		{"Project Name", tplData.ProjectName},
		{"Type", tplData.ProjectType},
		{"Description", tplData.ProjectDescription},
		{"Timeline", tplData.Timeline},
		{"Budget", tplData.Budget},
		{"References", tplData.ReferenceFiles},
	})
	writeSection(pdf, tr, contentW, "CLIENT INFORMATION", [][2]string{
		{"Name", tplData.ClientName},
		{"Email", tplData.ClientEmail},
		{"Phone", tplData.ClientPhone},
		{"Company", tplData.ClientCompany},
		{"Additional Info", tplData.AdditionalInfo},
	})

	// позиции счета
	colW := []float64{contentW * 0.4, contentW * 0.2, contentW * 0.2, contentW * 0.2}
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(238, 242, 255)
	for idx, title := range []string{"Service", "Qty", "Rate", "Amount"} {
		pdf.CellFormat(colW[idx], 8, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)
	rows := [][]string{
		{"Design Drafts", "1", "Included", "Included"},
		{"Final Deliverables", "1", tplData.Budget, tplData.Budget},
		{"Revisions", "7 Days", "Included", "$0"},
	}
	for _, row := range rows {
		for idx, value := range row {
			pdf.CellFormat(colW[idx], 8, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
	pdf.CellFormat(contentW, 6, tr("Subtotal: "+tplData.Budget), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 6, "Tax: $0.00", "", 1, "R", false, 0, "")
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(contentW, 10, tr("Total: "+tplData.Budget), "", 1, "R", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentW, 6, "Payment Methods: Card, Bank, PayPal, Wise", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// подвал
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(85, 85, 85)
	footer := []string{tplData.Agency.Name, tplData.Agency.Website, tplData.Agency.Email}
	if tplData.Agency.Phone != "" {
		footer = append(footer, tplData.Agency.Phone)
	}
	pdf.CellFormat(contentW, 5, tr(strings.Join(nonEmpty(footer), " | ")), "", 1, "C", false, 0, "")

	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования PDF счета")
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка записи PDF счета")
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, title string, rows [][2]string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(contentW, 6, title, "", 1, "L", true, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, row := range rows {
		pdf.MultiCell(contentW, 5.5, tr(row[0]+": "+row[1]), "", "L", false)
	}
	pdf.Ln(3)
}

func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			result = append(result, value)
		}
	}
	return result
}

func GetInvoiceFileName(invoiceNumber string) string {
	if invoiceNumber == "" {
		return "invoice.pdf"
	}
	return invoiceNumber + ".pdf"
}
