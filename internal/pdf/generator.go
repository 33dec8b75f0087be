package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/wrls-charging/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a printable statement of one charge version, its charge
// elements and the licence's charge version timeline.
func (g *Generator) Generate(statement model.ChargeVersionStatement) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("Charge version %d for licence %s", statement.Version.VersionNumber, statement.Licence.LicenceRef), false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	version := statement.Version

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Charge version statement", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Licence %s, version %d", statement.Licence.LicenceRef, version.VersionNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.section(pdf, "Licence")
	g.keyValue(pdf, "Licence number", statement.Licence.LicenceRef)
	g.keyValue(pdf, "Region", safeValue(statement.Licence.RegionCode))
	g.keyValue(pdf, "Start date", model.FormatDate(statement.Licence.StartDate))
	g.keyValue(pdf, "End date", model.FormatEnd(statement.Licence.EndDate()))
	pdf.Ln(2)

	g.section(pdf, "Charge version")
	g.keyValue(pdf, "Status", string(version.Status))
	g.keyValue(pdf, "Effective from", model.FormatDate(version.DateRange.Start()))
	g.keyValue(pdf, "Effective to", model.FormatEnd(version.DateRange.End()))
	g.keyValue(pdf, "Scheme", strings.ToUpper(string(version.Scheme)))
	g.keyValue(pdf, "Source", strings.ToUpper(string(version.Source)))
	if version.ChangeReason != nil {
		g.keyValue(pdf, "Change reason", tr(*version.ChangeReason))
	}
	pdf.Ln(2)

	g.section(pdf, "Charge elements")
	elementWidths := []float64{70, 25, 25, 20, 25, 45, 28, 29}
	g.tableRow(pdf, []string{"Description", "Source", "Season", "Loss", "Purpose", "Abstraction period", "Authorised", "Billable"}, elementWidths, true)
	if len(version.ChargeElements) == 0 {
		pdf.CellFormat(0, 8, "No charge elements", "1", 1, "L", false, 0, "")
	}
	for _, element := range version.ChargeElements {
		g.tableRow(pdf, []string{
			tr(safeValue(element.Description)),
			element.Source,
			element.Season,
			element.Loss,
			element.PurposeCode,
			formatAbstractionPeriod(element.AbstractionPeriod),
			formatQuantity(&element.AuthorisedAnnualQuantity),
			formatQuantity(element.BillableAnnualQuantity),
		}, elementWidths, false)
	}
	pdf.Ln(4)

	g.section(pdf, "Licence timeline")
	timelineWidths := []float64{25, 40, 40, 40, 40, 82}
	g.tableRow(pdf, []string{"Version", "Start date", "End date", "Status", "Scheme", "Change reason"}, timelineWidths, true)
	for _, entry := range statement.Timeline {
		reason := ""
		if entry.ChangeReason != nil {
			reason = tr(*entry.ChangeReason)
		}
		g.tableRow(pdf, []string{
			fmt.Sprintf("%d", entry.VersionNumber),
			model.FormatDate(entry.DateRange.Start()),
			model.FormatEnd(entry.DateRange.End()),
			string(entry.Status),
			strings.ToUpper(string(entry.Scheme)),
			reason,
		}, timelineWidths, false)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", statement.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *Generator) keyValue(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(45, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *Generator) tableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 9)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatQuantity(value *float64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f Ml", *value)
}

func formatAbstractionPeriod(p model.AbstractionPeriod) string {
	return fmt.Sprintf("%02d/%02d - %02d/%02d", p.StartDay, p.StartMonth, p.EndDay, p.EndMonth)
}
