package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/wrls-charging/internal/model"
)

const (
	summarySheet  = "Summary"
	historySheet  = "Agreement history"
	versionsSheet = "Charge versions"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the agreement history of a licence and the charge versions
// overlapping the same period as an xlsx workbook.
func (g *Generator) Generate(report model.ChargeHistoryReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, report)

	if _, err := file.NewSheet(historySheet); err != nil {
		return nil, err
	}
	g.writeHistory(file, report)

	if _, err := file.NewSheet(versionsSheet); err != nil {
		return nil, err
	}
	g.writeVersions(file, report)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, report model.ChargeHistoryReport) {
	set := cellSetter(file, summarySheet)

	set("A1", "Licence")
	set("B1", report.Licence.LicenceRef)
	set("A2", "Region")
	set("B2", report.Licence.RegionCode)
	set("A3", "Period start")
	set("B3", model.FormatDate(report.Period.Start()))
	set("A4", "Period end")
	set("B4", model.FormatEnd(report.Period.End()))
	set("A5", "Segments")
	set("B5", len(report.Segments))
	set("A6", "Charge versions")
	set("B6", len(report.ChargeVersions))
	set("A7", "Generated")
	set("B7", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05"))

	_ = file.SetColWidth(summarySheet, "A", "A", 20)
	_ = file.SetColWidth(summarySheet, "B", "B", 24)
}

func (g *Generator) writeHistory(file *excelize.File, report model.ChargeHistoryReport) {
	set := cellSetter(file, historySheet)
	writeHeader(set, "Start date", "End date", "Agreements", "Descriptions")

	for i, segment := range report.Segments {
		row := i + 2
		descriptions := make([]string, 0, len(segment.Agreements))
		for _, agreement := range segment.Agreements {
			if agreement.Description != "" {
				descriptions = append(descriptions, agreement.Description)
			}
		}
		set(fmt.Sprintf("A%d", row), model.FormatDate(segment.DateRange.Start()))
		set(fmt.Sprintf("B%d", row), model.FormatEnd(segment.DateRange.End()))
		set(fmt.Sprintf("C%d", row), strings.Join(segment.Codes(), ", "))
		set(fmt.Sprintf("D%d", row), strings.Join(descriptions, "; "))
	}

	_ = file.SetColWidth(historySheet, "A", "B", 14)
	_ = file.SetColWidth(historySheet, "C", "C", 24)
	_ = file.SetColWidth(historySheet, "D", "D", 60)
}

func (g *Generator) writeVersions(file *excelize.File, report model.ChargeHistoryReport) {
	set := cellSetter(file, versionsSheet)
	writeHeader(set, "Version", "Start date", "End date", "Status", "Scheme", "Source", "Change reason")

	for i, version := range report.ChargeVersions {
		row := i + 2
		set(fmt.Sprintf("A%d", row), version.VersionNumber)
		set(fmt.Sprintf("B%d", row), model.FormatDate(version.DateRange.Start()))
		set(fmt.Sprintf("C%d", row), model.FormatEnd(version.DateRange.End()))
		set(fmt.Sprintf("D%d", row), string(version.Status))
		set(fmt.Sprintf("E%d", row), strings.ToUpper(string(version.Scheme)))
		set(fmt.Sprintf("F%d", row), strings.ToUpper(string(version.Source)))
		set(fmt.Sprintf("G%d", row), formatString(version.ChangeReason))
	}

	_ = file.SetColWidth(versionsSheet, "A", "A", 10)
	_ = file.SetColWidth(versionsSheet, "B", "F", 14)
	_ = file.SetColWidth(versionsSheet, "G", "G", 40)
}

func cellSetter(file *excelize.File, sheet string) func(cell string, value interface{}) {
	return func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}
}

func writeHeader(set func(string, interface{}), headers ...string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
