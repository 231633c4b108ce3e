package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a contract's weekly payment schedule as a workbook with
// a summary sheet and one row per scheduled payment.
func (g *Generator) Generate(schedule model.PaymentSchedule) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, schedule); err != nil {
		return nil, err
	}

	scheduleSheet := "Schedule"
	file.NewSheet(scheduleSheet)
	if err := g.writeSchedule(file, scheduleSheet, schedule); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, schedule model.PaymentSchedule) error {
	contract := schedule.Contract

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Contract")
	set("B1", contract.ID.String())
	set("A2", "Sponsor")
	set("B2", schedule.SponsorName)
	set("A3", "Dreamer")
	set("B3", schedule.DreamerName)
	set("A4", "Funding amount")
	set("B4", formatMoney(contract.Amount))
	set("A5", "Duration, months")
	set("B5", contract.DurationMonths)
	set("A6", "Weekly payment")
	set("B6", formatMoney(contract.WeeklyPayment))
	set("A7", "Payments received")
	set("B7", fmt.Sprintf("%d of %d", contract.PaymentsReceived, contract.TotalPayments))
	set("A8", "Status")
	set("B8", string(contract.Status))
	set("A9", "Start date")
	set("B9", formatDate(contract.StartDate))

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func (g *Generator) writeSchedule(file *excelize.File, sheet string, schedule model.PaymentSchedule) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"#", "Due date", "Amount", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, entry := range schedule.Entries {
		row := i + 2
		set(fmt.Sprintf("A%d", row), entry.Number)
		set(fmt.Sprintf("B%d", row), formatDate(entry.DueDate))
		set(fmt.Sprintf("C%d", row), formatMoney(entry.Amount))
		set(fmt.Sprintf("D%d", row), entryStatus(entry))
	}

	_ = file.SetColWidth(sheet, "A", "A", 6)
	_ = file.SetColWidth(sheet, "B", "C", 16)
	_ = file.SetColWidth(sheet, "D", "D", 10)
	return nil
}

func entryStatus(entry model.ScheduleEntry) string {
	if entry.Paid {
		return "paid"
	}
	return "pending"
}

func formatMoney(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
