package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/sponsoracareer/funding-service/internal/model"
)

func TestGenerate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	schedule := model.PaymentSchedule{
		Contract: model.Contract{
			ID:               uuid.New(),
			Amount:           1000,
			DurationMonths:   1,
			WeeklyPayment:    200,
			TotalPayments:    5,
			PaymentsReceived: 2,
			Status:           model.ContractStatusActive,
			StartDate:        start,
		},
		SponsorName: "Acme Capital",
		DreamerName: "Jamie Doe",
		Entries: []model.ScheduleEntry{
			{Number: 1, DueDate: start, Amount: 200, Paid: true},
			{Number: 2, DueDate: start.AddDate(0, 0, 7), Amount: 200, Paid: true},
			{Number: 3, DueDate: start.AddDate(0, 0, 14), Amount: 200},
			{Number: 4, DueDate: start.AddDate(0, 0, 21), Amount: 200},
			{Number: 5, DueDate: start.AddDate(0, 0, 28), Amount: 200},
		},
	}

	content, err := NewGenerator().Generate(schedule)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("empty output")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	sponsor, err := file.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if sponsor != "Acme Capital" {
		t.Fatalf("Summary!B2 = %q, want Acme Capital", sponsor)
	}

	rows, err := file.GetRows("Schedule")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("schedule rows = %d, want header plus 5 entries", len(rows))
	}
	if rows[1][3] != "paid" || rows[3][3] != "pending" {
		t.Fatalf("statuses = %q/%q, want paid/pending", rows[1][3], rows[3][3])
	}
}
