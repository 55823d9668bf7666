package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	domainLoan "fundo-loans/internal/domain/loan"

	"github.com/xuri/excelize/v2"
)

const sheet = "Loans"

var header = []string{"Loan ID", "Applicant", "Amount", "Current Balance", "Status", "Created At"}

type Exporter struct{ loans domainLoan.Repository }

func NewExporter(loans domainLoan.Repository) *Exporter { return &Exporter{loans: loans} }

// Filter mirrors the listing filters; exports are never paginated.
type Filter struct {
	ApplicantName string
	StartDate     *time.Time
	EndDate       *time.Time
}

// WriteXLSX streams a workbook of every matching loan to w and returns
// the row count (excluding the header).
func (e *Exporter) WriteXLSX(ctx context.Context, f Filter, w io.Writer) (int, error) {
	loans, _, err := e.loans.List(ctx, domainLoan.ListFilter{
		ApplicantName: f.ApplicantName,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
	})
	if err != nil {
		log.Printf("export loans: %v", err)
		return 0, domainLoan.ErrStorage
	}

	wb := excelize.NewFile()
	defer wb.Close()
	idx, err := wb.NewSheet(sheet)
	if err != nil {
		return 0, err
	}
	wb.SetActiveSheet(idx)
	_ = wb.DeleteSheet("Sheet1")

	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := wb.SetCellValue(sheet, cell, name); err != nil {
			return 0, err
		}
	}
	for i := range loans {
		l := &loans[i]
		row := []any{
			l.ID,
			l.ApplicantName,
			l.Amount.String(),
			l.CurrentBalance.String(),
			string(l.Status),
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := wb.SetCellValue(sheet, cell, v); err != nil {
				return 0, err
			}
		}
	}

	if err := wb.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return len(loans), nil
}

// Filename returns a timestamped attachment name.
func Filename(now time.Time) string {
	return fmt.Sprintf("loans-%s.xlsx", now.UTC().Format("20060102-150405"))
}
