package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ApprovalMemoData carries everything the approval memo renders.
type ApprovalMemoData struct {
	EmployeeName   string
	EmployeeCode   string
	Department     string
	LeaveType      string
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      float64
	Reason         string
	FirstApprover  string
	SecondApprover string
	ApprovedAt     time.Time
}

// RenderApprovalMemo renders the leave approval memo as a PDF.
func RenderApprovalMemo(data ApprovalMemoData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Approval Memo")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", data.EmployeeName, data.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", data.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave Type: %s", data.LeaveType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s (%.1f days)",
		data.StartDate.Format("2006-01-02"), data.EndDate.Format("2006-01-02"), data.TotalDays))
	pdf.Ln(7)
	if data.Reason != "" {
		pdf.MultiCell(0, 8, fmt.Sprintf("Reason: %s", data.Reason), "", "L", false)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 10, "Approvals")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("First level: %s", data.FirstApprover))
	pdf.Ln(7)
	if data.SecondApprover != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Second level: %s", data.SecondApprover))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Approved at: %s", data.ApprovedAt.Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render approval memo: %w", err)
	}
	return buf.Bytes(), nil
}
