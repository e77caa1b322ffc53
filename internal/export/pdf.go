package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

// LeavesReportPDF writes a summary report: aggregate counts followed by
// the full leaves table.
func LeavesReportPDF(s store.State, path string, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Employees: %d    Leaves: %d    Notifications: %d",
		len(s.Employees), len(s.Leaves), len(s.Notifications)))
	pdf.Ln(6)

	for _, line := range []struct {
		label  string
		counts map[string]int
	}{
		{"By status", stringKeyed(store.CountByStatus(s))},
		{"By type", displayKeyed(s, store.CountByType(s))},
		{"By department", store.CountByDepartment(s)},
	} {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s", line.label, formatCounts(line.counts)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Leaves")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range s.Leaves {
		pdf.Cell(0, 5, fmt.Sprintf("%s  %s  %s to %s  [%s]  %s",
			orAbsent(l.EmployeeName),
			s.LeaveTypeName(l.Type),
			orAbsent(l.StartDate),
			orAbsent(l.EndDate),
			l.Status,
			orAbsent(l.Reason)))
		pdf.Ln(5)
	}

	return pdf.OutputFileAndClose(path)
}

func stringKeyed[K ~string](counts map[K]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}

func displayKeyed(s store.State, counts map[string]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[s.LeaveTypeName(k)] = v
	}
	return out
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	line := ""
	for i, k := range keys {
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s %d", k, counts[k])
	}
	if line == "" {
		return "none"
	}
	return line
}
