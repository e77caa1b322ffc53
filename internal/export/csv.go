package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

// leavesHeader matches the legacy report column order.
var leavesHeader = []string{
	"Employee Name", "Leave Type", "Start Date", "End Date",
	"Reason", "Status", "Applied Date", "Approved Date",
}

const absent = "N/A"

// LeavesCSV renders the leave list as a CSV table, one row per leave.
// Absent values render as "N/A"; the leave type column uses the display
// name, not the internal key.
func LeavesCSV(s store.State) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(leavesHeader); err != nil {
		return nil, err
	}

	for _, l := range s.Leaves {
		approved := absent
		if l.ApprovedDate != nil {
			approved = l.ApprovedDate.Format(time.RFC3339)
		}
		row := []string{
			orAbsent(l.EmployeeName),
			s.LeaveTypeName(l.Type),
			orAbsent(l.StartDate),
			orAbsent(l.EndDate),
			orAbsent(l.Reason),
			orAbsent(string(l.Status)),
			formatTime(l.AppliedDate),
			approved,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orAbsent(v string) string {
	if v == "" {
		return absent
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return absent
	}
	return t.Format(time.RFC3339)
}
