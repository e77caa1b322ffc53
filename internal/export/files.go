package export

import (
	"fmt"
	"time"
)

// ReportFilename builds a dated file name for an export artifact, e.g.
// leave_report_2024-02-01.csv.
func ReportFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02"), ext)
}
