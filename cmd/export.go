package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the leaves table as CSV or the full state as a JSON backup",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		var data []byte
		var prefix, ext string

		switch exportFormat {
		case "csv":
			prefix, ext = "leave_report", "csv"
			data, err = export.LeavesCSV(app.store.State())
		case "json":
			prefix, ext = "leave_management_backup", "json"
			data, err = app.store.ExportSnapshot()
		default:
			log.Fatalf("unknown export format %q (use csv or json)", exportFormat)
		}
		if err != nil {
			log.Fatalf("failed to build export: %v", err)
		}

		out := exportOut
		if out == "" {
			out = filepath.Join(app.cfg.Export.Dir, export.ReportFilename(prefix, ext, time.Now()))
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			log.Fatalf("failed to write export: %v", err)
		}

		fmt.Printf("Exported %s to %s\n", exportFormat, out)
	},
}

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON backup",
	Long:  `Replace the entire persisted state from a JSON backup file. Requires --yes: the current data is overwritten wholesale, no merging.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("failed to read import file: %v", err)
		}

		if !importYes {
			log.Fatalf("refusing to import without --yes: current data would be overwritten")
		}

		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		if err := app.store.ImportSnapshot(raw); err != nil {
			log.Fatalf("import failed: %v", err)
		}

		s := app.store.State()
		fmt.Printf("Imported %d employees, %d leaves, %d notifications\n",
			len(s.Employees), len(s.Leaves), len(s.Notifications))
	},
}

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF leave report",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		out := reportOut
		if out == "" {
			out = filepath.Join(app.cfg.Export.Dir, export.ReportFilename("leave_report", "pdf", time.Now()))
		}

		if err := export.LeavesReportPDF(app.store.State(), out, time.Now()); err != nil {
			log.Fatalf("failed to generate report: %v", err)
		}

		fmt.Printf("Report written to %s\n", out)
	},
}
