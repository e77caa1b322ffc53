package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

var (
	listStatus     string
	listType       string
	listDepartment string
	listSearch     string
	listMode       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave applications",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		leaves := app.store.Filter(store.LeaveFilter{
			Status:     leave.Status(listStatus),
			Type:       listType,
			Department: listDepartment,
			Search:     listSearch,
			Mode:       store.Mode(listMode),
		})

		printLeaves(app.store.State(), leaves)
	},
}

var calendarDate string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show leaves covering a calendar date",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		date := calendarDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		leaves := app.store.LeavesForDay(date)
		fmt.Printf("Leaves on %s:\n", date)
		printLeaves(app.store.State(), leaves)
	},
}

func printLeaves(s store.State, leaves []leave.Leave) {
	if len(leaves) == 0 {
		fmt.Println("No leaves found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tDAYS\tSTATUS\tREASON")
	for _, l := range leaves {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.ID, l.EmployeeName, s.LeaveTypeName(l.Type),
			l.StartDate, l.EndDate, l.Days(), l.Status, l.Reason)
	}
	w.Flush()
}
