package cmd

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard summary counts",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		stats := app.store.Stats(time.Now())
		s := app.store.State()

		fmt.Printf("Employees:      %d\n", stats.Employees)
		fmt.Printf("Leaves:         %d (%d this month)\n", stats.Leaves, stats.ThisMonth)
		fmt.Printf("Notifications:  %d\n", stats.Notifications)

		fmt.Println("\nBy status:")
		for _, status := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
			fmt.Printf("  %-10s %d\n", status, stats.ByStatus[status])
		}

		fmt.Println("\nBy type:")
		typeKeys := make([]string, 0, len(stats.ByType))
		for k := range stats.ByType {
			typeKeys = append(typeKeys, k)
		}
		sort.Strings(typeKeys)
		for _, k := range typeKeys {
			fmt.Printf("  %-15s %d\n", s.LeaveTypeName(k), stats.ByType[k])
		}

		fmt.Println("\nBy department:")
		deptKeys := make([]string, 0, len(stats.ByDepartment))
		for k := range stats.ByDepartment {
			deptKeys = append(deptKeys, k)
		}
		sort.Strings(deptKeys)
		for _, k := range deptKeys {
			fmt.Printf("  %-15s %d\n", k, stats.ByDepartment[k])
		}
	},
}
