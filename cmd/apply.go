package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
)

var (
	applyEmployee string
	applyType     string
	applyStart    string
	applyEnd      string
	applyReason   string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a leave application",
	Long:  `Submit a leave application for an employee. The balance for the leave type is deducted immediately and the employee's manager is notified.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		employeeID := applyEmployee
		if employeeID == "" {
			if cu := app.store.State().CurrentUser; cu != nil {
				employeeID = cu.ID
			}
		}

		if app.store.HasOverlap(employeeID, applyType, applyStart, applyEnd) {
			fmt.Println("Warning: this range overlaps an existing non-rejected leave of the same type.")
		}

		created, err := app.store.ApplyLeave(leave.ApplyLeaveDTO{
			EmployeeID: employeeID,
			Type:       applyType,
			StartDate:  applyStart,
			EndDate:    applyEnd,
			Reason:     applyReason,
		})
		if err != nil {
			log.Fatalf("failed to apply leave: %v", err)
		}

		fmt.Printf("Applied %s from %s to %s (%d days): %s\n",
			app.store.State().LeaveTypeName(created.Type),
			created.StartDate, created.EndDate, created.Days(), created.ID)

		if emp, ok := app.store.State().EmployeeByID(employeeID); ok {
			if balance, ok := emp.Balance(created.Type); ok {
				fmt.Printf("Remaining %s balance: %d days\n", created.Type, balance)
			}
		}
	},
}
