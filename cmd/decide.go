package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
)

var decideApprover string

var approveCmd = &cobra.Command{
	Use:   "approve <leave-id>",
	Short: "Approve a pending leave",
	Args:  cobra.ExactArgs(1),
	Run:   decideRun(leave.StatusApproved),
}

var rejectCmd = &cobra.Command{
	Use:   "reject <leave-id>",
	Short: "Reject a pending leave",
	Args:  cobra.ExactArgs(1),
	Run:   decideRun(leave.StatusRejected),
}

func decideRun(status leave.Status) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		approver := decideApprover
		if approver == "" {
			if cu := app.store.State().CurrentUser; cu != nil {
				approver = cu.ID
			} else {
				approver = "system"
			}
		}

		if err := app.store.UpdateLeaveStatus(args[0], status, approver); err != nil {
			log.Fatalf("failed to update leave: %v", err)
		}

		fmt.Printf("Leave %s %s by %s\n", args[0], status, approver)
	}
}
