package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var switchUserCmd = &cobra.Command{
	Use:   "switch-user <employee-id>",
	Short: "Change the acting employee identity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		if err := app.store.SwitchUser(args[0]); err != nil {
			log.Fatalf("failed to switch user: %v", err)
		}

		cu := app.store.State().CurrentUser
		fmt.Printf("Now acting as %s (%s, %s)\n", cu.Name, cu.Role, cu.Department)
	},
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees and their leave balances",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		s := app.store.State()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tROLE\tMANAGER\tANNUAL\tSICK\tCASUAL")
		for _, emp := range s.Employees {
			manager := "-"
			if emp.HasManager() {
				manager = s.EmployeeName(*emp.ManagerID)
			}
			annual, _ := emp.Balance("annual")
			sick, _ := emp.Balance("sick")
			casual, _ := emp.Balance("casual")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
				emp.ID, emp.Name, emp.Department, emp.Role, manager, annual, sick, casual)
		}
		w.Flush()

		if s.CurrentUser != nil {
			fmt.Printf("\nCurrent user: %s (%s)\n", s.CurrentUser.Name, s.CurrentUser.ID)
		}
	},
}
