package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/notification"
	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset to the sample data set",
	Long:  `Discard the persisted snapshot and restore the built-in sample data (4 employees, 2 leaves).`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		if err := app.store.Reset(); err != nil {
			log.Fatalf("failed to reset: %v", err)
		}

		s := app.store.State()
		fmt.Printf("Seeded %d employees and %d leaves\n", len(s.Employees), len(s.Leaves))
	},
}

var (
	clearLeavesOnly bool
	clearYes        bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear persisted data",
	Long:  `Delete all persisted data, or with --leaves-only clear leaves and notifications while preserving employees.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !clearYes {
			log.Fatalf("refusing to clear without --yes: this cannot be undone")
		}

		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		if !clearLeavesOnly {
			if err := app.snapshots.Delete(app.cfg.Storage.SnapshotKey); err != nil &&
				!errors.Is(err, store.ErrSnapshotNotFound) {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("All data cleared; sample data will be seeded on next run.")
			return
		}

		// read-modify-write on the persisted document, employees preserved
		doc, err := app.snapshots.Load(app.cfg.Storage.SnapshotKey)
		if err != nil {
			if errors.Is(err, store.ErrSnapshotNotFound) {
				fmt.Println("Nothing to clear.")
				return
			}
			log.Fatalf("failed to read persisted data: %v", err)
		}

		var snapshot store.State
		if err := json.Unmarshal(doc, &snapshot); err != nil {
			log.Fatalf("persisted data is not readable: %v", err)
		}

		cleared := len(snapshot.Leaves)
		snapshot.Leaves = []leave.Leave{}
		snapshot.Notifications = []notification.Notification{}

		updated, err := json.Marshal(snapshot)
		if err != nil {
			log.Fatalf("failed to serialize data: %v", err)
		}
		if err := app.snapshots.Save(app.cfg.Storage.SnapshotKey, updated); err != nil {
			log.Fatalf("failed to persist cleared data: %v", err)
		}

		fmt.Printf("Cleared %d leaves; employee data preserved.\n", cleared)
	},
}
