package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

var (
	notificationsAll  bool
	notificationsRead string
	notificationsUser string
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications for a user, or mark one as read",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.close()

		if notificationsRead != "" {
			app.store.MarkNotificationRead(notificationsRead)
			fmt.Printf("Marked %s as read\n", notificationsRead)
			return
		}

		userID := notificationsUser
		if userID == "" {
			if cu := app.store.State().CurrentUser; cu != nil {
				userID = cu.ID
			}
		}

		notifications := store.NotificationsFor(app.store.State(), userID, !notificationsAll)
		if len(notifications) == 0 {
			fmt.Println("No notifications.")
			return
		}
		for _, n := range notifications {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s  %s (%s)\n", marker, n.Severity, n.CreatedAt.Format("2006-01-02 15:04"), n.Message, n.ID)
		}
	},
}
