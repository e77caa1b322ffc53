package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hariraj-0611/Leave-Management/internal"
	"github.com/Hariraj-0611/Leave-Management/internal/store"
	storesqlite "github.com/Hariraj-0611/Leave-Management/internal/store/sqlite"
	"github.com/Hariraj-0611/Leave-Management/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "leave-management",
	Short: "Leave Management",
	Long:  `Submit, approve and track employee leave from the command line.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// optional .env for local development, ignored when absent
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			cfg := internal.LoadConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("error validating config from environment: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	cfg := internal.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return cfg, nil
}

// app wires the store to its persistence, constructed once per invocation.
type app struct {
	cfg       *internal.Config
	store     *store.Store
	snapshots *storesqlite.SnapshotStore
}

func openApp() (*app, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	snapshots, err := storesqlite.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	st := store.New(snapshots, cfg.Storage.SnapshotKey, logger.L())
	st.Load()

	return &app{cfg: cfg, store: st, snapshots: snapshots}, nil
}

func (a *app) close() {
	_ = a.snapshots.Close()
}

func init() {
	applyCmd.Flags().StringVar(&applyEmployee, "employee", "", "Employee ID (defaults to the current user)")
	applyCmd.Flags().StringVar(&applyType, "type", "", "Leave type (annual, sick, casual)")
	applyCmd.Flags().StringVar(&applyStart, "start", "", "Start date (YYYY-MM-DD)")
	applyCmd.Flags().StringVar(&applyEnd, "end", "", "End date (YYYY-MM-DD), inclusive")
	applyCmd.Flags().StringVar(&applyReason, "reason", "", "Reason for the leave")

	approveCmd.Flags().StringVar(&decideApprover, "approver", "", "Approver employee ID (defaults to the current user)")
	rejectCmd.Flags().StringVar(&decideApprover, "approver", "", "Approver employee ID (defaults to the current user)")

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, approved, rejected)")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by leave type")
	listCmd.Flags().StringVar(&listDepartment, "department", "", "Filter by department")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Free-text search over employee name and reason")
	listCmd.Flags().StringVar(&listMode, "mode", "all", "Listing mode: all, employee, approval")

	calendarCmd.Flags().StringVar(&calendarDate, "date", "", "Calendar date (YYYY-MM-DD), defaults to today")

	notificationsCmd.Flags().BoolVar(&notificationsAll, "all", false, "Include already-read notifications")
	notificationsCmd.Flags().StringVar(&notificationsRead, "read", "", "Mark the given notification ID as read")
	notificationsCmd.Flags().StringVar(&notificationsUser, "user", "", "User ID (defaults to the current user)")

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to a dated file in the export dir)")

	importCmd.Flags().BoolVar(&importYes, "yes", false, "Confirm overwriting all current data")

	reportCmd.Flags().StringVar(&reportOut, "out", "", "Output PDF file (defaults to a dated file in the export dir)")

	clearCmd.Flags().BoolVar(&clearLeavesOnly, "leaves-only", false, "Clear leaves and notifications but keep employees")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm the destructive operation")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(switchUserCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(clearCmd)
}
