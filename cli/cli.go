package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dverbeek/calltrack/database"
	"github.com/dverbeek/calltrack/logging"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
	"github.com/dverbeek/calltrack/services"
)

// Execute builds and runs the root command
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "calltrack",
		Short: "Call-based attendance tracking for phone teams",
	}

	rootCmd.PersistentFlags().String("db", defaultDBPath(), "Path to the SQLite database file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(purgeAuditCmd())
	rootCmd.AddCommand(grantCmd())
	rootCmd.AddCommand(revokeCmd())

	if err := rootCmd.Execute(); err != nil {
		logging.GetLogger().WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return "calltrack.db"
}

// initServices opens the database and wires repositories and services.
// The caller must database.CloseDB() when done.
func initServices(cmd *cobra.Command) (*services.Services, error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, fmt.Errorf("failed to read db flag: %w", err)
	}

	if err := database.InitializeDatabase(dbPath); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := repositories.NewRepositories(database.GetDB())
	return services.NewServices(repos), nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the attendance calculation for a date or range",
		RunE: func(cmd *cobra.Command, args []string) error {
			srvs, err := initServices(cmd)
			if err != nil {
				return err
			}
			defer database.CloseDB()

			force, _ := cmd.Flags().GetBool("force")
			dateStr, _ := cmd.Flags().GetString("date")
			fromStr, _ := cmd.Flags().GetString("from")
			toStr, _ := cmd.Flags().GetString("to")
			daysBack, _ := cmd.Flags().GetInt("days-back")

			var results []models.RunResult
			switch {
			case daysBack > 0:
				r := models.GetLastNDays(daysBack)
				results, err = srvs.Attendance.RunForRange(r.Start, r.End, force)
			case fromStr != "" && toStr != "":
				var from, to time.Time
				if from, err = models.ParseDate(fromStr); err != nil {
					return fmt.Errorf("invalid from date: %w", err)
				}
				if to, err = models.ParseDate(toStr); err != nil {
					return fmt.Errorf("invalid to date: %w", err)
				}
				results, err = srvs.Attendance.RunForRange(from, to, force)
			default:
				date := models.Truncate(time.Now())
				if dateStr != "" {
					if date, err = models.ParseDate(dateStr); err != nil {
						return fmt.Errorf("invalid date: %w", err)
					}
				}
				var result *models.RunResult
				result, err = srvs.Attendance.RunForDate(date, force)
				if result != nil {
					results = []models.RunResult{*result}
				}
			}
			if err != nil {
				return err
			}

			return reportRunResults(results)
		},
	}

	cmd.Flags().String("date", "", "Date to calculate (YYYY-MM-DD, default today)")
	cmd.Flags().String("from", "", "Start of a date range (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End of a date range (YYYY-MM-DD)")
	cmd.Flags().Int("days-back", 0, "Calculate the last N days up to today")
	cmd.Flags().Bool("force", false, "Calculate even on non-working days")

	return cmd
}

// reportRunResults prints a per-date summary and returns an error when any
// date carried failures, so the process exit status reflects partial failure.
func reportRunResults(results []models.RunResult) error {
	failedDates := 0
	for _, result := range results {
		if result.Reason != "" {
			fmt.Printf("%s: skipped (%s)\n", models.FormatDate(result.Date), result.Reason)
			continue
		}
		fmt.Printf("%s: processed=%d skipped=%d failed=%d\n",
			models.FormatDate(result.Date), result.Processed, result.Skipped, result.Failed)
		for _, e := range result.Errors {
			fmt.Printf("  employee %d: %s\n", e.EmployeeID, e.Message)
		}
		if !result.Success() {
			failedDates++
		}
	}
	if failedDates > 0 {
		return fmt.Errorf("calculation failed for %d of %d dates", failedDates, len(results))
	}
	return nil
}

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Import call logs from a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			srvs, err := initServices(cmd)
			if err != nil {
				return err
			}
			defer database.CloseDB()

			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				return fmt.Errorf("--file is required")
			}
			actorID, _ := cmd.Flags().GetInt("actor")

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			result, err := srvs.CallLog.ImportCSV(f, actorID)
			if err != nil {
				return err
			}

			fmt.Printf("created=%d updated=%d failed=%d\n", result.Created, result.Updated, result.Failed)
			for _, e := range result.Errors {
				fmt.Printf("  line %d: %s\n", e.Index, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to the CSV file")
	cmd.Flags().Int("actor", 0, "Employee ID performing the import")

	return cmd
}

func purgeAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge-audit",
		Short: "Delete audit entries past the retention horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			srvs, err := initServices(cmd)
			if err != nil {
				return err
			}
			defer database.CloseDB()

			days, _ := cmd.Flags().GetInt("days")
			deleted, err := srvs.Attendance.PurgeAudit(days)
			if err != nil {
				return err
			}

			fmt.Printf("deleted %d audit entries\n", deleted)
			return nil
		},
	}

	cmd.Flags().Int("days", models.DefaultAuditRetentionDays, "Retention horizon in days")

	return cmd
}

func grantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a permission to an employee",
		RunE: permissionRunE(func(srvs *services.Services, form *models.PermissionAssignForm, actorID int) error {
			return srvs.Permission.Grant(form, actorID)
		}),
	}
	addPermissionFlags(cmd)
	return cmd
}

func revokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a permission from an employee",
		RunE: permissionRunE(func(srvs *services.Services, form *models.PermissionAssignForm, actorID int) error {
			return srvs.Permission.Revoke(form, actorID)
		}),
	}
	addPermissionFlags(cmd)
	return cmd
}

func addPermissionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("employee", 0, "Employee ID")
	cmd.Flags().String("permission", "", "Permission codename")
	cmd.Flags().Int("actor", 0, "Employee ID performing the change")
}

func permissionRunE(fn func(*services.Services, *models.PermissionAssignForm, int) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		srvs, err := initServices(cmd)
		if err != nil {
			return err
		}
		defer database.CloseDB()

		employeeID, _ := cmd.Flags().GetInt("employee")
		codename, _ := cmd.Flags().GetString("permission")
		actorID, _ := cmd.Flags().GetInt("actor")

		form := &models.PermissionAssignForm{
			EmployeeID: employeeID,
			Codename:   codename,
		}
		if err := fn(srvs, form, actorID); err != nil {
			return err
		}

		fmt.Println("ok")
		return nil
	}
}
