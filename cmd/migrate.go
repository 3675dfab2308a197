package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cutroom/timeline-api/internal/database"
	"github.com/cutroom/timeline-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Scene Timeline API.

The schema is managed with GORM auto-migration, so applying migrations is
additive and safe to run repeatedly. There is no version history to roll
back through.

Available subcommands:
  up      - Apply all pending schema changes
  down    - Not supported (auto-migration is additive only)
  status  - Show which tables exist`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This brings the schema up to date for every application model: scenes,
segments, track preferences and jobs. Running it against an up-to-date
database is a no-op.`,
	RunE: runMigrateUp,
}

// migrateDownCmd would roll back, which auto-migration cannot do
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last migration",
	Long: `Rollback the last applied migration.

Auto-migration keeps no version history to roll back to, so this command
always refuses. Restore from a database backup instead.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This command shows, for every application model, whether its table
exists in the configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// migrationTable pairs a table name with the model that defines it.
type migrationTable struct {
	name  string
	model interface{}
}

// migrationTables lists every application model in creation order.
func migrationTables() []migrationTable {
	return []migrationTable{
		{"scenes", &models.Scene{}},
		{"segments", &models.Segment{}},
		{"track_preferences", &models.TrackPreference{}},
		{"jobs", &models.Job{}},
	}
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, table := range migrationTables() {
			fmt.Printf("  would migrate %s\n", table.name)
		}
		return nil
	}

	db, err := openConfiguredDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	fmt.Println("Database schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	return fmt.Errorf("rollback is not supported: the schema is managed with additive auto-migration, restore from a backup instead")
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openConfiguredDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Println(repeatString("=", 50))

	migrator := db.DB.Migrator()
	pending := 0
	for _, table := range migrationTables() {
		state := "applied"
		if !migrator.HasTable(table.model) {
			state = "pending"
			pending++
		}
		fmt.Printf("  [%s] %s\n", state, table.name)
	}

	if pending == 0 {
		fmt.Println("\nSchema is up to date")
	} else {
		fmt.Printf("\n%d table(s) pending - run 'timeline-api migrate up'\n", pending)
	}

	return nil
}

// openConfiguredDatabase connects to the configured database without
// migrating it.
func openConfiguredDatabase() (*database.DB, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is not configured")
	}
	db, err := database.Initialize(dbPath, viper.GetBool("database.log_queries"))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// repeatString repeats a string n times
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
