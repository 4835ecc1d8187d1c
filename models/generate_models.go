package models

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

/*
Schema Drift Report Usage:

Optional columns (such as projects.overview) are rolled out to environments
at different times, so a model field can reference a column a given database
does not have yet. This file generates a two-way report of that drift:

  - columns present in the database but not in the Go model
  - columns expected by the Go model but missing in the database

To generate the report without migrating:

  GENERATE_COLUMN_REPORT=true go run .

To migrate all tables and regenerate query helpers:

  GENERATE_MODELS=true go run .

Example output:

=== SCHEMA DRIFT REPORT ===
--- Table: projects ---
Model fields missing in database (run migration to add):
  - overview

--- Table: series ---
Schema and model are in sync.

=== SUMMARY ===
Total drifted columns across all tables: 1
*/

func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		Project{},
		Series{},
		Venture{},
		Experience{},
		Education{},
		Profile{},
		ContactSubmission{},
	)

	fmt.Println("Starting database migration...")

	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 newLogger,
	})

	fmt.Println("Migrating models...")
	if err := migrateDB.AutoMigrate(
		&Project{},
		&Series{},
		&Venture{},
		&Experience{},
		&Education{},
		&Profile{},
		&ContactSubmission{},
	); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database migration completed successfully!")

	GenerateSchemaDriftReport(db)

	g.Execute()
	fmt.Println("Model generation complete!")
}

// tableModels maps each table to its model struct for drift reporting.
func tableModels() map[string]interface{} {
	return map[string]interface{}{
		"projects":            Project{},
		"series":              Series{},
		"ventures":            Venture{},
		"experience":          Experience{},
		"education":           Education{},
		"profile":             Profile{},
		"contact_submissions": ContactSubmission{},
	}
}

// GenerateSchemaDriftReport reports columns that differ between the
// database and the Go models, in both directions.
func GenerateSchemaDriftReport(db *gorm.DB) {
	fmt.Println("=== SCHEMA DRIFT REPORT ===")

	totalDrift := 0

	for tableName, modelStruct := range tableModels() {
		fmt.Printf("\n--- Table: %s ---\n", tableName)

		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			if strings.Contains(err.Error(), "does not exist") {
				fmt.Printf("Table does not exist yet (will be created during migration)\n")
			} else {
				fmt.Printf("Error getting columns for table %s: %v\n", tableName, err)
			}
			continue
		}

		modelFields := getModelFields(modelStruct)

		extra := columnDiff(dbColumns, modelFields)
		missing := columnDiff(modelFields, dbColumns)

		if len(extra) == 0 && len(missing) == 0 {
			fmt.Println("Schema and model are in sync.")
			continue
		}

		if len(extra) > 0 {
			fmt.Printf("Database columns not accounted for in model:\n")
			for _, col := range extra {
				fmt.Printf("  - %s\n", col)
			}
		}
		if len(missing) > 0 {
			fmt.Printf("Model fields missing in database (run migration to add):\n")
			for _, col := range missing {
				fmt.Printf("  - %s\n", col)
			}
		}
		totalDrift += len(extra) + len(missing)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total drifted columns across all tables: %d\n", totalDrift)
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`

	err := db.Raw(query, tableName).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}

	if len(columns) == 0 {
		var tableExists bool
		tableQuery := `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = CURRENT_SCHEMA()
				AND table_name = ?
			)
		`
		if err := db.Raw(tableQuery, tableName).Scan(&tableExists).Error; err != nil {
			return nil, fmt.Errorf("error checking if table %s exists: %w", tableName, err)
		}
		if !tableExists {
			return nil, fmt.Errorf("table %s does not exist", tableName)
		}
	}

	return columns, nil
}

// getModelFields extracts column names from a Go struct using reflection
func getModelFields(model interface{}) []string {
	var fields []string
	naming := schema.NamingStrategy{}
	t := reflect.TypeOf(model)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			continue
		}

		gormTag := field.Tag.Get("gorm")
		if gormTag == "-" || strings.HasPrefix(gormTag, "-;") {
			continue
		}

		if columnName := extractColumnNameFromGormTag(gormTag); columnName != "" {
			fields = append(fields, columnName)
			continue
		}
		fields = append(fields, naming.ColumnName("", field.Name))
	}

	return fields
}

// extractColumnNameFromGormTag extracts the column name from a GORM tag
func extractColumnNameFromGormTag(gormTag string) string {
	parts := strings.Split(gormTag, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// columnDiff returns the entries of a that are absent from b.
func columnDiff(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, col := range b {
		set[col] = true
	}

	var diff []string
	for _, col := range a {
		if !set[col] {
			diff = append(diff, col)
		}
	}
	return diff
}

// GenerateSchemaDriftReportStandalone generates the report without running migrations
func GenerateSchemaDriftReportStandalone(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	GenerateSchemaDriftReport(db)
}
