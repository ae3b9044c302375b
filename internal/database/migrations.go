package database

import (
	"embed"

	"clubmanager/config"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

const migrationTable = "schema_migrations"

func init() {
	migrate.SetTable(migrationTable)
}

func (s *DB) migrationSource() (*migrate.EmbedFileSystemMigrationSource, string) {
	if s.Driver == config.DriverPostgres {
		return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationFiles, Root: "migrations/postgres"}, "postgres"
	}
	return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationFiles, Root: "migrations/sqlite"}, "sqlite3"
}

// MigrateUp applies every pending migration and returns how many ran.
func (s *DB) MigrateUp() (int, error) {
	return s.migrate(migrate.Up, 0)
}

// MigrateDown rolls back at most steps migrations; 0 rolls back all.
func (s *DB) MigrateDown(steps int) (int, error) {
	return s.migrate(migrate.Down, steps)
}

func (s *DB) migrate(direction migrate.MigrationDirection, max int) (int, error) {
	log := s.log.Function("migrate")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return 0, log.Err("failed to get database from GORM", err)
	}

	source, dialect := s.migrationSource()
	applied, err := migrate.ExecMax(sqlDB, dialect, source, direction, max)
	if err != nil {
		return applied, log.Err("failed to run migrations", err, "dialect", dialect, "applied", applied)
	}

	log.Info("Migrations complete", "dialect", dialect, "applied", applied)
	return applied, nil
}

type MigrationStatus struct {
	ID      string
	Applied bool
}

// MigrationStatus lists the known migrations in order and whether each has
// been applied.
func (s *DB) MigrationStatus() ([]MigrationStatus, error) {
	log := s.log.Function("MigrationStatus")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return nil, log.Err("failed to get database from GORM", err)
	}

	source, dialect := s.migrationSource()
	migrations, err := source.FindMigrations()
	if err != nil {
		return nil, log.Err("failed to read migrations", err)
	}

	records, err := migrate.GetMigrationRecords(sqlDB, dialect)
	if err != nil {
		return nil, log.Err("failed to read migration records", err)
	}

	applied := make(map[string]bool, len(records))
	for _, record := range records {
		applied[record.Id] = true
	}

	status := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		status = append(status, MigrationStatus{ID: m.Id, Applied: applied[m.Id]})
	}
	return status, nil
}
