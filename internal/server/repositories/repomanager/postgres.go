package repomanager

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/dbx"
	"github.com/Dvesiz/Ship-Management-System/internal/server/migrations"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/auditlogs"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/categories"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/certificates"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/crews"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/fuelrecords"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/maintenances"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/messages"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/ships"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/users"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/voyages"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Ships(db dbx.DBTX) ships.Repository {
	return ships.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Crews(db dbx.DBTX) crews.Repository {
	return crews.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Voyages(db dbx.DBTX) voyages.Repository {
	return voyages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) FuelRecords(db dbx.DBTX) fuelrecords.Repository {
	return fuelrecords.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Maintenances(db dbx.DBTX) maintenances.Repository {
	return maintenances.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Certificates(db dbx.DBTX) certificates.Repository {
	return certificates.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AuditLogs(db dbx.DBTX) auditlogs.Repository {
	return auditlogs.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
