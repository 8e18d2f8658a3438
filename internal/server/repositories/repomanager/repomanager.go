package repomanager

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/dbx"
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
)

// RepositoryManager vends repositories bound to a DBTX handle, so a service
// can run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Ships(db dbx.DBTX) ships.Repository
	Categories(db dbx.DBTX) categories.Repository
	Crews(db dbx.DBTX) crews.Repository
	Voyages(db dbx.DBTX) voyages.Repository
	FuelRecords(db dbx.DBTX) fuelrecords.Repository
	Maintenances(db dbx.DBTX) maintenances.Repository
	Certificates(db dbx.DBTX) certificates.Repository
	Messages(db dbx.DBTX) messages.Repository
	AuditLogs(db dbx.DBTX) auditlogs.Repository
}
