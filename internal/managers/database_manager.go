// Package managers wires the application to its external collaborators:
// the database pool, the token issuer and the mail provider.
package managers

import (
	log "github.com/sirupsen/logrus"

	"money-manager-server/internal/interfaces"
)

// DatabaseMgr defines the interface for database management.
type DatabaseMgr interface {
	GetPool() interfaces.PgxPoolIface
}

// DatabaseManager is responsible for managing the database connection pool.
type DatabaseManager struct {
	Pool interfaces.PgxPoolIface
}

// GetPool returns the database connection pool managed by the DatabaseManager.
func (dbMgr *DatabaseManager) GetPool() interfaces.PgxPoolIface {
	return dbMgr.Pool
}

// NewDatabaseManager creates a new DatabaseManager with the provided connection pool.
func NewDatabaseManager(pool interfaces.PgxPoolIface) DatabaseMgr {
	log.Info("Initializing database manager")
	return &DatabaseManager{Pool: pool}
}
