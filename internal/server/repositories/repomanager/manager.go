package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkarpov/userkeeper/internal/dbx"
	"github.com/mkarpov/userkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX (a pool or
// an open transaction) and exposes the schema migration hook run at startup.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
