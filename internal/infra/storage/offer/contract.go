package offer

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of *sql.DB used by the repository. The active
// transaction, when present in context, takes precedence via txmanager.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
