package booking

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс выполнения запросов к БД
// Ему удовлетворяют *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
