package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a capacidade mínima de execução de consultas que os repositórios
// recebem. *sql.DB (e portanto Connection) a satisfaz diretamente.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
