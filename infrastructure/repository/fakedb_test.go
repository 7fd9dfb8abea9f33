package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
)

// fakeDB simula um banco Postgres com schema configurável para exercitar a
// sondagem de colunas. Tabelas e colunas listadas como ausentes devolvem o
// mesmo texto de erro que o Postgres usa, o que ativa o fallback textual de
// IsSchemaError; o restante das consultas é respondido por respond.
type fakeDB struct {
	mu sync.Mutex

	missingTables []string
	missingCols   []string

	// failPattern força um erro não-schema em consultas que o contenham
	failPattern string
	failErr     error

	respond func(query string) *fakeResult

	queries []string
}

type fakeResult struct {
	cols []string
	rows [][]driver.Value
}

func (db *fakeDB) open() *sql.DB {
	return sql.OpenDB(fakeConnector{db: db})
}

func (db *fakeDB) executedQueries() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]string, len(db.queries))
	copy(out, db.queries)
	return out
}

func (db *fakeDB) lastQuery() string {
	queries := db.executedQueries()
	if len(queries) == 0 {
		return ""
	}
	return queries[len(queries)-1]
}

func (db *fakeDB) run(query string) (*fakeResult, error) {
	db.mu.Lock()
	db.queries = append(db.queries, query)
	db.mu.Unlock()

	if db.failPattern != "" && strings.Contains(query, db.failPattern) {
		return nil, db.failErr
	}

	for _, table := range db.missingTables {
		if strings.Contains(query, table) {
			return nil, fmt.Errorf("pq: relation %q does not exist", table)
		}
	}

	for _, col := range db.missingCols {
		if strings.Contains(query, col) {
			return nil, fmt.Errorf("pq: column %q does not exist", col)
		}
	}

	if db.respond != nil {
		if res := db.respond(query); res != nil {
			return res, nil
		}
	}

	// Escalar zerado por padrão, suficiente para as métricas agregadas
	return &fakeResult{cols: []string{"val"}, rows: [][]driver.Value{{float64(0)}}}, nil
}

type fakeConnector struct {
	db *fakeDB
}

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{db: c.db}, nil
}

func (c fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, fmt.Errorf("use sql.OpenDB")
}

type fakeConn struct {
	db *fakeDB
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{db: c.db, query: query}, nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transações não suportadas pelo fake")
}

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	res, err := c.db.run(query)
	if err != nil {
		return nil, err
	}
	return &fakeRows{cols: res.cols, rows: res.rows}, nil
}

func (c *fakeConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	if _, err := c.db.run(query); err != nil {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

type fakeStmt struct {
	db    *fakeDB
	query string
}

func (s *fakeStmt) Close() error {
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	if _, err := s.db.run(s.query); err != nil {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	res, err := s.db.run(s.query)
	if err != nil {
		return nil, err
	}
	return &fakeRows{cols: res.cols, rows: res.rows}, nil
}

type fakeRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *fakeRows) Columns() []string {
	return r.cols
}

func (r *fakeRows) Close() error {
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}
