package datagen

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
)

// fakeDB simula um Postgres mínimo com suporte a transação, suficiente para
// exercitar o fluxo de gravação em lote. Cada comando (BEGIN, COMMIT,
// ROLLBACK e as queries) fica registrado na ordem em que chegou.
type fakeDB struct {
	mu sync.Mutex

	// failPattern força um erro em comandos que o contenham
	failPattern string
	failErr     error

	respond func(query string) *fakeResult

	commands []string
}

type fakeResult struct {
	cols []string
	rows [][]driver.Value
}

func (db *fakeDB) open() *sql.DB {
	return sql.OpenDB(fakeConnector{db: db})
}

func (db *fakeDB) executedCommands() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]string, len(db.commands))
	copy(out, db.commands)
	return out
}

func (db *fakeDB) record(command string) {
	db.mu.Lock()
	db.commands = append(db.commands, command)
	db.mu.Unlock()
}

func (db *fakeDB) run(query string) (*fakeResult, error) {
	db.record(query)

	if db.failPattern != "" && strings.Contains(query, db.failPattern) {
		return nil, db.failErr
	}

	if db.respond != nil {
		if res := db.respond(query); res != nil {
			return res, nil
		}
	}

	return &fakeResult{}, nil
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
	c.db.record("BEGIN")
	return &fakeTx{db: c.db}, nil
}

func (c *fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return c.Begin()
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

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Commit() error {
	t.db.record("COMMIT")
	return nil
}

func (t *fakeTx) Rollback() error {
	t.db.record("ROLLBACK")
	return nil
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
