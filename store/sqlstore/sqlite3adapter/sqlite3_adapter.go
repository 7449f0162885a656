/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlstore package that works
over an SQLite3 database.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/mubarakalmehairbi/SuperNodes/store/sqlstore"
)

const nodesTableCreateStmt = `CREATE TABLE IF NOT EXISTS nodes (
	id TEXT PRIMARY KEY,
	parent_id TEXT NOT NULL DEFAULT '',
	node_id TEXT NOT NULL DEFAULT '',
	child_ids TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	value TEXT NOT NULL DEFAULT '',
	function TEXT NOT NULL DEFAULT '',
	child_if_true TEXT NOT NULL DEFAULT '',
	child_if_false TEXT NOT NULL DEFAULT '',
	attrs TEXT NOT NULL DEFAULT '')`

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an
Adapter that works on the file's database or an error if it
fails to open as an sqlite3 database.
*/
func New(path string) (sqlstore.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) CreateNodesTable(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, nodesTableCreateStmt)
	if err != nil {
		return fmt.Errorf("running nodes table creation statement: %v", err)
	}
	return nil
}

func (a *adapter) Placeholder(i int) string {
	return "?"
}

func (a *adapter) DB() *sql.DB {
	return a.db
}
