/*
Package sqlstore provides an implementation of store.NodeStore
that works on an SQL database through an Adapter for the
specific driver. Records are kept in a nodes table with one row
per node and parent/children linkage columns.
*/
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mubarakalmehairbi/SuperNodes/store"
)

/*
Adapter is an interface for objects providing access to a
specific SQL database so that it can be used as a node store.

Its CreateNodesTable method creates the nodes table on the
database unless it already exists.

Its Placeholder method returns the driver's placeholder for the
i-th statement parameter, with i starting at 1.

Its DB method returns the underlying database handle.
*/
type Adapter interface {
	CreateNodesTable(ctx context.Context) error
	Placeholder(i int) string
	DB() *sql.DB
}

type sqlNodeStore struct {
	adapter Adapter
}

const recordColumns = "id, parent_id, node_id, child_ids, name, value, function, child_if_true, child_if_false, attrs"

/*
New takes an Adapter to an SQL database and returns a
store.NodeStore backed by it, creating the nodes table if
needed, or an error if the table cannot be created.
*/
func New(ctx context.Context, adapter Adapter) (store.NodeStore, error) {
	if err := adapter.CreateNodesTable(ctx); err != nil {
		return nil, fmt.Errorf("preparing nodes table: %v", err)
	}
	return &sqlNodeStore{adapter}, nil
}

func (sns *sqlNodeStore) Create(ctx context.Context, r *store.Record) error {
	r.ID = randString(20)
	query := fmt.Sprintf("INSERT INTO nodes (%s) VALUES (%s)", recordColumns, sns.placeholders(10))
	_, err := sns.adapter.DB().ExecContext(ctx, query, sns.values(r)...)
	if err != nil {
		return fmt.Errorf("creating record %q: %v", r.ID, err)
	}
	return nil
}

func (sns *sqlNodeStore) Get(ctx context.Context, id string) (*store.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM nodes WHERE id = %s", recordColumns, sns.adapter.Placeholder(1))
	row := sns.adapter.DB().QueryRowContext(ctx, query, id)
	r := &store.Record{}
	var childIDs string
	err := row.Scan(&r.ID, &r.ParentID, &r.NodeID, &childIDs, &r.Name, &r.Value, &r.Function, &r.ChildNameIfTrue, &r.ChildNameIfFalse, &r.Attrs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q: %v", id, err)
	}
	if childIDs != "" {
		r.ChildIDs = strings.Split(childIDs, ",")
	}
	return r, nil
}

func (sns *sqlNodeStore) Store(ctx context.Context, r *store.Record) error {
	query := fmt.Sprintf(
		"UPDATE nodes SET parent_id = %s, node_id = %s, child_ids = %s, name = %s, value = %s, function = %s, child_if_true = %s, child_if_false = %s, attrs = %s WHERE id = %s",
		sns.adapter.Placeholder(1), sns.adapter.Placeholder(2), sns.adapter.Placeholder(3),
		sns.adapter.Placeholder(4), sns.adapter.Placeholder(5), sns.adapter.Placeholder(6),
		sns.adapter.Placeholder(7), sns.adapter.Placeholder(8), sns.adapter.Placeholder(9),
		sns.adapter.Placeholder(10))
	values := append(sns.values(r)[1:], r.ID)
	_, err := sns.adapter.DB().ExecContext(ctx, query, values...)
	if err != nil {
		return fmt.Errorf("storing record %q: %v", r.ID, err)
	}
	return nil
}

func (sns *sqlNodeStore) Delete(ctx context.Context, r *store.Record) error {
	query := fmt.Sprintf("DELETE FROM nodes WHERE id = %s", sns.adapter.Placeholder(1))
	_, err := sns.adapter.DB().ExecContext(ctx, query, r.ID)
	if err != nil {
		return fmt.Errorf("deleting record %q: %v", r.ID, err)
	}
	return nil
}

func (sns *sqlNodeStore) Close(ctx context.Context) error {
	return sns.adapter.DB().Close()
}

func (sns *sqlNodeStore) placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = sns.adapter.Placeholder(i + 1)
	}
	return strings.Join(ps, ", ")
}

// values returns the record's column values in recordColumns
// order. Child ids are joined with commas, ids never contain
// them.
func (sns *sqlNodeStore) values(r *store.Record) []interface{} {
	return []interface{}{
		r.ID, r.ParentID, r.NodeID, strings.Join(r.ChildIDs, ","),
		r.Name, r.Value, r.Function, r.ChildNameIfTrue, r.ChildNameIfFalse, r.Attrs,
	}
}

type lockedRandSource struct {
	lock sync.Mutex
	src  rand.Source
}

var rnd *rand.Rand

func init() {
	rnd = rand.New(&lockedRandSource{src: rand.NewSource(time.Now().UnixNano())})
}

func (r *lockedRandSource) Int63() int64 {
	r.lock.Lock()
	ret := r.src.Int63()
	r.lock.Unlock()
	return ret
}

func (r *lockedRandSource) Seed(seed int64) {
	r.lock.Lock()
	r.src.Seed(seed)
	r.lock.Unlock()
}

func randString(n int) string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	str := make([]byte, n)
	for i := range str {
		str[i] = chars[rnd.Intn(len(chars))]
	}
	return string(str)
}
