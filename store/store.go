/*
Package store persists node trees as arenas of flattened node
records keyed by stable identifiers, with one record per node and
parent/children linkage by id. Backends for process memory,
redis, MongoDB and SQL databases are provided, the last three in
subpackages.
*/
package store

import (
	"context"
	"encoding/json"
	"fmt"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/inequality"
)

/*
Record is the flattened representation of a single node: its
scalar attributes plus linkage to its parent and children by id.
Value and Attrs are kept JSON-encoded so every backend can store
them as text.
*/
type Record struct {
	ID               string   `json:"id" bson:"id"`
	ParentID         string   `json:"pId,omitempty" bson:"pId,omitempty"`
	NodeID           string   `json:"nId,omitempty" bson:"nId,omitempty"`
	ChildIDs         []string `json:"chIds,omitempty" bson:"chIds,omitempty"`
	Name             string   `json:"name,omitempty" bson:"name,omitempty"`
	Value            string   `json:"value,omitempty" bson:"value,omitempty"`
	Function         string   `json:"function,omitempty" bson:"function,omitempty"`
	ChildNameIfTrue  string   `json:"ifTrue,omitempty" bson:"ifTrue,omitempty"`
	ChildNameIfFalse string   `json:"ifFalse,omitempty" bson:"ifFalse,omitempty"`
	Attrs            string   `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

/*
NodeStore is an interface to manage a store where node records
can be created, retrieved, updated and deleted.

All its methods take a context that may allow cancelling the
operation (thus forcing the return of an error) if the
implementation allows it.
*/
type NodeStore interface {
	// Create takes a record and stores it for the first time in
	// the store, creating an ID for it and setting it on the
	// record. It returns an error if the record cannot be stored.
	Create(ctx context.Context, r *Record) error
	// Get takes an id and returns the record in the store with
	// that id (or nil if it cannot be found) or an error if the
	// store cannot be queried
	Get(ctx context.Context, id string) (*Record, error)
	// Store takes a record already existing in the store and
	// updates it on the store. It expects the record to have an
	// ID which it will not alter. It returns an error if the
	// update cannot be performed.
	Store(ctx context.Context, r *Record) error
	// Delete takes a record already existing in the store and
	// deletes it on the store. It returns an error if the record
	// exists but the deletion cannot be performed.
	Delete(ctx context.Context, r *Record) error
	// Close closes the store, freeing any resources in use and
	// ensuring any pending changes are applied before returning
	// (unless the context expires). It returns an error if the
	// Close cannot be completed.
	Close(ctx context.Context) error
}

/*
Save flattens the tree rooted at the given node into records and
creates them on the given store, children linked to parents by
the ids the store assigns. It returns the id assigned to the
root record, or an error if a node cannot be flattened or the
store fails.
*/
func Save(ctx context.Context, s NodeStore, root *supernodes.Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("%w: cannot save a nil node", supernodes.ErrValidation)
	}
	r, err := NewRecord(root, "")
	if err != nil {
		return "", err
	}
	if err := s.Create(ctx, r); err != nil {
		return "", fmt.Errorf("saving node %q: %v", root.Name, err)
	}
	if err := saveChildren(ctx, s, root, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

func saveChildren(ctx context.Context, s NodeStore, n *supernodes.Node, r *Record) error {
	for _, child := range n.Children() {
		cr, err := NewRecord(child, r.ID)
		if err != nil {
			return err
		}
		if err := s.Create(ctx, cr); err != nil {
			return fmt.Errorf("saving node %q: %v", child.Name, err)
		}
		if err := saveChildren(ctx, s, child, cr); err != nil {
			return err
		}
		r.ChildIDs = append(r.ChildIDs, cr.ID)
	}
	if len(r.ChildIDs) == 0 {
		return nil
	}
	if err := s.Store(ctx, r); err != nil {
		return fmt.Errorf("linking children of node %q: %v", n.Name, err)
	}
	return nil
}

/*
Load retrieves the record with the given id from the given store
and rebuilds the tree rooted at it, following children linkage.
It returns an error wrapping supernodes.ErrNotFound if the
record or any linked child record does not exist.
*/
func Load(ctx context.Context, s NodeStore, rootID string) (*supernodes.Node, error) {
	r, err := s.Get(ctx, rootID)
	if err != nil {
		return nil, fmt.Errorf("loading node %q: %v", rootID, err)
	}
	if r == nil {
		return nil, fmt.Errorf("loading node %q: %w", rootID, supernodes.ErrNotFound)
	}
	n, err := NodeFromRecord(r)
	if err != nil {
		return nil, err
	}
	for _, cid := range r.ChildIDs {
		child, err := Load(ctx, s, cid)
		if err != nil {
			return nil, err
		}
		if err := n.Append(child); err != nil {
			return nil, fmt.Errorf("loading node %q: %w", rootID, err)
		}
	}
	return n, nil
}

/*
NewRecord flattens a single node, without its children, into a
record with the given parent id. It returns an error wrapping
supernodes.ErrValidation if the node's value or attributes
cannot be JSON-encoded or its function has no textual
representation.
*/
func NewRecord(n *supernodes.Node, parentID string) (*Record, error) {
	r := &Record{
		ParentID:         parentID,
		NodeID:           n.ID,
		Name:             n.Name,
		ChildNameIfTrue:  n.ChildNameIfTrue,
		ChildNameIfFalse: n.ChildNameIfFalse,
	}
	if n.Function != nil {
		r.Function = n.Function.String()
		if r.Function == "" {
			return nil, fmt.Errorf("%w: function of node %q has no textual representation", supernodes.ErrValidation, n.Name)
		}
	}
	if n.Value != nil {
		value, err := json.Marshal(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding value of node %q: %v", supernodes.ErrValidation, n.Name, err)
		}
		r.Value = string(value)
	}
	if len(n.Attrs) > 0 {
		attrs, err := json.Marshal(n.Attrs)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding attributes of node %q: %v", supernodes.ErrValidation, n.Name, err)
		}
		r.Attrs = string(attrs)
	}
	return r, nil
}

/*
NodeFromRecord rebuilds a single node, without children, from
its record.
*/
func NodeFromRecord(r *Record) (*supernodes.Node, error) {
	n := &supernodes.Node{
		Name:             r.Name,
		ID:               r.NodeID,
		ChildNameIfTrue:  r.ChildNameIfTrue,
		ChildNameIfFalse: r.ChildNameIfFalse,
	}
	if r.Function != "" {
		f, err := inequality.Parse(r.Function)
		if err != nil {
			return nil, fmt.Errorf("rebuilding node %q: %v", r.ID, err)
		}
		n.Function = f
	}
	if r.Value != "" {
		if err := json.Unmarshal([]byte(r.Value), &n.Value); err != nil {
			return nil, fmt.Errorf("rebuilding node %q: decoding value: %v", r.ID, err)
		}
	}
	if r.Attrs != "" {
		if err := json.Unmarshal([]byte(r.Attrs), &n.Attrs); err != nil {
			return nil, fmt.Errorf("rebuilding node %q: decoding attributes: %v", r.ID, err)
		}
	}
	return n, nil
}
