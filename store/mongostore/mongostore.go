/*
Package mongostore provides an implementation of store.NodeStore
that uses a MongoDB database as backend, with one document per
node record in a nodes collection.
*/
package mongostore

import (
	"context"
	"fmt"

	"github.com/mubarakalmehairbi/SuperNodes/store"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const nodesCollectionName = "nodes"

type mongoStore struct {
	session *mgo.Session
}

/*
Open takes a MongoDB database session and returns a
store.NodeStore that works on the nodes collection of the
default database for that session, or an error if the collection
indexes cannot be ensured. The store works on its own copy of
the session and releases it on Close.
*/
func Open(ctx context.Context, session *mgo.Session) (store.NodeStore, error) {
	ms := &mongoStore{session.Copy()}
	err := ms.ensureIndexes()
	if err != nil {
		ms.session.Close()
		return nil, err
	}
	return ms, nil
}

func (ms *mongoStore) Create(ctx context.Context, r *store.Record) error {
	r.ID = bson.NewObjectId().Hex()
	err := ms.collection().Insert(r)
	if err != nil {
		return fmt.Errorf("creating record in mongodb: %v", err)
	}
	return nil
}

func (ms *mongoStore) Get(ctx context.Context, id string) (*store.Record, error) {
	r := &store.Record{}
	err := ms.collection().Find(bson.M{"id": id}).One(r)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q from mongodb: %v", id, err)
	}
	return r, nil
}

func (ms *mongoStore) Store(ctx context.Context, r *store.Record) error {
	_, err := ms.collection().Upsert(bson.M{"id": r.ID}, r)
	if err != nil {
		return fmt.Errorf("storing record %q in mongodb: %v", r.ID, err)
	}
	return nil
}

func (ms *mongoStore) Delete(ctx context.Context, r *store.Record) error {
	err := ms.collection().Remove(bson.M{"id": r.ID})
	if err != nil && err != mgo.ErrNotFound {
		return fmt.Errorf("deleting record %q from mongodb: %v", r.ID, err)
	}
	return nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	ms.session.Close()
	return nil
}

func (ms *mongoStore) collection() *mgo.Collection {
	return ms.session.DB("").C(nodesCollectionName)
}

func (ms *mongoStore) ensureIndexes() error {
	err := ms.collection().EnsureIndex(mgo.Index{
		Key:    []string{"id"},
		Unique: true,
	})
	if err != nil {
		return fmt.Errorf("ensuring indexes on mongodb nodes collection: %v", err)
	}
	return nil
}
