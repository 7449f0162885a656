/*
Package redisstore provides an implementation of store.NodeStore
backed by a redis database, with records serialized as JSON
under a configurable key prefix.
*/
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mubarakalmehairbi/SuperNodes/store"
	redis "gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
}

// New builds a store.NodeStore backed by a redis DB
func New(rc *redis.Client, prefix string) store.NodeStore {
	return &redisStore{rc, prefix}
}

func (rs *redisStore) Create(ctx context.Context, r *store.Record) error {
	var ok bool
	for !ok {
		r.ID = randString(20)
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("creating record: encoding record: %v", err)
		}
		ok, err = rs.rc.SetNX(rs.keyFor(r.ID), data, 0).Result()
		if err != nil {
			return fmt.Errorf("creating record in redis: %v", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*store.Record, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q: %v", id, err)
	}
	r := &store.Record{}
	if err := json.Unmarshal([]byte(data), r); err != nil {
		return nil, fmt.Errorf("retrieving record %q: decoding %q: %v", id, data, err)
	}
	return r, nil
}

func (rs *redisStore) Store(ctx context.Context, r *store.Record) error {
	redisID := rs.keyFor(r.ID)
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("storing record %q: encoding record: %v", redisID, err)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing record %q in redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, r *store.Record) error {
	redisID := rs.keyFor(r.ID)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting record %q from redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
