package store

import (
	"context"
	"fmt"
	"sync"
)

type memoryNodeStore struct {
	records map[string]*Record
	lock    *sync.RWMutex
	nextID  uint64
}

// NewMemoryStore returns an implementation of NodeStore with
// the process memory space as underlying backend
func NewMemoryStore() NodeStore {
	return &memoryNodeStore{
		records: make(map[string]*Record),
		lock:    &sync.RWMutex{},
	}
}

func (mns *memoryNodeStore) Create(ctx context.Context, r *Record) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		taken := true
		for taken {
			if err := ctx.Err(); err != nil {
				return err
			}
			mns.nextID++
			r.ID = fmt.Sprintf("%d", mns.nextID)
			_, taken = mns.records[r.ID]
		}
		mns.records[r.ID] = r
		return nil
	})
}

func (mns *memoryNodeStore) Store(ctx context.Context, r *Record) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		mns.records[r.ID] = r
		return nil
	})
}

func (mns *memoryNodeStore) Get(ctx context.Context, id string) (*Record, error) {
	var r *Record
	err := mns.withRLock(ctx, func(ctx context.Context) error {
		r = mns.records[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (mns *memoryNodeStore) Delete(ctx context.Context, r *Record) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		delete(mns.records, r.ID)
		return nil
	})
}

func (mns *memoryNodeStore) Close(ctx context.Context) error {
	return nil
}

func (mns *memoryNodeStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		mns.lock.Lock()
		select {
		case <-ctx.Done():
			mns.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer mns.lock.Unlock()
	}
	return f(ctx)
}

func (mns *memoryNodeStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		mns.lock.RLock()
		select {
		case <-ctx.Done():
			mns.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer mns.lock.RUnlock()
	}
	return f(ctx)
}
