package utils

import (
	"context"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	key := []byte("key")
	val := []byte("value")

	cases := map[string]struct {
		savepoint Savepoint
		handler   bazaar.Handler
		check     bool
		wantErr   *errors.Error
		wantValue []byte
	}{
		"deliver success is written": {
			savepoint: NewSavepoint().OnDeliver(),
			handler:   weavetest.WriteHandler{Key: key, Value: val},
			wantValue: val,
		},
		"deliver failure is discarded": {
			savepoint: NewSavepoint().OnDeliver(),
			handler:   weavetest.WriteHandler{Key: key, Value: val, Err: errors.ErrHuman},
			wantErr:   errors.ErrHuman,
		},
		"deliver failure without savepoint leaves a trace": {
			savepoint: NewSavepoint().OnCheck(),
			handler:   weavetest.WriteHandler{Key: key, Value: val, Err: errors.ErrHuman},
			wantErr:   errors.ErrHuman,
			wantValue: val,
		},
		"check failure is discarded": {
			savepoint: NewSavepoint().OnCheck(),
			handler:   weavetest.WriteHandler{Key: key, Value: val, Err: errors.ErrHuman},
			check:     true,
			wantErr:   errors.ErrHuman,
		},
		"check success is written": {
			savepoint: NewSavepoint().OnCheck().OnDeliver(),
			handler:   weavetest.WriteHandler{Key: key, Value: val},
			check:     true,
			wantValue: val,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			h := weavetest.Decorate(tc.handler, tc.savepoint)
			var err error
			if tc.check {
				_, err = h.Check(context.Background(), db, &weavetest.Tx{})
			} else {
				_, err = h.Deliver(context.Background(), db, &weavetest.Tx{})
			}
			assert.IsErr(t, tc.wantErr, err)

			got, err := db.Get(key)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantValue, got)
		})
	}
}

// plainStore hides the CacheWrap method of the wrapped store.
type plainStore struct {
	bazaar.KVStore
}

func TestAtomic(t *testing.T) {
	db := plainStore{KVStore: store.MemStore()}

	err := Atomic(db, func(kv bazaar.KVStore) error {
		if err := kv.Set([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return errors.ErrState
	})
	assert.IsErr(t, errors.ErrState, err)
	has, err := db.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	err = Atomic(db, func(kv bazaar.KVStore) error {
		return kv.Set([]byte("a"), []byte("2"))
	})
	assert.Nil(t, err)
	got, err := db.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
}
