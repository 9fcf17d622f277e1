package store

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func btreeSuite() *TestSuite {
	return NewTestSuite(func() (CacheableKVStore, func()) {
		return MemStore(), func() {}
	})
}

func TestBTreeCacheGetSet(t *testing.T)       { btreeSuite().GetSet(t) }
func TestBTreeCacheConflicts(t *testing.T)    { btreeSuite().CacheConflicts(t) }
func TestBTreeFuzzIterator(t *testing.T)      { btreeSuite().FuzzIterator(t) }
func TestBTreeIteratorConflicts(t *testing.T) { btreeSuite().IteratorWithConflicts(t) }

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	assert.Nil(t, base.Set([]byte("a"), []byte("1")))

	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	assert.Nil(t, inner.Set([]byte("b"), []byte("2")))
	assert.Nil(t, inner.Delete([]byte("a")))

	// inner changes are visible to outer only after write
	has, err := outer.Has([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
	assert.Nil(t, inner.Write())

	got, err := outer.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)

	// base is untouched until the outer layer is written
	got, err = base.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)

	outer.Discard()
	got, err = base.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestLogableStore(t *testing.T) {
	kv, ops := LogableStore()
	assert.Nil(t, kv.Set([]byte("k"), []byte("v")))
	assert.Nil(t, kv.Delete([]byte("x")))

	logged := ops.ShowOps()
	assert.Equal(t, 2, len(logged))
	key, value, ok := logged[0].IsSetOp()
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("k"), key)
	assert.Equal(t, []byte("v"), value)
	key, ok = logged[1].IsDeleteOp()
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("x"), key)
}

func TestSliceIterator(t *testing.T) {
	iter := NewSliceIterator([]Model{Pair([]byte("a"), []byte("1"))})
	key, value, err := iter.Next()
	assert.Nil(t, err)
	assert.Equal(t, []byte("a"), key)
	assert.Equal(t, []byte("1"), value)
	_, _, err = iter.Next()
	assert.IsErr(t, errors.ErrIteratorDone, err)
	iter.Release()
}
