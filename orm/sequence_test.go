package orm

import (
	"bytes"
	"math"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("nft", "total")
	b := NewSequence("nft", "other")

	for want := uint64(0); want < 5; want++ {
		got, err := a.Next(db)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
	current, err := a.Current(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5), current)

	// sequences do not share state
	got, err := b.Next(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), got)

	raw, err := db.Get([]byte("_s.nft:total"))
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(5), raw)
}

func TestSequenceOverflow(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("nft", "total")

	assert.Nil(t, s.Set(db, math.MaxUint64-1))
	last, err := s.Next(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64-1), last)

	_, err = s.Next(db)
	assert.IsErr(t, errors.ErrOverflow, err)

	current, err := s.Current(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), current)
}

func TestSequenceCorrupted(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("nft", "total")
	assert.Nil(t, db.Set([]byte("_s.nft:total"), []byte{1, 2}))
	_, err := s.Next(db)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestEncodeSequenceOrder(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 1 << 40, math.MaxUint64}
	for i := 1; i < len(values); i++ {
		prev, next := EncodeSequence(values[i-1]), EncodeSequence(values[i])
		if bytes.Compare(prev, next) >= 0 {
			t.Fatalf("%d must sort before %d", values[i-1], values[i])
		}
		assert.Equal(t, values[i], DecodeSequence(next))
	}
}
