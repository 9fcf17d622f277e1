package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Sequence maintains a counter, and generates a series of unique values.
// Values are never reused: once the counter reaches its maximum, no more
// values can be allocated.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//
//	_s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	return Sequence{
		id: []byte("_s." + bucket + ":" + name),
	}
}

// Key returns the database key under which the counter is stored.
func (s Sequence) Key() []byte {
	return s.id
}

// Next returns the current counter value and stores the counter increased by
// one. ErrOverflow is returned and the state is not modified if the counter
// cannot be increased.
func (s Sequence) Next(db bazaar.KVStore) (uint64, error) {
	val, err := s.Current(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "sequence exhausted")
	}
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, errors.Wrap(err, "cannot store sequence")
	}
	return val, nil
}

// Current returns the number of values allocated so far. This method does
// not modify the sequence state.
func (s Sequence) Current(db bazaar.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read sequence")
	}
	if raw == nil {
		return 0, nil
	}
	if err := ValidateSequence(raw); err != nil {
		return 0, errors.Wrap(err, "corrupted sequence")
	}
	return DecodeSequence(raw), nil
}

// Set overwrites the counter value. Use it only when initializing the
// state.
func (s Sequence) Set(db bazaar.KVStore, val uint64) error {
	return db.Set(s.id, EncodeSequence(val))
}

// ValidateSequence returns an error if this is not an 8-byte
// big endian value
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}

// DecodeSequence returns the value represented by an 8 byte big endian
// sequence.
func DecodeSequence(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// EncodeSequence returns the 8 byte big endian representation of given
// value. Encoded values preserve the numeric order when compared with
// bytes.Compare.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}
