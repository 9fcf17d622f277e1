package orm

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// prefixQuery serves key and prefix queries for all data stored under a
// single prefix. Returned models carry the full database key.
type prefixQuery struct {
	prefix []byte
}

var _ bazaar.QueryHandler = prefixQuery{}

func (q prefixQuery) Query(db bazaar.ReadOnlyKVStore, mod string, data []byte) ([]bazaar.Model, error) {
	key := append(append([]byte{}, q.prefix...), data...)
	switch mod {
	case bazaar.KeyQueryMod:
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []bazaar.Model{bazaar.Pair(key, value)}, nil
	case bazaar.PrefixQueryMod:
		return QueryPrefix(db, key)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// QueryPrefix returns all models stored under given prefix, ordered by key.
func QueryPrefix(db bazaar.ReadOnlyKVStore, prefix []byte) ([]bazaar.Model, error) {
	iter, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(iter)
}

// ConsumeIterator will read all remaining data into an
// array and release the iterator
func ConsumeIterator(iter bazaar.Iterator) ([]bazaar.Model, error) {
	defer iter.Release()

	var res []bazaar.Model
	for {
		key, value, err := iter.Next()
		switch {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		}
		res = append(res, bazaar.Pair(key, value))
	}
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
