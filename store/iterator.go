package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/bazaar/errors"
)

// ascendBtree returns a snapshot of all items within [start, end) in
// ascending order. A nil bound is open.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	collect := func(item btree.Item) bool {
		items = append(items, item.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// descendBtree returns a snapshot of all items within [start, end) in
// descending order. A nil bound is open.
func descendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	collect := func(item btree.Item) bool {
		items = append(items, item.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Descend(collect)
	case start == nil:
		bt.DescendLessOrEqual(bkeyLess{end}, collect)
	case end == nil:
		bt.DescendGreaterThan(bkeyLess{start}, collect)
	default:
		bt.DescendRange(bkeyLess{end}, bkeyLess{start}, collect)
	}
	return items
}

// itemIter combines the cached items of a cache wrap with the iterator of
// the store it wraps. Cached values shadow the parent ones and deleted
// items hide them.
type itemIter struct {
	items   []keyer
	idx     int
	reverse bool

	parent  Iterator
	pKey    []byte
	pValue  []byte
	pLoaded bool
	pDone   bool
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []keyer, parent Iterator, reverse bool) *itemIter {
	return &itemIter{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
}

// Next returns the next visible key value pair.
func (i *itemIter) Next() (key, value []byte, err error) {
	for {
		if err := i.loadParent(); err != nil {
			return nil, nil, err
		}

		var cached keyer
		if i.idx < len(i.items) {
			cached = i.items[i.idx]
		}
		if cached == nil {
			if i.pDone {
				return nil, nil, errors.ErrIteratorDone
			}
			i.pLoaded = false
			return i.pKey, i.pValue, nil
		}

		if !i.pDone {
			cmp := bytes.Compare(cached.Key(), i.pKey)
			if i.reverse {
				cmp = -cmp
			}
			if cmp > 0 {
				i.pLoaded = false
				return i.pKey, i.pValue, nil
			}
			if cmp == 0 {
				// Cache shadows the parent value.
				i.pLoaded = false
			}
		}

		i.idx++
		if set, ok := cached.(setItem); ok {
			return set.key, set.value, nil
		}
	}
}

func (i *itemIter) loadParent() error {
	if i.pLoaded || i.pDone {
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		i.pDone = true
		return nil
	case err != nil:
		return err
	}
	i.pKey, i.pValue, i.pLoaded = key, value, true
	return nil
}

// Release releases the parent iterator and drops the snapshot.
func (i *itemIter) Release() {
	i.parent.Release()
	i.items = nil
}
