package store

import "github.com/iov-one/bazaar"

// Aliases of the root interfaces, so the store implementations do not
// have to qualify every type.
type (
	ReadOnlyKVStore  = bazaar.ReadOnlyKVStore
	SetDeleter       = bazaar.SetDeleter
	KVStore          = bazaar.KVStore
	Batch            = bazaar.Batch
	Iterator         = bazaar.Iterator
	CacheableKVStore = bazaar.CacheableKVStore
	KVCacheWrap      = bazaar.KVCacheWrap
	CommitKVStore    = bazaar.CommitKVStore
	CommitID         = bazaar.CommitID
	Model            = bazaar.Model
)

// Pair constructs a model from a key-value pair
var Pair = bazaar.Pair
