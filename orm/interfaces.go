package orm

import (
	"github.com/iov-one/bazaar"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	bazaar.Persistent
	// Validate returns error if the model is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
}
