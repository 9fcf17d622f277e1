package nft

import "github.com/iov-one/bazaar/errors"

// Registry errors. A token that was never allocated is reported with
// errors.ErrNotFound.
var (
	ErrNotOwner         = errors.Register(500, "not the token owner")
	ErrLocked           = errors.Register(501, "token locked")
	ErrSealed           = errors.Register(502, "token sealed")
	ErrIDSpaceExhausted = errors.Register(503, "token id space exhausted")
)
