package sigs

import "github.com/iov-one/bazaar/errors"

// ErrInvalidSequence is returned when a signature carries a nonce that was
// already used or is not the next one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
