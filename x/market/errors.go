package market

import "github.com/iov-one/bazaar/errors"

// ErrNotListed is returned when a token that is not for sale is unlisted or
// bought.
var ErrNotListed = errors.Register(520, "not listed")
