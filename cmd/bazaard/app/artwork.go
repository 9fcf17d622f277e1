package app

import (
	"net/url"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/nft"
)

const (
	maxTitleLength = 128
	maxURILength   = 256
)

// Artwork describes the tokens registered by this application.
type Artwork struct {
	Title string `json:"title"`
	// URI points to the content. It is optional.
	URI string `json:"uri,omitempty"`
}

var _ nft.Details = Artwork{}

func (a Artwork) Validate() error {
	var err error
	switch n := len(a.Title); {
	case n == 0:
		err = errors.Append(err, errors.Wrap(errors.ErrEmpty, "title"))
	case n > maxTitleLength:
		err = errors.Append(err, errors.Wrapf(errors.ErrInput, "title longer than %d", maxTitleLength))
	}
	if a.URI != "" {
		if len(a.URI) > maxURILength {
			err = errors.Append(err, errors.Wrapf(errors.ErrInput, "uri longer than %d", maxURILength))
		} else if u, e := url.Parse(a.URI); e != nil || u.Scheme == "" {
			err = errors.Append(err, errors.Wrap(errors.ErrInput, "uri must be absolute"))
		}
	}
	return err
}
