package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/tendermint/tendermint/libs/common"
)

// Listed is emitted when a token was offered for sale.
type Listed struct {
	ID    nft.AssetID
	Price coin.Coin
}

func (Listed) EventKind() string { return "market/listed" }

func (e Listed) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
		{Key: []byte("price"), Value: []byte(e.Price.String())},
	}
}

// Unlisted is emitted when an offer was withdrawn.
type Unlisted struct {
	ID nft.AssetID
}

func (Unlisted) EventKind() string { return "market/unlisted" }

func (e Unlisted) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
	}
}

// Sold is emitted when a token changed hands through the exchange.
type Sold struct {
	ID    nft.AssetID
	Buyer bazaar.Address
}

func (Sold) EventKind() string { return "market/sold" }

func (e Sold) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
		{Key: []byte("buyer"), Value: []byte(e.Buyer.String())},
	}
}
