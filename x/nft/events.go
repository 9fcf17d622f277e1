package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/tendermint/tendermint/libs/common"
)

// Created is emitted when a new token was allocated.
type Created struct {
	ID    AssetID
	Owner bazaar.Address
}

func (Created) EventKind() string { return "nft/created" }

func (e Created) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
		{Key: []byte("owner"), Value: []byte(e.Owner.String())},
	}
}

// Mutated is emitted when the details of a token were replaced.
type Mutated struct {
	ID AssetID
}

func (Mutated) EventKind() string { return "nft/mutated" }

func (e Mutated) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
	}
}

// Transferred is emitted when a token changed its owner by the will of the
// previous owner.
type Transferred struct {
	ID   AssetID
	From bazaar.Address
	To   bazaar.Address
}

func (Transferred) EventKind() string { return "nft/transferred" }

func (e Transferred) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
		{Key: []byte("from"), Value: []byte(e.From.String())},
		{Key: []byte("to"), Value: []byte(e.To.String())},
	}
}

// Sealed is emitted when a token was sealed.
type Sealed struct {
	ID AssetID
}

func (Sealed) EventKind() string { return "nft/sealed" }

func (e Sealed) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("id"), Value: []byte(e.ID.String())},
	}
}

var (
	_ bazaar.Event = Created{}
	_ bazaar.Event = Mutated{}
	_ bazaar.Event = Transferred{}
	_ bazaar.Event = Sealed{}
)
