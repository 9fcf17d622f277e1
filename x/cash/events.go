package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/tendermint/tendermint/libs/common"
)

// Sent is emitted when coins were moved between two wallets.
type Sent struct {
	From   bazaar.Address
	To     bazaar.Address
	Amount coin.Coin
}

var _ bazaar.Event = Sent{}

func (Sent) EventKind() string { return "cash/sent" }

func (e Sent) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("from"), Value: []byte(e.From.String())},
		{Key: []byte("to"), Value: []byte(e.To.String())},
		{Key: []byte("amount"), Value: []byte(e.Amount.String())},
	}
}
