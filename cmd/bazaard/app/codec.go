package app

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
	amino "github.com/tendermint/go-amino"
)

var cdc = NewCodec()

// NewCodec returns the transaction codec. Every message the router accepts
// is registered as a concrete implementation of bazaar.Msg, named after its
// route.
func NewCodec() *amino.Codec {
	cdc := amino.NewCodec()
	cdc.RegisterInterface((*bazaar.Msg)(nil), nil)
	register := func(msg bazaar.Msg) {
		cdc.RegisterConcrete(msg, msg.Path(), nil)
	}

	register(&cash.SendMsg{})
	register(&cash.UpdateConfigurationMsg{})

	register(&nft.CreateMsg[Artwork]{})
	register(&nft.MutateMsg[Artwork]{})
	register(&nft.TransferMsg{})
	register(&nft.SealMsg{})

	register(&market.ListMsg{})
	register(&market.UnlistMsg{})
	register(&market.BuyMsg{})
	register(&market.UpdateConfigurationMsg{})
	return cdc
}
