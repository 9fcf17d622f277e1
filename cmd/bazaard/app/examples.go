package app

import (
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/commands"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	seller := crypto.GenPrivKeyEd25519()
	buyer := crypto.GenPrivKeyEd25519()
	sellerAddr := seller.PublicKey().Address()
	buyerAddr := buyer.PublicKey().Address()
	price := coin.NewCoin(150, 0, DefaultTicker)

	token := &nft.Token[Artwork]{
		Owner:   sellerAddr,
		Details: Artwork{Title: "Sunflowers", URI: "https://example.com/sunflowers.png"},
	}
	listing := &market.Listing{Seller: sellerAddr, Price: price}
	wallet := &cash.Wallet{Coins: coin.Coins{price}}

	create := &nft.CreateMsg[Artwork]{Details: token.Details}
	list := &market.ListMsg{ID: 0, Price: price}
	buy := &market.BuyMsg{ID: 0}
	send := &cash.SendMsg{
		Source:      buyerAddr,
		Destination: sellerAddr,
		Amount:      price,
		Memo:        "thanks",
	}

	unsigned := &Tx{Msg: buy}
	signed := &Tx{Msg: buy}
	sig, err := sigs.SignTx(buyer, signed, "test-chain-bazaar", 0)
	if err != nil {
		panic(err)
	}
	signed.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "token", Obj: token},
		{Filename: "listing", Obj: listing},
		{Filename: "wallet", Obj: wallet},
		{Filename: "create_msg", Obj: create},
		{Filename: "list_msg", Obj: list},
		{Filename: "buy_msg", Obj: buy},
		{Filename: "send_msg", Obj: send},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: signed},
	}
}
