package app

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
)

// DefaultTicker is the currency of a development chain.
const DefaultTicker = "BZR"

// genesisState is the app_state written by GenInitOptions.
type genesisState struct {
	Cash []cash.GenesisAccount       `json:"cash"`
	NFT  []nft.GenesisToken[Artwork] `json:"nft"`
	Conf map[string]interface{}      `json:"conf,omitempty"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// You can set the ticker and the owner address as the two arguments. When
// no address is given a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr bazaar.Address
	if len(args) > 1 {
		var err error
		addr, err = bazaar.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		var key *crypto.PrivateKey
		addr, key = server.GenerateCoinKey()
		keys, err := json.MarshalIndent(key, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		fmt.Println(string(keys))
	}

	state := genesisState{
		Cash: []cash.GenesisAccount{
			{Address: addr, Coins: []coin.Coin{coin.NewCoin(123456789, 0, ticker)}},
		},
		NFT: []nft.GenesisToken[Artwork]{},
		Conf: map[string]interface{}{
			"cash":   cash.Configuration{Owner: addr},
			"market": market.Configuration{Owner: addr, Currency: ticker},
		},
	}
	return json.MarshalIndent(state, "", "  ")
}
