package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store/iavl"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "bazaar-test-chain"

func bzr(n int64) coin.Coin {
	return coin.NewCoin(n, 0, DefaultTicker)
}

// account is a key with its local nonce counter.
type account struct {
	key   *crypto.PrivateKey
	nonce int64
}

func newAccount() *account {
	return &account{key: weavetest.NewKey()}
}

func (a *account) addr() bazaar.Address {
	return a.key.PublicKey().Address()
}

// sign returns the serialized tx signed with the next nonce.
func (a *account) sign(t *testing.T, msg bazaar.Msg) []byte {
	t.Helper()
	tx := &Tx{Msg: msg}
	sig, err := sigs.SignTx(a.key, tx, chainID, a.nonce)
	require.NoError(t, err)
	a.nonce++
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)
	return raw
}

func newApp(t *testing.T, state genesisState) app.BaseApp {
	t.Helper()
	myApp := Application(iavl.NewMemCommitStore(), log.NewNopLogger(), false)
	appState, err := json.Marshal(state)
	require.NoError(t, err)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: appState})
	return myApp
}

func beginBlock(myApp app.BaseApp, height int64) {
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: chainID, Height: height, Time: time.Now()},
	})
}

func endBlock(myApp app.BaseApp, height int64) {
	myApp.EndBlock(abci.RequestEndBlock{Height: height})
	myApp.Commit()
}

func hasTag(res abci.ResponseDeliverTx, key, value string) bool {
	for _, tag := range res.Tags {
		if string(tag.Key) == key && string(tag.Value) == value {
			return true
		}
	}
	return false
}

func queryModels(t *testing.T, myApp app.BaseApp, path string, data []byte) []bazaar.Model {
	t.Helper()
	res := myApp.Query(abci.RequestQuery{Path: path, Data: data})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var keys, values app.ResultSet
	require.NoError(t, keys.Unmarshal(res.Key))
	require.NoError(t, values.Unmarshal(res.Value))
	models, err := app.JoinResults(&keys, &values)
	require.NoError(t, err)
	return models
}

func TestSaleThroughABCI(t *testing.T) {
	seller, buyer := newAccount(), newAccount()
	myApp := newApp(t, genesisState{
		Cash: []cash.GenesisAccount{
			{Address: seller.addr(), Coins: []coin.Coin{bzr(10)}},
			{Address: buyer.addr(), Coins: []coin.Coin{bzr(500)}},
		},
		NFT: []nft.GenesisToken[Artwork]{
			{Owner: seller.addr(), Details: Artwork{Title: "Mona Lisa"}, Sealed: true},
		},
		Conf: map[string]interface{}{
			"market": market.Configuration{Currency: DefaultTicker},
		},
	})

	beginBlock(myApp, 1)

	create := myApp.DeliverTx(seller.sign(t, &nft.CreateMsg[Artwork]{
		Details: Artwork{Title: "Starry Night", URI: "https://example.com/starry.png"},
	}))
	require.Equal(t, uint32(0), create.Code, create.Log)
	id, err := nft.ParseAssetID(create.Data)
	require.NoError(t, err)
	assert.Equal(t, nft.AssetID(1), id)
	assert.True(t, hasTag(create, "action", nft.PathCreate))

	list := myApp.DeliverTx(seller.sign(t, &market.ListMsg{ID: id, Price: bzr(150)}))
	require.Equal(t, uint32(0), list.Code, list.Log)
	assert.True(t, hasTag(list, "event", "market/listed"))

	// a listed token cannot be moved by its owner
	transfer := myApp.DeliverTx(seller.sign(t, &nft.TransferMsg{ID: id, Destination: buyer.addr()}))
	assert.Equal(t, nft.ErrLocked.ABCICode(), transfer.Code)
	assert.Empty(t, transfer.Tags)

	buy := myApp.DeliverTx(buyer.sign(t, &market.BuyMsg{ID: id}))
	require.Equal(t, uint32(0), buy.Code, buy.Log)
	assert.True(t, hasTag(buy, "action", "market/buy"))
	assert.True(t, hasTag(buy, "event", "market/sold"))

	endBlock(myApp, 1)

	tokens := queryModels(t, myApp, "/nfts", id.Key())
	require.Len(t, tokens, 1)
	var token nft.Token[Artwork]
	require.NoError(t, token.Unmarshal(tokens[0].Value))
	assert.True(t, buyer.addr().Equals(token.Owner))
	assert.False(t, token.Locked)
	assert.Equal(t, "Starry Night", token.Details.Title)

	assert.Empty(t, queryModels(t, myApp, "/listings", id.Key()))

	wallets := queryModels(t, myApp, "/wallets", seller.addr())
	require.Len(t, wallets, 1)
	var wallet cash.Wallet
	require.NoError(t, wallet.Unmarshal(wallets[0].Value))
	assert.Equal(t, coin.Coins{bzr(160)}, wallet.Coins)

	total := queryModels(t, myApp, "/nfts/total", nil)
	require.Len(t, total, 1)
	next, err := nft.ParseAssetID(total[0].Value)
	require.NoError(t, err)
	assert.Equal(t, nft.AssetID(2), next)
}

func TestRejectedTransactions(t *testing.T) {
	seller, buyer := newAccount(), newAccount()
	myApp := newApp(t, genesisState{
		Cash: []cash.GenesisAccount{
			{Address: buyer.addr(), Coins: []coin.Coin{bzr(100)}},
		},
		NFT: []nft.GenesisToken[Artwork]{
			{Owner: seller.addr(), Details: Artwork{Title: "Mona Lisa"}},
		},
	})
	beginBlock(myApp, 1)

	garbage := myApp.CheckTx([]byte{0xff, 0x01, 0x02})
	assert.NotEqual(t, uint32(errors.SuccessABCICode), garbage.Code)

	unsigned, err := (&Tx{Msg: &market.BuyMsg{ID: 0}}).Marshal()
	require.NoError(t, err)
	res := myApp.DeliverTx(unsigned)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	notListed := myApp.DeliverTx(buyer.sign(t, &market.BuyMsg{ID: 0}))
	assert.Equal(t, market.ErrNotListed.ABCICode(), notListed.Code)

	// the failed call still consumed the nonce, replaying the old one fails
	buyer.nonce = 0
	replay := myApp.DeliverTx(buyer.sign(t, &market.BuyMsg{ID: 0}))
	assert.Equal(t, sigs.ErrInvalidSequence.ABCICode(), replay.Code)

	invalid := myApp.CheckTx(seller.sign(t, &nft.CreateMsg[Artwork]{}))
	assert.Equal(t, errors.ErrEmpty.ABCICode(), invalid.Code)
}

func TestGenInitOptions(t *testing.T) {
	owner := weavetest.NewKey().PublicKey().Address()
	raw, err := GenInitOptions([]string{"ART", owner.String()})
	require.NoError(t, err)

	myApp := Application(iavl.NewMemCommitStore(), log.NewNopLogger(), false)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: raw})
	myApp.Commit()

	wallets := queryModels(t, myApp, "/wallets", owner)
	require.Len(t, wallets, 1)
	var wallet cash.Wallet
	require.NoError(t, wallet.Unmarshal(wallets[0].Value))
	assert.Equal(t, coin.Coins{coin.NewCoin(123456789, 0, "ART")}, wallet.Coins)

	_, err = GenInitOptions([]string{"art"})
	assert.True(t, errors.ErrCurrency.Is(err))
}

func TestTxSignBytesIgnoreSignatures(t *testing.T) {
	a := newAccount()
	tx := &Tx{Msg: &market.UnlistMsg{ID: 3}}
	before, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(a.key, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, tx.Signatures, 1)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, &market.UnlistMsg{ID: 3}, msg)

	_, err = (&Tx{}).GetMsg()
	assert.True(t, errors.ErrInput.Is(err))
}

func TestArtworkValidate(t *testing.T) {
	cases := map[string]struct {
		art     Artwork
		wantErr *errors.Error
	}{
		"title only":   {art: Artwork{Title: "x"}},
		"with uri":     {art: Artwork{Title: "x", URI: "ipfs://QmHash"}},
		"empty title":  {art: Artwork{}, wantErr: errors.ErrEmpty},
		"relative uri": {art: Artwork{Title: "x", URI: "pictures/x.png"}, wantErr: errors.ErrInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.art.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err), "%+v", err)
		})
	}
}
