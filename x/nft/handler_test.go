package nft

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

type routes map[string]bazaar.Handler

func (r routes) Handle(path string, h bazaar.Handler) { r[path] = h }

func TestHandlers(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		signer      bazaar.Condition
		msg         bazaar.Msg
		wantCheck   *errors.Error
		wantDeliver *errors.Error
		wantEvent   string
		wantOwner   bazaar.Address
		wantTitle   string
	}{
		"create": {
			signer:    bob,
			msg:       &CreateMsg[artwork]{Details: artwork{Title: "dawn"}},
			wantEvent: "nft/created",
			wantOwner: alice.Address(),
			wantTitle: "sunset",
		},
		"create without a signature": {
			msg:         &CreateMsg[artwork]{Details: artwork{Title: "dawn"}},
			wantCheck:   errors.ErrUnauthorized,
			wantDeliver: errors.ErrUnauthorized,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
		"create with invalid details": {
			signer:      bob,
			msg:         &CreateMsg[artwork]{},
			wantCheck:   errors.ErrEmpty,
			wantDeliver: errors.ErrEmpty,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
		"mutate": {
			signer:    alice,
			msg:       &MutateMsg[artwork]{ID: 0, Details: artwork{Title: "night"}},
			wantEvent: "nft/mutated",
			wantOwner: alice.Address(),
			wantTitle: "night",
		},
		"mutate by a stranger": {
			signer:      bob,
			msg:         &MutateMsg[artwork]{ID: 0, Details: artwork{Title: "night"}},
			wantCheck:   ErrNotOwner,
			wantDeliver: ErrNotOwner,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
		"transfer": {
			signer:    alice,
			msg:       &TransferMsg{ID: 0, Destination: bob.Address()},
			wantEvent: "nft/transferred",
			wantOwner: bob.Address(),
			wantTitle: "sunset",
		},
		"transfer to an invalid address": {
			signer:      alice,
			msg:         &TransferMsg{ID: 0},
			wantCheck:   errors.ErrInput,
			wantDeliver: errors.ErrInput,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
		"seal": {
			signer:    alice,
			msg:       &SealMsg{ID: 0},
			wantEvent: "nft/sealed",
			wantOwner: alice.Address(),
			wantTitle: "sunset",
		},
		"seal missing token": {
			signer:      alice,
			msg:         &SealMsg{ID: 5},
			wantCheck:   errors.ErrNotFound,
			wantDeliver: errors.ErrNotFound,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
		"unknown message type": {
			signer:      alice,
			msg:         &weavetest.Msg{RoutePath: PathSeal},
			wantCheck:   errors.ErrType,
			wantDeliver: errors.ErrType,
			wantOwner:   alice.Address(),
			wantTitle:   "sunset",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			reg := NewRegistry[artwork]()
			id, err := reg.Create(db, alice.Address(), artwork{Title: "sunset"})
			assert.Nil(t, err)

			auth := &weavetest.Auth{Signer: tc.signer}
			rt := routes{}
			RegisterRoutes(rt, auth, reg)
			h := rt[tc.msg.Path()]

			tx := &weavetest.Tx{Msg: tc.msg}
			_, err = h.Check(context.Background(), db.CacheWrap(), tx)
			assert.IsErr(t, tc.wantCheck, err)

			res, err := h.Deliver(context.Background(), db, tx)
			assert.IsErr(t, tc.wantDeliver, err)
			if tc.wantEvent != "" {
				assert.Equal(t, 1, len(res.Events))
				assert.Equal(t, tc.wantEvent, res.Events[0].EventKind())
			}

			tok, err := reg.Token(db, id)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantTitle, tok.Details.Title)
			if !tok.Owner.Equals(tc.wantOwner) {
				t.Fatalf("want owner %s, got %s", tc.wantOwner, tok.Owner)
			}
		})
	}
}

func TestCreateHandlerReturnsID(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry[artwork]()
	auth := &weavetest.Auth{Signer: weavetest.NewCondition()}
	h := CreateHandler[artwork]{auth: auth, reg: reg}

	for want := AssetID(0); want < 3; want++ {
		tx := &weavetest.Tx{Msg: &CreateMsg[artwork]{Details: artwork{Title: "piece"}}}
		res, err := h.Deliver(context.Background(), db, tx)
		assert.Nil(t, err)
		got, err := ParseAssetID(res.Data)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
}

func TestQueries(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry[artwork]()
	alice := weavetest.NewCondition().Address()
	for _, title := range []string{"a", "b", "c"} {
		_, err := reg.Create(db, alice, artwork{Title: title})
		assert.Nil(t, err)
	}

	qr := bazaar.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/nfts/total").Query(db, bazaar.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, uint64(3), orm.DecodeSequence(res[0].Value))
	_, err = qr.Handler("/nfts/total").Query(db, bazaar.PrefixQueryMod, nil)
	assert.IsErr(t, errors.ErrInput, err)

	res, err = qr.Handler("/nfts").Query(db, bazaar.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))

	var tok Token[artwork]
	assert.Nil(t, tok.Unmarshal(res[2].Value))
	assert.Equal(t, "c", tok.Details.Title)
}

func TestGenesis(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	genesis := `{
		"nft": [
			{"owner": "` + alice.String() + `", "details": {"title": "first"}},
			{"owner": "` + bob.String() + `", "details": {"title": "second"}, "sealed": true}
		]
	}`
	var opts bazaar.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot decode genesis: %s", err)
	}

	db := store.MemStore()
	reg := NewRegistry[artwork]()
	assert.Nil(t, Initializer[artwork]{Registry: reg}.FromGenesis(opts, db))

	first, err := reg.Token(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, "first", first.Details.Title)
	assert.Equal(t, false, first.Sealed)

	second, err := reg.Token(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, true, second.Sealed)
	if !second.Owner.Equals(bob) {
		t.Fatalf("unexpected owner %s", second.Owner)
	}
}

func TestGenesisInvalidToken(t *testing.T) {
	var opts bazaar.Options
	if err := json.Unmarshal([]byte(`{"nft": [{"details": {"title": "x"}}]}`), &opts); err != nil {
		t.Fatalf("cannot decode genesis: %s", err)
	}
	err := Initializer[artwork]{Registry: NewRegistry[artwork]()}.FromGenesis(opts, store.MemStore())
	assert.IsErr(t, errors.ErrInput, err)
}

func TestMsgTarget(t *testing.T) {
	cases := map[string]struct {
		msg  interface{ Target() string }
		want string
	}{
		"mutate":   {msg: &MutateMsg[artwork]{ID: 3}, want: "3"},
		"transfer": {msg: &TransferMsg{ID: 40}, want: "40"},
		"seal":     {msg: &SealMsg{ID: 0}, want: "0"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.msg.Target())
		})
	}
}
