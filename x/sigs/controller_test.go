package sigs

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

type signedTx struct {
	weavetest.Tx
	payload []byte
	sigs    []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.sigs
}

func TestSignatureReplay(t *testing.T) {
	const chainID = "bazaar-test"
	db := store.MemStore()
	key := weavetest.NewKey()
	tx := &signedTx{payload: []byte("buy token 7")}

	nonce, err := NextNonce(db, key.PublicKey().Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(0), nonce)

	sig, err := SignTx(key, tx, chainID, nonce)
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{sig}

	signers, err := VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(signers))
	if !signers[0].Equals(key.PublicKey().Condition()) {
		t.Fatalf("unexpected signer %s", signers[0])
	}

	// the same signature cannot be used twice
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	nonce, err = NextNonce(db, key.PublicKey().Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), nonce)

	// signed for another chain
	sig, err = SignTx(key, tx, "other-chain", nonce)
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{sig}
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// payload was changed after signing
	sig, err = SignTx(key, tx, chainID, nonce)
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{sig}
	tx.payload = []byte("buy token 8")
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("data"), "bazaar-test", 1)
	assert.Nil(t, err)
	b, err := BuildSignBytes([]byte("data"), "bazaar-test", 2)
	assert.Nil(t, err)
	if len(a) != 64 || string(a) == string(b) {
		t.Fatal("nonce must change the sign bytes")
	}

	_, err = BuildSignBytes([]byte("data"), "x", 1)
	assert.IsErr(t, errors.ErrInput, err)
	_, err = BuildSignBytes([]byte("data"), "bazaar-test", -1)
	assert.IsErr(t, ErrInvalidSequence, err)
}

func TestStdSignatureValidate(t *testing.T) {
	key := weavetest.NewKey()
	cases := map[string]struct {
		sig     StdSignature
		wantErr *errors.Error
	}{
		"missing key":       {sig: StdSignature{}, wantErr: errors.ErrUnauthorized},
		"missing signature": {sig: StdSignature{Pubkey: key.PublicKey()}, wantErr: errors.ErrUnauthorized},
		"negative sequence": {sig: StdSignature{Sequence: -1}, wantErr: ErrInvalidSequence},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.sig.Validate())
		})
	}
}

func TestUserDataSequence(t *testing.T) {
	u := UserData{Sequence: 5}
	assert.IsErr(t, ErrInvalidSequence, u.CheckAndIncrementSequence(4))
	assert.Nil(t, u.CheckAndIncrementSequence(5))
	assert.Equal(t, int64(6), u.Sequence)

	u = UserData{Sequence: (1 << 53) - 1}
	assert.IsErr(t, errors.ErrOverflow, u.CheckAndIncrementSequence((1<<53)-1))

	assert.IsErr(t, ErrInvalidSequence, (&UserData{Sequence: 1}).Validate())
	assert.Nil(t, (&UserData{Pubkey: weavetest.NewKey().PublicKey()}).Validate())
}

func signers(t testing.TB, conds []bazaar.Condition) []string {
	t.Helper()
	res := make([]string, len(conds))
	for i, c := range conds {
		res[i] = c.String()
	}
	return res
}
