package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestBech32KnownVector(t *testing.T) {
	// bech32 -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	assert.Nil(t, err)

	hrp, payload, err := Decode(enc)
	assert.Nil(t, err)
	assert.Equal(t, "tiov", hrp)
	if !bytes.Equal(want, payload) {
		t.Fatalf("invalid decode: %X", payload)
	}

	raw, err := Encode(hrp, payload)
	assert.Nil(t, err)
	assert.Equal(t, enc, string(raw))
}

func TestBech32RoundTrip(t *testing.T) {
	addr := bytes.Repeat([]byte{0xab}, 20)
	raw, err := Encode("bzr", addr)
	assert.Nil(t, err)

	hrp, payload, err := Decode(string(raw))
	assert.Nil(t, err)
	assert.Equal(t, "bzr", hrp)
	assert.Equal(t, addr, payload)
}

func TestBech32InvalidChecksum(t *testing.T) {
	_, _, err := Decode(`tiov1w3jhxapdwpshjmr0v9jqymqq4z`)
	assert.IsErr(t, errors.ErrInput, err)
}
