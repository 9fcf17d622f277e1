package weavetest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a signature condition of a new random key.
func NewCondition() bazaar.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a random address that no key is behind.
func RandomAddr(t testing.TB) bazaar.Address {
	t.Helper()
	b := make([]byte, bazaar.AddressLength)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("cannot read random data: %s", err)
	}
	return bazaar.Address(b)
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation.
func ParseAddress(t testing.TB, encodedAddress string) bazaar.Address {
	t.Helper()

	addr, err := bazaar.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
