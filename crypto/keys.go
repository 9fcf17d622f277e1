package crypto

import (
	"crypto/rand"
	"io"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// ed25519Type is the condition type of a signature made with an ed25519 key.
const ed25519Type = "ed25519"

// PublicKey is a serializable ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// Verify verifies the signature was created with this message and public
// key.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil {
		return false
	}
	if len(p.Ed25519) != ed25519.PublicKeySize || len(sig.Ed25519) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a signature condition. The address
// of that condition is the address of the signer.
func (p *PublicKey) Condition() bazaar.Condition {
	if p == nil {
		return nil
	}
	return bazaar.NewCondition(ExtensionName, ed25519Type, p.Ed25519)
}

// Address returns the address of the signer holding the matching private key.
func (p *PublicKey) Address() bazaar.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}

// Validate ensures the key has the right length.
func (p *PublicKey) Validate() error {
	if p == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrap(errors.ErrInput, "invalid ed25519 public key")
	}
	return nil
}

// Signature is a serializable ed25519 signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

// PrivateKey is a serializable ed25519 private key. It is used by clients and
// tests. The chain never stores private keys.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// GenPrivKeyEd25519 generates a new random key.
func GenPrivKeyEd25519() *PrivateKey {
	key, err := genPrivKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return key
}

// PrivKeyEd25519FromSeed creates a deterministic key from the given 32 bytes
// seed.
func PrivKeyEd25519FromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be %d bytes", ed25519.SeedSize)
	}
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}, nil
}

func genPrivKey(r io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}
	return &PrivateKey{Ed25519: priv}, nil
}

// Sign returns a matching signature for this private key.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid ed25519 private key")
	}
	sig := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: sig}, nil
}

// PublicKey returns the corresponding PublicKey.
func (p *PrivateKey) PublicKey() *PublicKey {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil
	}
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}
