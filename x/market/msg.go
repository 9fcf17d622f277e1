package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/nft"
)

// ListMsg offers a token owned by the signer for sale.
type ListMsg struct {
	ID    nft.AssetID `json:"id"`
	Price coin.Coin   `json:"price"`
}

var _ bazaar.Msg = (*ListMsg)(nil)

func (ListMsg) Path() string {
	return "market/list"
}

// Target is the token the message operates on.
func (m ListMsg) Target() string {
	return m.ID.String()
}

func (m *ListMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ListMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ListMsg) Validate() error {
	return errors.Wrap(validatePrice(m.Price), "price")
}

// UnlistMsg withdraws the offer of a token owned by the signer.
type UnlistMsg struct {
	ID nft.AssetID `json:"id"`
}

var _ bazaar.Msg = (*UnlistMsg)(nil)

func (UnlistMsg) Path() string {
	return "market/unlist"
}

// Target is the token the message operates on.
func (m UnlistMsg) Target() string {
	return m.ID.String()
}

func (m *UnlistMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UnlistMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *UnlistMsg) Validate() error {
	return nil
}

// BuyMsg buys a listed token. The signer pays the price.
type BuyMsg struct {
	ID nft.AssetID `json:"id"`
}

var _ bazaar.Msg = (*BuyMsg)(nil)

func (BuyMsg) Path() string {
	return "market/buy"
}

// Target is the token the message operates on.
func (m BuyMsg) Target() string {
	return m.ID.String()
}

func (m *BuyMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *BuyMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *BuyMsg) Validate() error {
	return nil
}

// UpdateConfigurationMsg patches the market configuration. Only non zero
// fields of the patch are applied.
type UpdateConfigurationMsg struct {
	Patch *Configuration `json:"patch"`
}

var _ bazaar.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "market/update_configuration"
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return m.Patch.Validate()
}
