package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

const maxMemoSize int = 128

// SendMsg moves coins from the source to the destination wallet. It must be
// signed by the source.
type SendMsg struct {
	Source      bazaar.Address `json:"source"`
	Destination bazaar.Address `json:"destination"`
	Amount      coin.Coin      `json:"amount"`
	Memo        string         `json:"memo,omitempty"`
}

var _ bazaar.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	if !m.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", m.Amount)
	} else {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(m.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}
	return err
}

// UpdateConfigurationMsg patches the cash configuration. Only non zero
// fields of the patch are applied.
type UpdateConfigurationMsg struct {
	Patch *Configuration `json:"patch"`
}

var _ bazaar.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "cash/update_configuration"
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Validate will skip any zero fields and validate the set ones
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return m.Patch.Validate()
}
