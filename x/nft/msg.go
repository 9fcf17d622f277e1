package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Message paths handled by this extension.
const (
	PathCreate   = "nft/create"
	PathMutate   = "nft/mutate"
	PathTransfer = "nft/transfer"
	PathSeal     = "nft/seal"
)

// CreateMsg creates a new token owned by the signer.
type CreateMsg[D Details] struct {
	Details D `json:"details"`
}

var _ bazaar.Msg = (*CreateMsg[Details])(nil)

func (CreateMsg[D]) Path() string { return PathCreate }

func (m *CreateMsg[D]) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateMsg[D]) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateMsg[D]) Validate() error {
	return errors.Wrap(m.Details.Validate(), "details")
}

// MutateMsg replaces the details of a token owned by the signer.
type MutateMsg[D Details] struct {
	ID      AssetID `json:"id"`
	Details D       `json:"details"`
}

var _ bazaar.Msg = (*MutateMsg[Details])(nil)

func (MutateMsg[D]) Path() string { return PathMutate }

func (m MutateMsg[D]) Target() string { return m.ID.String() }

func (m *MutateMsg[D]) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *MutateMsg[D]) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *MutateMsg[D]) Validate() error {
	return errors.Wrap(m.Details.Validate(), "details")
}

// TransferMsg gives a token owned by the signer to the destination.
type TransferMsg struct {
	ID          AssetID        `json:"id"`
	Destination bazaar.Address `json:"destination"`
}

var _ bazaar.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string { return PathTransfer }

func (m TransferMsg) Target() string { return m.ID.String() }

func (m *TransferMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *TransferMsg) Validate() error {
	return errors.Wrap(m.Destination.Validate(), "destination")
}

// SealMsg forbids any further mutation of a token owned by the signer.
type SealMsg struct {
	ID AssetID `json:"id"`
}

var _ bazaar.Msg = (*SealMsg)(nil)

func (SealMsg) Path() string { return PathSeal }

func (m SealMsg) Target() string { return m.ID.String() }

func (m *SealMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SealMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *SealMsg) Validate() error {
	return nil
}
