package candymachinesdk

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrItemsRedeemedMismatch = errors.New("Incorrect number of items available in the Candy Machine.")
	ErrItemsLoadedMismatch   = errors.New("Incorrect number of items loaded in the Candy Machine.")
	ErrAuthorityMismatch     = errors.New("Incorrect authority in the Candy Machine.")
	ErrCollectionMismatch    = errors.New("Incorrect collection in the Candy Machine.")
)

// CandyMachineState is the part of a candy machine account shared by the
// legacy and core programs.
type CandyMachineState struct {
	Address        solana.PublicKey
	Authority      solana.PublicKey
	MintAuthority  solana.PublicKey
	CollectionMint solana.PublicKey
	ItemsAvailable uint64
	ItemsRedeemed  uint64
	ItemsLoaded    uint32
	// Items holds the loaded config lines with their prefixes applied.
	Items []ConfigLine
}

type ExpectedCandyMachineState struct {
	ItemsLoaded   uint32
	ItemsRedeemed uint64
	Authority     solana.PublicKey
	Collection    solana.PublicKey
}

// CompareCandyMachineState returns the first mismatch between the fetched
// state and the expectation, checking redeemed items, loaded items,
// authority and collection in that order.
func CompareCandyMachineState(got *CandyMachineState, want ExpectedCandyMachineState) error {
	if got.ItemsRedeemed != want.ItemsRedeemed {
		return ErrItemsRedeemedMismatch
	}
	if got.ItemsLoaded != want.ItemsLoaded {
		return ErrItemsLoadedMismatch
	}
	if !got.Authority.Equals(want.Authority) {
		return ErrAuthorityMismatch
	}
	if !got.CollectionMint.Equals(want.Collection) {
		return ErrCollectionMismatch
	}
	return nil
}
