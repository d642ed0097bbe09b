package candymachinesdk

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func TestCompareCandyMachineState(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	collection := solana.NewWallet().PublicKey()
	want := ExpectedCandyMachineState{
		ItemsLoaded:   3,
		ItemsRedeemed: 3,
		Authority:     authority,
		Collection:    collection,
	}
	matching := func() *CandyMachineState {
		return &CandyMachineState{
			Authority:      authority,
			CollectionMint: collection,
			ItemsRedeemed:  3,
			ItemsLoaded:    3,
		}
	}

	assert.NoError(t, CompareCandyMachineState(matching(), want))

	tests := []struct {
		name   string
		mutate func(*CandyMachineState)
		err    error
		msg    string
	}{
		{
			name:   "items redeemed",
			mutate: func(s *CandyMachineState) { s.ItemsRedeemed = 2 },
			err:    ErrItemsRedeemedMismatch,
			msg:    "Incorrect number of items available in the Candy Machine.",
		},
		{
			name:   "items loaded",
			mutate: func(s *CandyMachineState) { s.ItemsLoaded = 0 },
			err:    ErrItemsLoadedMismatch,
			msg:    "Incorrect number of items loaded in the Candy Machine.",
		},
		{
			name:   "authority",
			mutate: func(s *CandyMachineState) { s.Authority = collection },
			err:    ErrAuthorityMismatch,
			msg:    "Incorrect authority in the Candy Machine.",
		},
		{
			name:   "collection",
			mutate: func(s *CandyMachineState) { s.CollectionMint = authority },
			err:    ErrCollectionMismatch,
			msg:    "Incorrect collection in the Candy Machine.",
		},
		{
			name: "first mismatch wins",
			mutate: func(s *CandyMachineState) {
				s.ItemsLoaded = 0
				s.CollectionMint = authority
			},
			err: ErrItemsLoadedMismatch,
			msg: "Incorrect number of items loaded in the Candy Machine.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching()
			tt.mutate(got)
			err := CompareCandyMachineState(got, want)
			assert.ErrorIs(t, err, tt.err)
			assert.EqualError(t, err, tt.msg)
		})
	}
}
