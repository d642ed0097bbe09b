package tokenmetadata

import (
	"testing"

	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateV1Data(t *testing.T) {
	authority := ag_solanago.NewWallet().PublicKey()
	decimals := uint8(0)
	creators := []Creator{{Address: authority, Verified: true, Share: 100}}
	args := CreateArgs{
		AssetData: AssetData{
			Name:                 "My Collection NFT",
			Uri:                  "https://arweave.net/zgFQx7sWurSZnvQHLo08Krv7HISRLZA77yeYeU1-uHk",
			SellerFeeBasisPoints: 10000,
			Creators:             &creators,
			IsMutable:            true,
			CollectionDetails:    &CollectionDetails{},
		},
		Decimals:    &decimals,
		PrintSupply: &PrintSupply{Kind: PrintSupplyZero},
	}
	mint := ag_solanago.NewWallet().PublicKey()
	instr, err := NewCreateV1Instruction(args,
		ag_solanago.NewWallet().PublicKey(),
		ag_solanago.NewWallet().PublicKey(),
		mint,
		authority,
		ag_solanago.NewWallet().PublicKey(),
		authority,
		ag_solanago.SystemProgramID,
		ag_solanago.SysVarInstructionsPubkey,
		ag_solanago.TokenProgramID,
	).ValidateAndBuild()
	require.NoError(t, err)

	data, err := instr.Data()
	require.NoError(t, err)
	// discriminator followed by the V1 args variant
	assert.Equal(t, []byte{Instruction_Create, 0}, data[:2])

	decoded, err := DecodeInstruction(instr.Accounts(), data)
	require.NoError(t, err)
	create, ok := decoded.Impl.(*CreateV1)
	require.True(t, ok)
	assert.Equal(t, args, *create.CreateArgs)
	assert.Equal(t, mint, create.GetMintAccount().PublicKey)
	assert.True(t, create.GetMintAccount().IsSigner)
}

func TestMintV1Data(t *testing.T) {
	instr := NewMintV1InstructionBuilder().SetMintArgs(MintArgs{Amount: 1}).Build()
	data, err := instr.Data()
	require.NoError(t, err)
	// discriminator, V1 variant, amount, no authorization data
	assert.Equal(t, []byte{Instruction_Mint, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestMintV1Validate(t *testing.T) {
	_, err := NewMintV1InstructionBuilder().SetMintArgs(MintArgs{Amount: 1}).ValidateAndBuild()
	assert.Error(t, err)
}

func TestFindMetadataAddress(t *testing.T) {
	mint := ag_solanago.NewWallet().PublicKey()
	want, _, err := ag_solanago.FindTokenMetadataAddress(mint)
	require.NoError(t, err)
	got, err := FindMetadataAddress(mint)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	edition, err := FindMasterEditionAddress(mint)
	require.NoError(t, err)
	assert.NotEqual(t, got, edition)
}
