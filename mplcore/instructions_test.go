package mplcore

import (
	"testing"

	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollectionV1Data(t *testing.T) {
	collection := ag_solanago.NewWallet().PublicKey()
	payer := ag_solanago.NewWallet().PublicKey()
	instr, err := NewCreateCollectionV1Instruction(
		CreateCollectionV1Args{Name: "My", Uri: "u"},
		collection,
		ProgramID,
		payer,
		ag_solanago.SystemProgramID,
	).ValidateAndBuild()
	require.NoError(t, err)

	data, err := instr.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		Instruction_CreateCollectionV1,
		2, 0, 0, 0, 'M', 'y',
		1, 0, 0, 0, 'u',
		0,
	}, data)

	accounts := instr.Accounts()
	require.Len(t, accounts, 4)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)
	assert.Equal(t, ProgramID, accounts[1].PublicKey)
	assert.Equal(t, payer, accounts[2].PublicKey)
}

func TestDecodeInstructionUnknown(t *testing.T) {
	_, err := DecodeInstruction(nil, []byte{99})
	assert.Error(t, err)
}
