package candymachinesdk

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardSetSerializeEmpty(t *testing.T) {
	data, err := GuardSet{}.Serialize()
	require.NoError(t, err)
	// no features, no groups
	assert.Equal(t, make([]byte, 12), data)
}

func TestGuardSetSerialize(t *testing.T) {
	treasury := solana.NewWallet().PublicKey()
	start := time.Date(2023, 4, 4, 16, 0, 0, 0, time.UTC)
	guards := GuardSet{
		BotTax:     &BotTax{Lamports: 1_000_000, LastInstruction: true},
		SolPayment: &SolPayment{Lamports: 1_500_000_000, Destination: treasury},
		StartDate:  &start,
	}

	data, err := guards.Serialize()
	require.NoError(t, err)
	require.Len(t, data, 8+9+40+8+4)

	assert.Equal(t, uint64(0b1011), binary.LittleEndian.Uint64(data[0:8]))
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[8:16]))
	assert.Equal(t, byte(1), data[16])
	assert.Equal(t, uint64(1_500_000_000), binary.LittleEndian.Uint64(data[17:25]))
	assert.Equal(t, treasury.Bytes(), data[25:57])
	assert.Equal(t, uint64(1680624000), binary.LittleEndian.Uint64(data[57:65]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[65:69]))
}

func TestGuardSetEndDate(t *testing.T) {
	end := time.Unix(1700000000, 0)
	data, err := GuardSet{EndDate: &end}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<7), binary.LittleEndian.Uint64(data[0:8]))
	assert.Equal(t, uint64(1700000000), binary.LittleEndian.Uint64(data[8:16]))
}

func TestGuardSetMintRemainingAccounts(t *testing.T) {
	assert.Empty(t, GuardSet{}.MintRemainingAccounts())

	treasury := solana.NewWallet().PublicKey()
	metas := GuardSet{
		BotTax:     &BotTax{Lamports: 1},
		SolPayment: &SolPayment{Lamports: 1, Destination: treasury},
	}.MintRemainingAccounts()
	require.Len(t, metas, 1)
	assert.Equal(t, treasury, metas[0].PublicKey)
	assert.True(t, metas[0].IsWritable)
	assert.False(t, metas[0].IsSigner)
}

func TestGuardSetValidate(t *testing.T) {
	assert.Error(t, GuardSet{SolPayment: &SolPayment{Lamports: 1}}.Validate())

	start := time.Unix(100, 0)
	end := time.Unix(50, 0)
	assert.Error(t, GuardSet{StartDate: &start, EndDate: &end}.Validate())
	assert.NoError(t, GuardSet{StartDate: &end, EndDate: &start}.Validate())
}
