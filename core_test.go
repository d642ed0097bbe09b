package candymachinesdk

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	cb "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzispp/candymachine-go-sdk/corecandymachine"
	"github.com/zzispp/candymachine-go-sdk/coreguard"
	"github.com/zzispp/candymachine-go-sdk/mplcore"
)

func newTestCore(t *testing.T) (*Core, *fakeRPC) {
	t.Helper()
	f := newFakeRPC()
	c := newTestClient(t, f)
	accounts, err := NewAccounts(c.identity, false)
	require.NoError(t, err)
	start := time.Date(2023, 4, 4, 16, 0, 0, 0, time.UTC)
	scenario := Scenario{
		CollectionName: "My Collection",
		CollectionURI:  "https://arweave.net/zgFQx7sWurSZnvQHLo08Krv7HISRLZA77yeYeU1-uHk",
		ItemsAvailable: 3,
		ConfigLineSettings: &ConfigLineSettings{
			PrefixName: "Quick NFT #",
			NameLength: 11,
			PrefixURI:  "https://example.com/metadata/",
			URILength:  65,
		},
		Guards: GuardSet{
			BotTax:     &BotTax{Lamports: 1_000_000, LastInstruction: true},
			SolPayment: &SolPayment{Lamports: 1_500_000_000, Destination: accounts.Treasury.PublicKey()},
			StartDate:  &start,
		},
		ComputeUnitLimit: 800_000,
	}
	return NewCore(c, scenario, accounts), f
}

func TestCoreCreateCollection(t *testing.T) {
	core, f := newTestCore(t)
	_, err := core.CreateCollection(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{mplcore.ProgramID}, programIDs(tx))
	assert.Equal(t, uint8(2), tx.Message.Header.NumRequiredSignatures)
	assert.Equal(t, core.accounts.CollectionMint.PublicKey(), instructionAccounts(tx, 0)[0])
}

func TestCoreCreateCandyMachine(t *testing.T) {
	core, f := newTestCore(t)
	_, err := core.CreateCandyMachine(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{
		solana.SystemProgramID,
		corecandymachine.ProgramID,
		coreguard.ProgramID,
		coreguard.ProgramID,
	}, programIDs(tx))
	require.NoError(t, tx.VerifySignatures())

	guardData, err := core.scenario.Guards.Serialize()
	require.NoError(t, err)
	init := []byte(tx.Message.Instructions[2].Data)
	assert.Equal(t, coreguard.Instruction_Initialize[:], init[:8])
	assert.Equal(t, uint32(len(guardData)), binary.LittleEndian.Uint32(init[8:12]))
	assert.Equal(t, guardData, init[12:])
}

func TestCoreMint(t *testing.T) {
	core, f := newTestCore(t)
	asset, _, err := core.Mint(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{cb.ProgramID, coreguard.ProgramID}, programIDs(tx))
	assert.Equal(t, uint8(2), tx.Message.Header.NumRequiredSignatures)

	accounts := instructionAccounts(tx, 1)
	require.Len(t, accounts, 14)
	assert.Equal(t, asset, accounts[7])
	assert.Equal(t, core.accounts.CollectionMint.PublicKey(), accounts[8])
	// sol payment destination
	assert.Equal(t, core.accounts.Treasury.PublicKey(), accounts[13])
}

func TestCoreFetchCandyMachine(t *testing.T) {
	core, f := newTestCore(t)
	cm := &corecandymachine.CandyMachine{
		Version:        corecandymachine.AccountVersionV1,
		Authority:      core.Identity(),
		MintAuthority:  solana.NewWallet().PublicKey(),
		CollectionMint: core.accounts.CollectionMint.PublicKey(),
		ItemsRedeemed:  3,
		Data:           core.candyMachineData(),
	}
	buf := new(bytes.Buffer)
	require.NoError(t, ag_binary.NewBorshEncoder(buf).Encode(cm))
	raw := make([]byte, corecandymachine.AccountSpace(cm.Data))
	copy(raw, buf.Bytes())
	binary.LittleEndian.PutUint32(raw[corecandymachine.HiddenSection:], 3)
	f.setAccount(core.accounts.CandyMachine.PublicKey(), corecandymachine.ProgramID, raw)

	state, err := core.FetchCandyMachine(context.Background())
	require.NoError(t, err)
	assert.NoError(t, CompareCandyMachineState(state, ExpectedCandyMachineState{
		ItemsLoaded:   3,
		ItemsRedeemed: 3,
		Authority:     core.Identity(),
		Collection:    core.accounts.CollectionMint.PublicKey(),
	}))
}

func TestCoreDeleteCandyMachine(t *testing.T) {
	core, f := newTestCore(t)
	_, err := core.DeleteCandyMachine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []solana.PublicKey{corecandymachine.ProgramID, coreguard.ProgramID}, programIDs(f.lastSent()))
}
