package candymachinesdk

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	cb "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzispp/candymachine-go-sdk/candyguard"
	"github.com/zzispp/candymachine-go-sdk/candymachine"
	"github.com/zzispp/candymachine-go-sdk/tokenmetadata"
)

func legacyScenario() Scenario {
	return Scenario{
		CollectionName:                 "My Collection NFT",
		CollectionURI:                  "https://arweave.net/zgFQx7sWurSZnvQHLo08Krv7HISRLZA77yeYeU1-uHk",
		CollectionSellerFeeBasisPoints: 10000,
		ItemsAvailable:                 3,
		SellerFeeBasisPoints:           999,
		IsMutable:                      true,
		ConfigLineSettings: &ConfigLineSettings{
			PrefixName: "Quick NFT #",
			NameLength: 32,
			PrefixURI:  "https://example.com/metadata/",
			URILength:  65,
		},
		ComputeUnitLimit: 800_000,
	}
}

func newTestLegacy(t *testing.T) (*Legacy, *fakeRPC) {
	t.Helper()
	f := newFakeRPC()
	c := newTestClient(t, f)
	accounts, err := NewAccounts(c.identity, true)
	require.NoError(t, err)
	return NewLegacy(c, legacyScenario(), accounts), f
}

func TestNewAccounts(t *testing.T) {
	identity := solana.NewWallet().PrivateKey
	accounts, err := NewAccounts(identity, false)
	require.NoError(t, err)
	assert.Equal(t, identity, accounts.CollectionUpdateAuthority)
	assert.NotEqual(t, accounts.CandyMachine.PublicKey(), accounts.CollectionMint.PublicKey())

	accounts, err = NewAccounts(identity, true)
	require.NoError(t, err)
	assert.NotEqual(t, identity.PublicKey(), accounts.CollectionUpdateAuthority.PublicKey())
}

func TestLegacyCreateCollection(t *testing.T) {
	l, f := newTestLegacy(t)
	_, err := l.CreateCollection(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{tokenmetadata.ProgramID, tokenmetadata.ProgramID}, programIDs(tx))
	assert.Equal(t, uint8(3), tx.Message.Header.NumRequiredSignatures)
	require.NoError(t, tx.VerifySignatures())

	metadata, err := tokenmetadata.FindMetadataAddress(l.accounts.CollectionMint.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, metadata, instructionAccounts(tx, 0)[0])
}

func TestLegacyCreateCandyMachine(t *testing.T) {
	l, f := newTestLegacy(t)
	_, err := l.CreateCandyMachine(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{
		solana.SystemProgramID,
		candymachine.ProgramID,
		candyguard.ProgramID,
		candyguard.ProgramID,
	}, programIDs(tx))
	require.NoError(t, tx.VerifySignatures())

	cm := l.accounts.CandyMachine.PublicKey()
	guard, err := candyguard.FindCandyGuardAddress(cm)
	require.NoError(t, err)
	assert.Equal(t, guard, instructionAccounts(tx, 2)[0])

	init := tx.Message.Instructions[1]
	assert.Equal(t, candymachine.Instruction_InitializeV2[:], []byte(init.Data[:8]))
	assert.Equal(t, cm, instructionAccounts(tx, 1)[0])
}

func TestLegacyMint(t *testing.T) {
	l, f := newTestLegacy(t)
	mint, _, err := l.Mint(context.Background())
	require.NoError(t, err)

	tx := f.lastSent()
	assert.Equal(t, []solana.PublicKey{cb.ProgramID, candyguard.ProgramID}, programIDs(tx))
	accounts := instructionAccounts(tx, 1)
	require.Len(t, accounts, 25)
	assert.Equal(t, mint, accounts[6])
	assert.Equal(t, l.accounts.CollectionMint.PublicKey(), accounts[13])
	assert.Equal(t, l.accounts.CollectionUpdateAuthority.PublicKey(), accounts[16])

	second, _, err := l.Mint(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, mint, second)
}

func encodeLegacyAccount(t *testing.T, cm *candymachine.CandyMachine, loaded uint32) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, ag_binary.NewBorshEncoder(buf).Encode(cm))
	raw := make([]byte, candymachine.AccountSpace(cm.Data))
	copy(raw, buf.Bytes())
	binary.LittleEndian.PutUint32(raw[candymachine.HiddenSection:], loaded)
	return raw
}

func TestLegacyFetchCandyMachine(t *testing.T) {
	l, f := newTestLegacy(t)
	address := l.accounts.CandyMachine.PublicKey()

	_, err := l.FetchCandyMachine(context.Background())
	assert.True(t, errors.Is(err, ErrAccountNotFound))

	raw := encodeLegacyAccount(t, &candymachine.CandyMachine{
		Version:        candymachine.AccountVersionV2,
		Authority:      l.Identity(),
		MintAuthority:  solana.NewWallet().PublicKey(),
		CollectionMint: l.accounts.CollectionMint.PublicKey(),
		ItemsRedeemed:  2,
		Data:           l.candyMachineData(),
	}, 3)
	f.setAccount(address, candymachine.ProgramID, raw)

	state, err := l.FetchCandyMachine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, address, state.Address)
	assert.Equal(t, uint32(3), state.ItemsLoaded)
	assert.Equal(t, uint64(2), state.ItemsRedeemed)
	assert.Equal(t, uint64(3), state.ItemsAvailable)
	assert.NoError(t, CompareCandyMachineState(state, ExpectedCandyMachineState{
		ItemsLoaded:   3,
		ItemsRedeemed: 2,
		Authority:     l.Identity(),
		Collection:    l.accounts.CollectionMint.PublicKey(),
	}))

	f.setAccount(address, solana.SystemProgramID, raw)
	_, err = l.FetchCandyMachine(context.Background())
	assert.ErrorContains(t, err, "FAD:")
}

func TestLegacyDeleteCandyMachine(t *testing.T) {
	l, f := newTestLegacy(t)
	_, err := l.DeleteCandyMachine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []solana.PublicKey{candymachine.ProgramID, candyguard.ProgramID}, programIDs(f.lastSent()))
}

func TestLegacyAddConfigLines(t *testing.T) {
	l, f := newTestLegacy(t)
	_, err := l.AddConfigLines(context.Background(), 0, []ConfigLine{
		{Name: "1", URI: "gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"},
	})
	require.NoError(t, err)

	ix := f.lastSent().Message.Instructions[0]
	decoded, err := candymachine.DecodeInstruction(nil, ix.Data)
	require.NoError(t, err)
	add, ok := decoded.Impl.(*candymachine.AddConfigLines)
	require.True(t, ok)
	assert.Equal(t, uint32(0), *add.Index)
	assert.Equal(t, []candymachine.ConfigLine{
		{Name: "1", Uri: "gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"},
	}, *add.ConfigLines)
}
