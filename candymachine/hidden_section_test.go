package candymachine

import (
	"bytes"
	"encoding/binary"
	"testing"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandyMachine(items uint64) *CandyMachine {
	return &CandyMachine{
		Version:        AccountVersionV2,
		Authority:      ag_solanago.NewWallet().PublicKey(),
		MintAuthority:  ag_solanago.NewWallet().PublicKey(),
		CollectionMint: ag_solanago.NewWallet().PublicKey(),
		ItemsRedeemed:  1,
		Data: CandyMachineData{
			ItemsAvailable:       items,
			SellerFeeBasisPoints: 999,
			Creators: []Creator{
				{Address: ag_solanago.NewWallet().PublicKey(), Verified: true, PercentageShare: 100},
			},
			ConfigLineSettings: &ConfigLineSettings{
				PrefixName: "Quick NFT #",
				NameLength: 32,
				PrefixUri:  "https://example.com/metadata/",
				UriLength:  65,
			},
		},
	}
}

// encodeAccount lays out a candy machine account with the given lines
// loaded at their indices.
func encodeAccount(t *testing.T, cm *CandyMachine, lines map[int]ConfigLine) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, ag_binary.NewBorshEncoder(buf).Encode(cm))

	raw := make([]byte, AccountSpace(cm.Data))
	copy(raw, buf.Bytes())
	binary.LittleEndian.PutUint32(raw[HiddenSection:], uint32(len(lines)))

	nameLength, uriLength := cm.Data.lineLengths()
	linesStart := HiddenSection + 4
	bitmaskStart := linesStart + int(cm.Data.ItemsAvailable)*(nameLength+uriLength)
	for i, line := range lines {
		at := linesStart + i*(nameLength+uriLength)
		copy(raw[at:at+nameLength], line.Name)
		copy(raw[at+nameLength:at+nameLength+uriLength], line.Uri)
		raw[bitmaskStart+i/8] |= 1 << (7 - uint(i%8))
	}
	return raw
}

func TestAccountSpace(t *testing.T) {
	data := testCandyMachine(3).Data
	assert.Equal(t, uint64(HiddenSection+4+3*97+0+1+4+12), AccountSpace(data))

	data.ConfigLineSettings = nil
	assert.Equal(t, uint64(HiddenSection+4+3*232+1+4+12), AccountSpace(data))

	data.HiddenSettings = &HiddenSettings{Name: "hidden"}
	assert.Equal(t, uint64(HiddenSection), AccountSpace(data))
}

func TestDecodeCandyMachine(t *testing.T) {
	cm := testCandyMachine(10)
	raw := encodeAccount(t, cm, map[int]ConfigLine{
		0: {Name: "1", Uri: "gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"},
		1: {Name: "2", Uri: "Ya_V3r3k_c-BivoJiMUfO8vEpsi95c5dupYIh2cFdGo"},
		9: {Name: "10", Uri: "8MPJnyFK0eBvYEKRgA6mxCBbGGEHIRXjC74Jl06ymDg"},
	})

	got, loaded, err := DecodeCandyMachine(raw)
	require.NoError(t, err)
	assert.Equal(t, cm.Authority, got.Authority)
	assert.Equal(t, cm.CollectionMint, got.CollectionMint)
	assert.Equal(t, uint64(1), got.ItemsRedeemed)
	assert.Equal(t, uint64(10), got.Data.ItemsAvailable)

	require.Equal(t, uint32(3), loaded.ItemsLoaded)
	require.Len(t, loaded.Items, 3)
	assert.Equal(t, Item{
		Index: 0,
		Name:  "Quick NFT #1",
		Uri:   "https://example.com/metadata/gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY",
	}, loaded.Items[0])
	assert.Equal(t, uint32(9), loaded.Items[2].Index)
	assert.Equal(t, "Quick NFT #10", loaded.Items[2].Name)
}

func TestDecodeCandyMachineHiddenSettings(t *testing.T) {
	cm := testCandyMachine(5)
	cm.Data.ConfigLineSettings = nil
	cm.Data.HiddenSettings = &HiddenSettings{Name: "Hidden #", Uri: "https://example.com/hidden.json"}
	buf := new(bytes.Buffer)
	require.NoError(t, ag_binary.NewBorshEncoder(buf).Encode(cm))

	_, loaded, err := DecodeCandyMachine(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(5), loaded.ItemsLoaded)
	assert.Empty(t, loaded.Items)
}

func TestDecodeCandyMachineErrors(t *testing.T) {
	cm := testCandyMachine(3)
	raw := encodeAccount(t, cm, nil)

	t.Run("discriminator", func(t *testing.T) {
		bad := append([]byte{}, raw...)
		bad[0] ^= 0xff
		_, _, err := DecodeCandyMachine(bad)
		assert.ErrorContains(t, err, "DCM:")
	})
	t.Run("truncated hidden section", func(t *testing.T) {
		_, _, err := DecodeCandyMachine(raw[:HiddenSection+2])
		assert.ErrorContains(t, err, "DCMH:")
	})
	t.Run("truncated config lines", func(t *testing.T) {
		_, _, err := DecodeCandyMachine(raw[:HiddenSection+10])
		assert.ErrorContains(t, err, "DCMH:")
	})
}
