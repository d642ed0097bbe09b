package corecandymachine

import (
	"bytes"
	"encoding/binary"
	"testing"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCandyMachine(t *testing.T) {
	cm := &CandyMachine{
		Version:        AccountVersionV1,
		Authority:      ag_solanago.NewWallet().PublicKey(),
		MintAuthority:  ag_solanago.NewWallet().PublicKey(),
		CollectionMint: ag_solanago.NewWallet().PublicKey(),
		Data: CandyMachineData{
			ItemsAvailable: 3,
			ConfigLineSettings: &ConfigLineSettings{
				PrefixName: "Quick NFT #",
				NameLength: 11,
				PrefixUri:  "https://example.com/metadata/",
				UriLength:  65,
			},
		},
	}
	buf := new(bytes.Buffer)
	require.NoError(t, ag_binary.NewBorshEncoder(buf).Encode(cm))

	space := AccountSpace(cm.Data)
	require.Equal(t, uint64(HiddenSection+4+3*76+1+4+12), space)
	raw := make([]byte, space)
	copy(raw, buf.Bytes())
	binary.LittleEndian.PutUint32(raw[HiddenSection:], 2)
	linesStart := HiddenSection + 4
	copy(raw[linesStart:], "1")
	copy(raw[linesStart+11:], "gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY")
	copy(raw[linesStart+2*76:], "3")
	bitmask := linesStart + 3*76
	raw[bitmask] = 0b1010_0000

	got, loaded, err := DecodeCandyMachine(raw)
	require.NoError(t, err)
	assert.Equal(t, cm.Authority, got.Authority)
	assert.Equal(t, cm.CollectionMint, got.CollectionMint)
	assert.Equal(t, uint32(2), loaded.ItemsLoaded)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Quick NFT #1", loaded.Items[0].Name)
	assert.Equal(t, "https://example.com/metadata/gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY", loaded.Items[0].Uri)
	assert.Equal(t, uint32(2), loaded.Items[1].Index)
	assert.Equal(t, "https://example.com/metadata/", loaded.Items[1].Uri)

	_, _, err = DecodeCandyMachine(raw[:HiddenSection+8])
	assert.ErrorContains(t, err, "DCCMH:")
}
