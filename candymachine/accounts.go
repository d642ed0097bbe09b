// Code generated from the mpl-candy-machine-core IDL and trimmed to the
// instructions used by the smoke test.

package candymachine

import (
	"bytes"
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
)

type CandyMachine struct {
	Version        AccountVersion
	TokenStandard  uint8
	Features       [6]uint8
	Authority      ag_solanago.PublicKey
	MintAuthority  ag_solanago.PublicKey
	CollectionMint ag_solanago.PublicKey
	ItemsRedeemed  uint64
	Data           CandyMachineData
}

var CandyMachineDiscriminator = [8]byte{51, 173, 177, 113, 25, 241, 109, 189}

func (obj CandyMachine) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Write account discriminator:
	err = encoder.WriteBytes(CandyMachineDiscriminator[:], false)
	if err != nil {
		return err
	}
	// Serialize `Version` param:
	err = encoder.Encode(obj.Version)
	if err != nil {
		return err
	}
	// Serialize `TokenStandard` param:
	err = encoder.Encode(obj.TokenStandard)
	if err != nil {
		return err
	}
	// Serialize `Features` param:
	err = encoder.Encode(obj.Features)
	if err != nil {
		return err
	}
	// Serialize `Authority` param:
	err = encoder.Encode(obj.Authority)
	if err != nil {
		return err
	}
	// Serialize `MintAuthority` param:
	err = encoder.Encode(obj.MintAuthority)
	if err != nil {
		return err
	}
	// Serialize `CollectionMint` param:
	err = encoder.Encode(obj.CollectionMint)
	if err != nil {
		return err
	}
	// Serialize `ItemsRedeemed` param:
	err = encoder.Encode(obj.ItemsRedeemed)
	if err != nil {
		return err
	}
	// Serialize `Data` param:
	err = encoder.Encode(obj.Data)
	if err != nil {
		return err
	}
	return nil
}

func (obj *CandyMachine) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Read and check account discriminator:
	{
		discriminator, err := decoder.ReadNBytes(8)
		if err != nil {
			return err
		}
		if !bytes.Equal(discriminator, CandyMachineDiscriminator[:]) {
			return fmt.Errorf(
				"wrong discriminator: wanted %s, got %s",
				"[51 173 177 113 25 241 109 189]",
				fmt.Sprint(discriminator))
		}
	}
	// Deserialize `Version`:
	err = decoder.Decode(&obj.Version)
	if err != nil {
		return err
	}
	// Deserialize `TokenStandard`:
	err = decoder.Decode(&obj.TokenStandard)
	if err != nil {
		return err
	}
	// Deserialize `Features`:
	err = decoder.Decode(&obj.Features)
	if err != nil {
		return err
	}
	// Deserialize `Authority`:
	err = decoder.Decode(&obj.Authority)
	if err != nil {
		return err
	}
	// Deserialize `MintAuthority`:
	err = decoder.Decode(&obj.MintAuthority)
	if err != nil {
		return err
	}
	// Deserialize `CollectionMint`:
	err = decoder.Decode(&obj.CollectionMint)
	if err != nil {
		return err
	}
	// Deserialize `ItemsRedeemed`:
	err = decoder.Decode(&obj.ItemsRedeemed)
	if err != nil {
		return err
	}
	// Deserialize `Data`:
	err = decoder.Decode(&obj.Data)
	if err != nil {
		return err
	}
	return nil
}
