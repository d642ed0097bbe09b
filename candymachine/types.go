// Code generated from the mpl-candy-machine-core IDL and trimmed to the
// instructions used by the smoke test.

package candymachine

import (
	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
)

type AccountVersion uint8

const (
	AccountVersionV1 AccountVersion = iota
	AccountVersionV2
)

func (value AccountVersion) String() string {
	switch value {
	case AccountVersionV1:
		return "V1"
	case AccountVersionV2:
		return "V2"
	default:
		return ""
	}
}

// TokenStandard mirrors the Token Metadata enum of the same name.
type TokenStandard uint8

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
	TokenStandardProgrammableNonFungible
	TokenStandardProgrammableNonFungibleEdition
)

type Creator struct {
	Address         ag_solanago.PublicKey
	Verified        bool
	PercentageShare uint8
}

type ConfigLine struct {
	Name string
	Uri  string
}

// ConfigLineSettings describe how config lines are stored: a shared prefix
// plus a fixed-width suffix per item.
type ConfigLineSettings struct {
	PrefixName   string
	NameLength   uint32
	PrefixUri    string
	UriLength    uint32
	IsSequential bool
}

type HiddenSettings struct {
	Name string
	Uri  string
	Hash [32]uint8
}

type CandyMachineData struct {
	ItemsAvailable       uint64
	Symbol               string
	SellerFeeBasisPoints uint16
	MaxSupply            uint64
	IsMutable            bool
	Creators             []Creator
	ConfigLineSettings   *ConfigLineSettings `bin:"optional"`
	HiddenSettings       *HiddenSettings     `bin:"optional"`
}

func (obj CandyMachineData) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Serialize `ItemsAvailable` param:
	err = encoder.Encode(obj.ItemsAvailable)
	if err != nil {
		return err
	}
	// Serialize `Symbol` param:
	err = encoder.Encode(obj.Symbol)
	if err != nil {
		return err
	}
	// Serialize `SellerFeeBasisPoints` param:
	err = encoder.Encode(obj.SellerFeeBasisPoints)
	if err != nil {
		return err
	}
	// Serialize `MaxSupply` param:
	err = encoder.Encode(obj.MaxSupply)
	if err != nil {
		return err
	}
	// Serialize `IsMutable` param:
	err = encoder.Encode(obj.IsMutable)
	if err != nil {
		return err
	}
	// Serialize `Creators` param:
	err = encoder.Encode(obj.Creators)
	if err != nil {
		return err
	}
	// Serialize `ConfigLineSettings` param (optional):
	{
		if obj.ConfigLineSettings == nil {
			err = encoder.WriteBool(false)
			if err != nil {
				return err
			}
		} else {
			err = encoder.WriteBool(true)
			if err != nil {
				return err
			}
			err = encoder.Encode(obj.ConfigLineSettings)
			if err != nil {
				return err
			}
		}
	}
	// Serialize `HiddenSettings` param (optional):
	{
		if obj.HiddenSettings == nil {
			err = encoder.WriteBool(false)
			if err != nil {
				return err
			}
		} else {
			err = encoder.WriteBool(true)
			if err != nil {
				return err
			}
			err = encoder.Encode(obj.HiddenSettings)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (obj *CandyMachineData) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `ItemsAvailable`:
	err = decoder.Decode(&obj.ItemsAvailable)
	if err != nil {
		return err
	}
	// Deserialize `Symbol`:
	err = decoder.Decode(&obj.Symbol)
	if err != nil {
		return err
	}
	// Deserialize `SellerFeeBasisPoints`:
	err = decoder.Decode(&obj.SellerFeeBasisPoints)
	if err != nil {
		return err
	}
	// Deserialize `MaxSupply`:
	err = decoder.Decode(&obj.MaxSupply)
	if err != nil {
		return err
	}
	// Deserialize `IsMutable`:
	err = decoder.Decode(&obj.IsMutable)
	if err != nil {
		return err
	}
	// Deserialize `Creators`:
	err = decoder.Decode(&obj.Creators)
	if err != nil {
		return err
	}
	// Deserialize `ConfigLineSettings` (optional):
	{
		ok, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		if ok {
			err = decoder.Decode(&obj.ConfigLineSettings)
			if err != nil {
				return err
			}
		}
	}
	// Deserialize `HiddenSettings` (optional):
	{
		ok, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		if ok {
			err = decoder.Decode(&obj.HiddenSettings)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
