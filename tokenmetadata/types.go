// Code generated from the mpl-token-metadata IDL and trimmed to the
// instructions used by the smoke test.

package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
)

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
	Address  ag_solanago.PublicKey
	Verified bool
	Share    uint8
}

type Collection struct {
	Verified bool
	Key      ag_solanago.PublicKey
}

// CollectionDetails only implements the V1 variant, which tracks the size
// of a sized collection.
type CollectionDetails struct {
	Size uint64
}

func (obj CollectionDetails) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	err = encoder.WriteUint8(0)
	if err != nil {
		return err
	}
	return encoder.Encode(obj.Size)
}

func (obj *CollectionDetails) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	variant, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if variant != 0 {
		return fmt.Errorf("unsupported collection details variant %d", variant)
	}
	return decoder.Decode(&obj.Size)
}

type PrintSupplyKind uint8

const (
	PrintSupplyZero PrintSupplyKind = iota
	PrintSupplyLimited
	PrintSupplyUnlimited
)

type PrintSupply struct {
	Kind PrintSupplyKind
	// Only meaningful for PrintSupplyLimited.
	Limit uint64
}

func (obj PrintSupply) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	err = encoder.WriteUint8(uint8(obj.Kind))
	if err != nil {
		return err
	}
	if obj.Kind == PrintSupplyLimited {
		return encoder.Encode(obj.Limit)
	}
	return nil
}

func (obj *PrintSupply) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	kind, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.Kind = PrintSupplyKind(kind)
	switch obj.Kind {
	case PrintSupplyZero, PrintSupplyUnlimited:
		return nil
	case PrintSupplyLimited:
		return decoder.Decode(&obj.Limit)
	default:
		return fmt.Errorf("unknown print supply variant %d", kind)
	}
}

type AssetData struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator `bin:"optional"`
	PrimarySaleHappened  bool
	IsMutable            bool
	TokenStandard        TokenStandard
	Collection           *Collection            `bin:"optional"`
	CollectionDetails    *CollectionDetails     `bin:"optional"`
	RuleSet              *ag_solanago.PublicKey `bin:"optional"`
}

func writeOption(encoder *ag_binary.Encoder, set bool, value interface{}) error {
	if !set {
		return encoder.WriteBool(false)
	}
	if err := encoder.WriteBool(true); err != nil {
		return err
	}
	return encoder.Encode(value)
}

func (obj AssetData) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	for _, v := range []interface{}{obj.Name, obj.Symbol, obj.Uri, obj.SellerFeeBasisPoints} {
		if err = encoder.Encode(v); err != nil {
			return err
		}
	}
	if err = writeOption(encoder, obj.Creators != nil, obj.Creators); err != nil {
		return err
	}
	if err = encoder.Encode(obj.PrimarySaleHappened); err != nil {
		return err
	}
	if err = encoder.Encode(obj.IsMutable); err != nil {
		return err
	}
	if err = encoder.WriteUint8(uint8(obj.TokenStandard)); err != nil {
		return err
	}
	if err = writeOption(encoder, obj.Collection != nil, obj.Collection); err != nil {
		return err
	}
	// Uses are not supported, always None.
	if err = encoder.WriteBool(false); err != nil {
		return err
	}
	if err = writeOption(encoder, obj.CollectionDetails != nil, obj.CollectionDetails); err != nil {
		return err
	}
	return writeOption(encoder, obj.RuleSet != nil, obj.RuleSet)
}

func readOption(decoder *ag_binary.Decoder, dst interface{}) error {
	ok, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return decoder.Decode(dst)
}

func (obj *AssetData) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	for _, v := range []interface{}{&obj.Name, &obj.Symbol, &obj.Uri, &obj.SellerFeeBasisPoints} {
		if err = decoder.Decode(v); err != nil {
			return err
		}
	}
	if err = readOption(decoder, &obj.Creators); err != nil {
		return err
	}
	if err = decoder.Decode(&obj.PrimarySaleHappened); err != nil {
		return err
	}
	if err = decoder.Decode(&obj.IsMutable); err != nil {
		return err
	}
	standard, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.TokenStandard = TokenStandard(standard)
	if err = readOption(decoder, &obj.Collection); err != nil {
		return err
	}
	uses, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if uses {
		return fmt.Errorf("uses are not supported")
	}
	if err = readOption(decoder, &obj.CollectionDetails); err != nil {
		return err
	}
	return readOption(decoder, &obj.RuleSet)
}

// CreateArgs is the V1 variant of the create instruction arguments.
type CreateArgs struct {
	AssetData   AssetData
	Decimals    *uint8       `bin:"optional"`
	PrintSupply *PrintSupply `bin:"optional"`
}

const createArgsV1 uint8 = 0

func (obj CreateArgs) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteUint8(createArgsV1); err != nil {
		return err
	}
	if err = encoder.Encode(obj.AssetData); err != nil {
		return err
	}
	if err = writeOption(encoder, obj.Decimals != nil, obj.Decimals); err != nil {
		return err
	}
	return writeOption(encoder, obj.PrintSupply != nil, obj.PrintSupply)
}

func (obj *CreateArgs) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	variant, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if variant != createArgsV1 {
		return fmt.Errorf("unsupported create args variant %d", variant)
	}
	if err = decoder.Decode(&obj.AssetData); err != nil {
		return err
	}
	if err = readOption(decoder, &obj.Decimals); err != nil {
		return err
	}
	return readOption(decoder, &obj.PrintSupply)
}

// MintArgs is the V1 variant of the mint instruction arguments, without
// authorization data.
type MintArgs struct {
	Amount uint64
}

const mintArgsV1 uint8 = 0

func (obj MintArgs) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteUint8(mintArgsV1); err != nil {
		return err
	}
	if err = encoder.Encode(obj.Amount); err != nil {
		return err
	}
	// authorization data: None
	return encoder.WriteBool(false)
}

func (obj *MintArgs) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	variant, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if variant != mintArgsV1 {
		return fmt.Errorf("unsupported mint args variant %d", variant)
	}
	if err = decoder.Decode(&obj.Amount); err != nil {
		return err
	}
	authData, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if authData {
		return fmt.Errorf("authorization data is not supported")
	}
	return nil
}
