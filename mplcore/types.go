// Code generated from the mpl-core IDL and trimmed to the
// instructions used by the smoke test.

package mplcore

import (
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
)

// CreateCollectionV1Args holds the collection name and uri. Plugins are not
// supported and are always serialized as None.
type CreateCollectionV1Args struct {
	Name string
	Uri  string
}

func (obj CreateCollectionV1Args) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Serialize `Name` param:
	err = encoder.Encode(obj.Name)
	if err != nil {
		return err
	}
	// Serialize `Uri` param:
	err = encoder.Encode(obj.Uri)
	if err != nil {
		return err
	}
	// Serialize `Plugins` param (optional):
	return encoder.WriteBool(false)
}

func (obj *CreateCollectionV1Args) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `Name`:
	err = decoder.Decode(&obj.Name)
	if err != nil {
		return err
	}
	// Deserialize `Uri`:
	err = decoder.Decode(&obj.Uri)
	if err != nil {
		return err
	}
	// Deserialize `Plugins` (optional):
	plugins, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if plugins {
		return fmt.Errorf("plugins are not supported")
	}
	return nil
}
