package corecandymachine

import (
	"encoding/binary"
	"fmt"
	"strings"

	ag_binary "github.com/gagliardetto/binary"
)

const (
	MaxNameLength = 32
	MaxURILength  = 200
)

// HiddenSection is the offset where the config line storage begins.
const HiddenSection = 8 + // discriminator
	1 + // version
	6 + // features
	32 + // authority
	32 + // mint authority
	32 + // collection mint
	8 + // items redeemed
	8 + // items available
	8 + // max supply
	1 + // is mutable
	1 + // option (config line settings)
	4 + MaxNameLength +
	4 + // name length
	4 + MaxURILength +
	4 + // uri length
	1 + // is sequential
	1 + // option (hidden settings)
	4 + MaxNameLength +
	4 + MaxURILength +
	32 // hash

type Item struct {
	Index uint32
	Name  string
	Uri   string
}

type LoadedItems struct {
	ItemsLoaded uint32
	Items       []Item
}

func (data CandyMachineData) lineLengths() (int, int) {
	if data.ConfigLineSettings == nil {
		return MaxNameLength, MaxURILength
	}
	return int(data.ConfigLineSettings.NameLength), int(data.ConfigLineSettings.UriLength)
}

func (data CandyMachineData) ConfigLineSize() int {
	name, uri := data.lineLengths()
	return name + uri
}

// AccountSpace returns the size of the candy machine account for data.
func AccountSpace(data CandyMachineData) uint64 {
	if data.HiddenSettings != nil {
		return HiddenSection
	}
	items := int(data.ItemsAvailable)
	return uint64(HiddenSection +
		4 +
		items*data.ConfigLineSize() +
		items/8 + 1 +
		4 + items*4)
}

// DecodeCandyMachine decodes the account header and its hidden section.
func DecodeCandyMachine(raw []byte) (*CandyMachine, *LoadedItems, error) {
	cm := new(CandyMachine)
	if err := ag_binary.NewBorshDecoder(raw).Decode(cm); err != nil {
		return nil, nil, fmt.Errorf("DCCM: can't decode candy machine: %w", err)
	}
	data := cm.Data
	if data.HiddenSettings != nil {
		return cm, &LoadedItems{ItemsLoaded: uint32(data.ItemsAvailable)}, nil
	}
	if len(raw) < HiddenSection+4 {
		return nil, nil, fmt.Errorf("DCCMH: insufficient data length")
	}
	items := &LoadedItems{
		ItemsLoaded: binary.LittleEndian.Uint32(raw[HiddenSection : HiddenSection+4]),
	}

	available := int(data.ItemsAvailable)
	nameLength, uriLength := data.lineLengths()
	lineSize := nameLength + uriLength
	linesStart := HiddenSection + 4
	bitmaskStart := linesStart + available*lineSize
	if len(raw) < bitmaskStart+available/8+1 {
		return nil, nil, fmt.Errorf("DCCMH: config line section truncated")
	}
	var prefixName, prefixUri string
	if data.ConfigLineSettings != nil {
		prefixName = data.ConfigLineSettings.PrefixName
		prefixUri = data.ConfigLineSettings.PrefixUri
	}
	for i := 0; i < available; i++ {
		if raw[bitmaskStart+i/8]&(1<<(7-uint(i%8))) == 0 {
			continue
		}
		line := raw[linesStart+i*lineSize : linesStart+(i+1)*lineSize]
		items.Items = append(items.Items, Item{
			Index: uint32(i),
			Name:  prefixName + strings.TrimRight(string(line[:nameLength]), "\x00"),
			Uri:   prefixUri + strings.TrimRight(string(line[nameLength:]), "\x00"),
		})
	}
	return cm, items, nil
}
