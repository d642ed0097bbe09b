package candymachinesdk

import (
	"bytes"
	"fmt"
	"time"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Guard feature bits, in the order guards are serialized.
const (
	guardBotTax     = 0
	guardSolPayment = 1
	guardStartDate  = 3
	guardEndDate    = 7
)

type BotTax struct {
	Lamports uint64
	// LastInstruction requires the mint to be the last instruction of its transaction.
	LastInstruction bool
}

type SolPayment struct {
	Lamports    uint64
	Destination solana.PublicKey
}

// GuardSet is the default guard set of a candy guard. A nil guard is disabled.
type GuardSet struct {
	BotTax     *BotTax
	SolPayment *SolPayment
	StartDate  *time.Time
	EndDate    *time.Time
}

// Serialize encodes the guard set as candy guard data with no groups.
func (g GuardSet) Serialize() ([]byte, error) {
	var features uint64
	if g.BotTax != nil {
		features |= 1 << guardBotTax
	}
	if g.SolPayment != nil {
		features |= 1 << guardSolPayment
	}
	if g.StartDate != nil {
		features |= 1 << guardStartDate
	}
	if g.EndDate != nil {
		features |= 1 << guardEndDate
	}

	buf := new(bytes.Buffer)
	enc := ag_binary.NewBorshEncoder(buf)
	if err := enc.WriteUint64(features, ag_binary.LE); err != nil {
		return nil, err
	}
	if g.BotTax != nil {
		if err := enc.WriteUint64(g.BotTax.Lamports, ag_binary.LE); err != nil {
			return nil, err
		}
		if err := enc.WriteBool(g.BotTax.LastInstruction); err != nil {
			return nil, err
		}
	}
	if g.SolPayment != nil {
		if err := enc.WriteUint64(g.SolPayment.Lamports, ag_binary.LE); err != nil {
			return nil, err
		}
		if err := enc.WriteBytes(g.SolPayment.Destination[:], false); err != nil {
			return nil, err
		}
	}
	if g.StartDate != nil {
		if err := enc.WriteInt64(g.StartDate.Unix(), ag_binary.LE); err != nil {
			return nil, err
		}
	}
	if g.EndDate != nil {
		if err := enc.WriteInt64(g.EndDate.Unix(), ag_binary.LE); err != nil {
			return nil, err
		}
	}
	// group count
	if err := enc.WriteUint32(0, ag_binary.LE); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MintRemainingAccounts returns the extra accounts the enabled guards read
// during a mint, in guard order.
func (g GuardSet) MintRemainingAccounts() solana.AccountMetaSlice {
	var metas solana.AccountMetaSlice
	if g.SolPayment != nil {
		metas = append(metas, solana.Meta(g.SolPayment.Destination).WRITE())
	}
	return metas
}

// MintArgs returns the serialized mint arguments of the enabled guards.
// None of the supported guards carries mint arguments.
func (g GuardSet) MintArgs() []byte {
	return []byte{}
}

func (g GuardSet) Validate() error {
	if g.SolPayment != nil && g.SolPayment.Destination.IsZero() {
		return fmt.Errorf("sol payment destination is not set")
	}
	if g.StartDate != nil && g.EndDate != nil && !g.EndDate.After(*g.StartDate) {
		return fmt.Errorf("end date %s is not after start date %s", g.EndDate, g.StartDate)
	}
	return nil
}
