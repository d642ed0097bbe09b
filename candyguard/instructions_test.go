package candyguard

import (
	"crypto/sha256"
	"testing"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
)

func sighash(name string) ag_binary.TypeID {
	sum := sha256.Sum256([]byte("global:" + name))
	var id ag_binary.TypeID
	copy(id[:], sum[:8])
	return id
}

func TestInstructionDiscriminators(t *testing.T) {
	for name, id := range map[string]ag_binary.TypeID{
		"initialize": Instruction_Initialize,
		"mint_v2":    Instruction_MintV2,
		"withdraw":   Instruction_Withdraw,
		"wrap":       Instruction_Wrap,
	} {
		assert.Equal(t, sighash(name), id, name)
	}
}
