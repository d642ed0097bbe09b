// Code generated from the mpl-core-candy-guard IDL and trimmed to the
// instructions used by the smoke test.

package coreguard

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// Set the candy guard as the mint authority of the candy machine.
type Wrap struct {
	// [0] = [] candyGuard
	//
	// [1] = [SIGNER] authority
	//
	// [2] = [WRITE] candyMachine
	//
	// [3] = [] candyMachineProgram
	//
	// [4] = [SIGNER] candyMachineAuthority
	ag_solanago.AccountMetaSlice `bin:"-"`
}

// NewWrapInstructionBuilder creates a new `Wrap` instruction builder.
func NewWrapInstructionBuilder() *Wrap {
	nd := &Wrap{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 5),
	}
	return nd
}

// SetCandyGuardAccount sets the "candyGuard" account.
func (inst *Wrap) SetCandyGuardAccount(candyGuard ag_solanago.PublicKey) *Wrap {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(candyGuard)
	return inst
}

// GetCandyGuardAccount gets the "candyGuard" account.
func (inst *Wrap) GetCandyGuardAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

// SetAuthorityAccount sets the "authority" account.
func (inst *Wrap) SetAuthorityAccount(authority ag_solanago.PublicKey) *Wrap {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(authority).SIGNER()
	return inst
}

// GetAuthorityAccount gets the "authority" account.
func (inst *Wrap) GetAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

// SetCandyMachineAccount sets the "candyMachine" account.
func (inst *Wrap) SetCandyMachineAccount(candyMachine ag_solanago.PublicKey) *Wrap {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(candyMachine).WRITE()
	return inst
}

// GetCandyMachineAccount gets the "candyMachine" account.
func (inst *Wrap) GetCandyMachineAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

// SetCandyMachineProgramAccount sets the "candyMachineProgram" account.
func (inst *Wrap) SetCandyMachineProgramAccount(candyMachineProgram ag_solanago.PublicKey) *Wrap {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(candyMachineProgram)
	return inst
}

// GetCandyMachineProgramAccount gets the "candyMachineProgram" account.
func (inst *Wrap) GetCandyMachineProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

// SetCandyMachineAuthorityAccount sets the "candyMachineAuthority" account.
func (inst *Wrap) SetCandyMachineAuthorityAccount(candyMachineAuthority ag_solanago.PublicKey) *Wrap {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(candyMachineAuthority).SIGNER()
	return inst
}

// GetCandyMachineAuthorityAccount gets the "candyMachineAuthority" account.
func (inst *Wrap) GetCandyMachineAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst Wrap) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_Wrap,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst Wrap) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *Wrap) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.CandyGuard is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.Authority is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.CandyMachine is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.CandyMachineProgram is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.CandyMachineAuthority is not set")
		}
	}
	return nil
}

func (inst *Wrap) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		//
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("Wrap")).
				//
				ParentFunc(func(instructionBranch ag_treeout.Branches) {

					// Parameters of the instruction:
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch ag_treeout.Branches) {})

					// Accounts of the instruction:
					instructionBranch.Child("Accounts[len=5]").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("           candyGuard", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(ag_format.Meta("            authority", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(ag_format.Meta("         candyMachine", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(ag_format.Meta("  candyMachineProgram", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(ag_format.Meta("candyMachineAuthority", inst.AccountMetaSlice.Get(4)))
					})
				})
		})
}

func (obj Wrap) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	return nil
}

func (obj *Wrap) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	return nil
}

// NewWrapInstruction declares a new Wrap instruction with the provided parameters and accounts.
func NewWrapInstruction(
	// Accounts:
	candyGuard ag_solanago.PublicKey,
	authority ag_solanago.PublicKey,
	candyMachine ag_solanago.PublicKey,
	candyMachineProgram ag_solanago.PublicKey,
	candyMachineAuthority ag_solanago.PublicKey) *Wrap {
	return NewWrapInstructionBuilder().
		SetCandyGuardAccount(candyGuard).
		SetAuthorityAccount(authority).
		SetCandyMachineAccount(candyMachine).
		SetCandyMachineProgramAccount(candyMachineProgram).
		SetCandyMachineAuthorityAccount(candyMachineAuthority)
}
