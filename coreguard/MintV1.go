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

// Mint an asset from a candy machine wrapped in the candy guard.
type MintV1 struct {
	MintArgs *[]byte
	Label    *string `bin:"optional"`

	// [0] = [] candyGuard
	//
	// [1] = [] candyMachineProgram
	//
	// [2] = [WRITE] candyMachine
	//
	// [3] = [WRITE] candyMachineAuthorityPda
	//
	// [4] = [WRITE, SIGNER] payer
	//
	// [5] = [WRITE, SIGNER] minter
	//
	// [6] = [] owner
	//
	// [7] = [WRITE, SIGNER] asset
	//
	// [8] = [WRITE] collection
	//
	// [9] = [] mplCoreProgram
	//
	// [10] = [] systemProgram
	//
	// [11] = [] sysvarInstructions
	//
	// [12] = [] recentSlothashes
	ag_solanago.AccountMetaSlice `bin:"-"`
}

// NewMintV1InstructionBuilder creates a new `MintV1` instruction builder.
func NewMintV1InstructionBuilder() *MintV1 {
	nd := &MintV1{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 13),
	}
	return nd
}

// SetMintArgs sets the "mintArgs" parameter.
func (inst *MintV1) SetMintArgs(mintArgs []byte) *MintV1 {
	inst.MintArgs = &mintArgs
	return inst
}

// SetLabel sets the "label" parameter.
func (inst *MintV1) SetLabel(label string) *MintV1 {
	inst.Label = &label
	return inst
}

// SetCandyGuardAccount sets the "candyGuard" account.
func (inst *MintV1) SetCandyGuardAccount(candyGuard ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(candyGuard)
	return inst
}

// GetCandyGuardAccount gets the "candyGuard" account.
func (inst *MintV1) GetCandyGuardAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

// SetCandyMachineProgramAccount sets the "candyMachineProgram" account.
func (inst *MintV1) SetCandyMachineProgramAccount(candyMachineProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(candyMachineProgram)
	return inst
}

// GetCandyMachineProgramAccount gets the "candyMachineProgram" account.
func (inst *MintV1) GetCandyMachineProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

// SetCandyMachineAccount sets the "candyMachine" account.
func (inst *MintV1) SetCandyMachineAccount(candyMachine ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(candyMachine).WRITE()
	return inst
}

// GetCandyMachineAccount gets the "candyMachine" account.
func (inst *MintV1) GetCandyMachineAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

// SetCandyMachineAuthorityPdaAccount sets the "candyMachineAuthorityPda" account.
func (inst *MintV1) SetCandyMachineAuthorityPdaAccount(candyMachineAuthorityPda ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(candyMachineAuthorityPda).WRITE()
	return inst
}

// GetCandyMachineAuthorityPdaAccount gets the "candyMachineAuthorityPda" account.
func (inst *MintV1) GetCandyMachineAuthorityPdaAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

// SetPayerAccount sets the "payer" account.
func (inst *MintV1) SetPayerAccount(payer ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

// GetPayerAccount gets the "payer" account.
func (inst *MintV1) GetPayerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

// SetMinterAccount sets the "minter" account.
func (inst *MintV1) SetMinterAccount(minter ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(minter).WRITE().SIGNER()
	return inst
}

// GetMinterAccount gets the "minter" account.
func (inst *MintV1) GetMinterAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

// SetOwnerAccount sets the "owner" account.
func (inst *MintV1) SetOwnerAccount(owner ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(owner)
	return inst
}

// GetOwnerAccount gets the "owner" account.
func (inst *MintV1) GetOwnerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

// SetAssetAccount sets the "asset" account.
func (inst *MintV1) SetAssetAccount(asset ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[7] = ag_solanago.Meta(asset).WRITE().SIGNER()
	return inst
}

// GetAssetAccount gets the "asset" account.
func (inst *MintV1) GetAssetAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

// SetCollectionAccount sets the "collection" account.
func (inst *MintV1) SetCollectionAccount(collection ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[8] = ag_solanago.Meta(collection).WRITE()
	return inst
}

// GetCollectionAccount gets the "collection" account.
func (inst *MintV1) GetCollectionAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

// SetMplCoreProgramAccount sets the "mplCoreProgram" account.
func (inst *MintV1) SetMplCoreProgramAccount(mplCoreProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[9] = ag_solanago.Meta(mplCoreProgram)
	return inst
}

// GetMplCoreProgramAccount gets the "mplCoreProgram" account.
func (inst *MintV1) GetMplCoreProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

// SetSystemProgramAccount sets the "systemProgram" account.
func (inst *MintV1) SetSystemProgramAccount(systemProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[10] = ag_solanago.Meta(systemProgram)
	return inst
}

// GetSystemProgramAccount gets the "systemProgram" account.
func (inst *MintV1) GetSystemProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

// SetSysvarInstructionsAccount sets the "sysvarInstructions" account.
func (inst *MintV1) SetSysvarInstructionsAccount(sysvarInstructions ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[11] = ag_solanago.Meta(sysvarInstructions)
	return inst
}

// GetSysvarInstructionsAccount gets the "sysvarInstructions" account.
func (inst *MintV1) GetSysvarInstructionsAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

// SetRecentSlothashesAccount sets the "recentSlothashes" account.
func (inst *MintV1) SetRecentSlothashesAccount(recentSlothashes ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[12] = ag_solanago.Meta(recentSlothashes)
	return inst
}

// GetRecentSlothashesAccount gets the "recentSlothashes" account.
func (inst *MintV1) GetRecentSlothashesAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst MintV1) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_MintV1,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst MintV1) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *MintV1) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.MintArgs == nil {
			return errors.New("MintArgs parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.CandyGuard is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.CandyMachineProgram is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.CandyMachine is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.CandyMachineAuthorityPda is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.Payer is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.Minter is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.Asset is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.Collection is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.MplCoreProgram is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.SysvarInstructions is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.RecentSlothashes is not set")
		}
	}
	return nil
}

func (inst *MintV1) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		//
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("MintV1")).
				//
				ParentFunc(func(instructionBranch ag_treeout.Branches) {

					// Parameters of the instruction:
					instructionBranch.Child("Params[len=2]").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("MintArgs", *inst.MintArgs))
						paramsBranch.Child(ag_format.Param("   Label (OPT)", inst.Label))
					})

					// Accounts of the instruction:
					instructionBranch.Child("Accounts[len=13]").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("              candyGuard", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(ag_format.Meta("     candyMachineProgram", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(ag_format.Meta("            candyMachine", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(ag_format.Meta("candyMachineAuthorityPda", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(ag_format.Meta("                   payer", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(ag_format.Meta("                  minter", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(ag_format.Meta("                   owner", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(ag_format.Meta("                   asset", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(ag_format.Meta("              collection", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(ag_format.Meta("          mplCoreProgram", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(ag_format.Meta("           systemProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(ag_format.Meta("      sysvarInstructions", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(ag_format.Meta("        recentSlothashes", inst.AccountMetaSlice.Get(12)))
					})
				})
		})
}

func (obj MintV1) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Serialize `MintArgs` param:
	err = encoder.Encode(obj.MintArgs)
	if err != nil {
		return err
	}
	// Serialize `Label` param (optional):
	{
		if obj.Label == nil {
			err = encoder.WriteBool(false)
			if err != nil {
				return err
			}
		} else {
			err = encoder.WriteBool(true)
			if err != nil {
				return err
			}
			err = encoder.Encode(obj.Label)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (obj *MintV1) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `MintArgs`:
	err = decoder.Decode(&obj.MintArgs)
	if err != nil {
		return err
	}
	// Deserialize `Label` (optional):
	{
		ok, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		if ok {
			err = decoder.Decode(&obj.Label)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// NewMintV1Instruction declares a new MintV1 instruction with the provided parameters and accounts.
func NewMintV1Instruction(
	// Parameters:
	mintArgs []byte,
	// Accounts:
	candyGuard ag_solanago.PublicKey,
	candyMachineProgram ag_solanago.PublicKey,
	candyMachine ag_solanago.PublicKey,
	candyMachineAuthorityPda ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	minter ag_solanago.PublicKey,
	owner ag_solanago.PublicKey,
	asset ag_solanago.PublicKey,
	collection ag_solanago.PublicKey,
	mplCoreProgram ag_solanago.PublicKey,
	systemProgram ag_solanago.PublicKey,
	sysvarInstructions ag_solanago.PublicKey,
	recentSlothashes ag_solanago.PublicKey) *MintV1 {
	return NewMintV1InstructionBuilder().
		SetMintArgs(mintArgs).
		SetCandyGuardAccount(candyGuard).
		SetCandyMachineProgramAccount(candyMachineProgram).
		SetCandyMachineAccount(candyMachine).
		SetCandyMachineAuthorityPdaAccount(candyMachineAuthorityPda).
		SetPayerAccount(payer).
		SetMinterAccount(minter).
		SetOwnerAccount(owner).
		SetAssetAccount(asset).
		SetCollectionAccount(collection).
		SetMplCoreProgramAccount(mplCoreProgram).
		SetSystemProgramAccount(systemProgram).
		SetSysvarInstructionsAccount(sysvarInstructions).
		SetRecentSlothashesAccount(recentSlothashes)
}
