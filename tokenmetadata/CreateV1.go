// Code generated from the mpl-token-metadata IDL and trimmed to the
// instructions used by the smoke test.

package tokenmetadata

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// Creates the metadata and associated accounts for a new or existing mint account.
type CreateV1 struct {
	CreateArgs *CreateArgs

	// [0] = [WRITE] metadata
	//
	// [1] = [WRITE] masterEdition
	//
	// [2] = [WRITE, SIGNER] mint
	//
	// [3] = [SIGNER] authority
	//
	// [4] = [WRITE, SIGNER] payer
	//
	// [5] = [SIGNER] updateAuthority
	//
	// [6] = [] systemProgram
	//
	// [7] = [] sysvarInstructions
	//
	// [8] = [] splTokenProgram
	ag_solanago.AccountMetaSlice `bin:"-"`
}

// NewCreateV1InstructionBuilder creates a new `CreateV1` instruction builder.
func NewCreateV1InstructionBuilder() *CreateV1 {
	nd := &CreateV1{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 9),
	}
	return nd
}

// SetCreateArgs sets the "createArgs" parameter.
func (inst *CreateV1) SetCreateArgs(createArgs CreateArgs) *CreateV1 {
	inst.CreateArgs = &createArgs
	return inst
}

// SetMetadataAccount sets the "metadata" account.
func (inst *CreateV1) SetMetadataAccount(metadata ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

// GetMetadataAccount gets the "metadata" account.
func (inst *CreateV1) GetMetadataAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

// SetMasterEditionAccount sets the "masterEdition" account.
func (inst *CreateV1) SetMasterEditionAccount(masterEdition ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(masterEdition).WRITE()
	return inst
}

// GetMasterEditionAccount gets the "masterEdition" account.
func (inst *CreateV1) GetMasterEditionAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

// SetMintAccount sets the "mint" account.
func (inst *CreateV1) SetMintAccount(mint ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(mint).WRITE().SIGNER()
	return inst
}

// GetMintAccount gets the "mint" account.
func (inst *CreateV1) GetMintAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

// SetAuthorityAccount sets the "authority" account.
func (inst *CreateV1) SetAuthorityAccount(authority ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(authority).SIGNER()
	return inst
}

// GetAuthorityAccount gets the "authority" account.
func (inst *CreateV1) GetAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

// SetPayerAccount sets the "payer" account.
func (inst *CreateV1) SetPayerAccount(payer ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

// GetPayerAccount gets the "payer" account.
func (inst *CreateV1) GetPayerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

// SetUpdateAuthorityAccount sets the "updateAuthority" account.
func (inst *CreateV1) SetUpdateAuthorityAccount(updateAuthority ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(updateAuthority).SIGNER()
	return inst
}

// GetUpdateAuthorityAccount gets the "updateAuthority" account.
func (inst *CreateV1) GetUpdateAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

// SetSystemProgramAccount sets the "systemProgram" account.
func (inst *CreateV1) SetSystemProgramAccount(systemProgram ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(systemProgram)
	return inst
}

// GetSystemProgramAccount gets the "systemProgram" account.
func (inst *CreateV1) GetSystemProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

// SetSysvarInstructionsAccount sets the "sysvarInstructions" account.
func (inst *CreateV1) SetSysvarInstructionsAccount(sysvarInstructions ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[7] = ag_solanago.Meta(sysvarInstructions)
	return inst
}

// GetSysvarInstructionsAccount gets the "sysvarInstructions" account.
func (inst *CreateV1) GetSysvarInstructionsAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

// SetSplTokenProgramAccount sets the "splTokenProgram" account.
func (inst *CreateV1) SetSplTokenProgramAccount(splTokenProgram ag_solanago.PublicKey) *CreateV1 {
	inst.AccountMetaSlice[8] = ag_solanago.Meta(splTokenProgram)
	return inst
}

// GetSplTokenProgramAccount gets the "splTokenProgram" account.
func (inst *CreateV1) GetSplTokenProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst CreateV1) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint8(Instruction_Create),
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst CreateV1) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CreateV1) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.CreateArgs == nil {
			return errors.New("CreateArgs parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Metadata is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.MasterEdition is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Mint is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Authority is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.Payer is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.UpdateAuthority is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.SysvarInstructions is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.SplTokenProgram is not set")
		}
	}
	return nil
}

func (inst *CreateV1) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		//
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("CreateV1")).
				//
				ParentFunc(func(instructionBranch ag_treeout.Branches) {

					// Parameters of the instruction:
					instructionBranch.Child("Params[len=1]").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("CreateArgs", *inst.CreateArgs))
					})

					// Accounts of the instruction:
					instructionBranch.Child("Accounts[len=9]").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("          metadata", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(ag_format.Meta("     masterEdition", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(ag_format.Meta("              mint", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(ag_format.Meta("         authority", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(ag_format.Meta("             payer", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(ag_format.Meta("   updateAuthority", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(ag_format.Meta("     systemProgram", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(ag_format.Meta("sysvarInstructions", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(ag_format.Meta("   splTokenProgram", inst.AccountMetaSlice.Get(8)))
					})
				})
		})
}

func (obj CreateV1) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Serialize `CreateArgs` param:
	err = encoder.Encode(obj.CreateArgs)
	if err != nil {
		return err
	}
	return nil
}

func (obj *CreateV1) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `CreateArgs`:
	err = decoder.Decode(&obj.CreateArgs)
	if err != nil {
		return err
	}
	return nil
}

// NewCreateV1Instruction declares a new CreateV1 instruction with the provided parameters and accounts.
func NewCreateV1Instruction(
	// Parameters:
	createArgs CreateArgs,
	// Accounts:
	metadata ag_solanago.PublicKey,
	masterEdition ag_solanago.PublicKey,
	mint ag_solanago.PublicKey,
	authority ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	updateAuthority ag_solanago.PublicKey,
	systemProgram ag_solanago.PublicKey,
	sysvarInstructions ag_solanago.PublicKey,
	splTokenProgram ag_solanago.PublicKey) *CreateV1 {
	return NewCreateV1InstructionBuilder().
		SetCreateArgs(createArgs).
		SetMetadataAccount(metadata).
		SetMasterEditionAccount(masterEdition).
		SetMintAccount(mint).
		SetAuthorityAccount(authority).
		SetPayerAccount(payer).
		SetUpdateAuthorityAccount(updateAuthority).
		SetSystemProgramAccount(systemProgram).
		SetSysvarInstructionsAccount(sysvarInstructions).
		SetSplTokenProgramAccount(splTokenProgram)
}
