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

// Mints tokens from a mint account into the token account of the owner.
type MintV1 struct {
	MintArgs *MintArgs

	// [0] = [WRITE] token
	//
	// [1] = [] tokenOwner
	//
	// [2] = [WRITE] metadata
	//
	// [3] = [WRITE] masterEdition
	//
	// [4] = [WRITE] tokenRecord
	//
	// [5] = [WRITE] mint
	//
	// [6] = [SIGNER] authority
	//
	// [7] = [] delegateRecord
	//
	// [8] = [WRITE, SIGNER] payer
	//
	// [9] = [] systemProgram
	//
	// [10] = [] sysvarInstructions
	//
	// [11] = [] splTokenProgram
	//
	// [12] = [] splAtaProgram
	//
	// [13] = [] authorizationRulesProgram
	//
	// [14] = [] authorizationRules
	ag_solanago.AccountMetaSlice `bin:"-"`
}

// NewMintV1InstructionBuilder creates a new `MintV1` instruction builder.
func NewMintV1InstructionBuilder() *MintV1 {
	nd := &MintV1{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 15),
	}
	return nd
}

// SetMintArgs sets the "mintArgs" parameter.
func (inst *MintV1) SetMintArgs(mintArgs MintArgs) *MintV1 {
	inst.MintArgs = &mintArgs
	return inst
}

// SetTokenAccount sets the "token" account.
func (inst *MintV1) SetTokenAccount(token ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(token).WRITE()
	return inst
}

// GetTokenAccount gets the "token" account.
func (inst *MintV1) GetTokenAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

// SetTokenOwnerAccount sets the "tokenOwner" account.
func (inst *MintV1) SetTokenOwnerAccount(tokenOwner ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(tokenOwner)
	return inst
}

// GetTokenOwnerAccount gets the "tokenOwner" account.
func (inst *MintV1) GetTokenOwnerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

// SetMetadataAccount sets the "metadata" account.
func (inst *MintV1) SetMetadataAccount(metadata ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(metadata).WRITE()
	return inst
}

// GetMetadataAccount gets the "metadata" account.
func (inst *MintV1) GetMetadataAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

// SetMasterEditionAccount sets the "masterEdition" account.
func (inst *MintV1) SetMasterEditionAccount(masterEdition ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(masterEdition).WRITE()
	return inst
}

// GetMasterEditionAccount gets the "masterEdition" account.
func (inst *MintV1) GetMasterEditionAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

// SetTokenRecordAccount sets the "tokenRecord" account.
func (inst *MintV1) SetTokenRecordAccount(tokenRecord ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(tokenRecord).WRITE()
	return inst
}

// GetTokenRecordAccount gets the "tokenRecord" account.
func (inst *MintV1) GetTokenRecordAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

// SetMintAccount sets the "mint" account.
func (inst *MintV1) SetMintAccount(mint ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(mint).WRITE()
	return inst
}

// GetMintAccount gets the "mint" account.
func (inst *MintV1) GetMintAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

// SetAuthorityAccount sets the "authority" account.
func (inst *MintV1) SetAuthorityAccount(authority ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(authority).SIGNER()
	return inst
}

// GetAuthorityAccount gets the "authority" account.
func (inst *MintV1) GetAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

// SetDelegateRecordAccount sets the "delegateRecord" account.
func (inst *MintV1) SetDelegateRecordAccount(delegateRecord ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[7] = ag_solanago.Meta(delegateRecord)
	return inst
}

// GetDelegateRecordAccount gets the "delegateRecord" account.
func (inst *MintV1) GetDelegateRecordAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

// SetPayerAccount sets the "payer" account.
func (inst *MintV1) SetPayerAccount(payer ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[8] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

// GetPayerAccount gets the "payer" account.
func (inst *MintV1) GetPayerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

// SetSystemProgramAccount sets the "systemProgram" account.
func (inst *MintV1) SetSystemProgramAccount(systemProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[9] = ag_solanago.Meta(systemProgram)
	return inst
}

// GetSystemProgramAccount gets the "systemProgram" account.
func (inst *MintV1) GetSystemProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

// SetSysvarInstructionsAccount sets the "sysvarInstructions" account.
func (inst *MintV1) SetSysvarInstructionsAccount(sysvarInstructions ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[10] = ag_solanago.Meta(sysvarInstructions)
	return inst
}

// GetSysvarInstructionsAccount gets the "sysvarInstructions" account.
func (inst *MintV1) GetSysvarInstructionsAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

// SetSplTokenProgramAccount sets the "splTokenProgram" account.
func (inst *MintV1) SetSplTokenProgramAccount(splTokenProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[11] = ag_solanago.Meta(splTokenProgram)
	return inst
}

// GetSplTokenProgramAccount gets the "splTokenProgram" account.
func (inst *MintV1) GetSplTokenProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

// SetSplAtaProgramAccount sets the "splAtaProgram" account.
func (inst *MintV1) SetSplAtaProgramAccount(splAtaProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[12] = ag_solanago.Meta(splAtaProgram)
	return inst
}

// GetSplAtaProgramAccount gets the "splAtaProgram" account.
func (inst *MintV1) GetSplAtaProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

// SetAuthorizationRulesProgramAccount sets the "authorizationRulesProgram" account.
func (inst *MintV1) SetAuthorizationRulesProgramAccount(authorizationRulesProgram ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[13] = ag_solanago.Meta(authorizationRulesProgram)
	return inst
}

// GetAuthorizationRulesProgramAccount gets the "authorizationRulesProgram" account.
func (inst *MintV1) GetAuthorizationRulesProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

// SetAuthorizationRulesAccount sets the "authorizationRules" account.
func (inst *MintV1) SetAuthorizationRulesAccount(authorizationRules ag_solanago.PublicKey) *MintV1 {
	inst.AccountMetaSlice[14] = ag_solanago.Meta(authorizationRules)
	return inst
}

// GetAuthorizationRulesAccount gets the "authorizationRules" account.
func (inst *MintV1) GetAuthorizationRulesAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst MintV1) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint8(Instruction_Mint),
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
			return errors.New("accounts.Token is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.TokenOwner is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Metadata is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.MasterEdition is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.TokenRecord is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.Mint is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.Authority is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.DelegateRecord is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.Payer is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.SysvarInstructions is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.SplTokenProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.SplAtaProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.AuthorizationRulesProgram is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.AuthorizationRules is not set")
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
					instructionBranch.Child("Params[len=1]").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("MintArgs", *inst.MintArgs))
					})

					// Accounts of the instruction:
					instructionBranch.Child("Accounts[len=15]").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("                    token", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(ag_format.Meta("               tokenOwner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(ag_format.Meta("                 metadata", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(ag_format.Meta("            masterEdition", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(ag_format.Meta("              tokenRecord", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(ag_format.Meta("                     mint", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(ag_format.Meta("                authority", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(ag_format.Meta("           delegateRecord", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(ag_format.Meta("                    payer", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(ag_format.Meta("            systemProgram", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(ag_format.Meta("       sysvarInstructions", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(ag_format.Meta("          splTokenProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(ag_format.Meta("            splAtaProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(ag_format.Meta("authorizationRulesProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(ag_format.Meta("       authorizationRules", inst.AccountMetaSlice.Get(14)))
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
	return nil
}

func (obj *MintV1) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `MintArgs`:
	err = decoder.Decode(&obj.MintArgs)
	if err != nil {
		return err
	}
	return nil
}

// NewMintV1Instruction declares a new MintV1 instruction with the provided parameters and accounts.
func NewMintV1Instruction(
	// Parameters:
	mintArgs MintArgs,
	// Accounts:
	token ag_solanago.PublicKey,
	tokenOwner ag_solanago.PublicKey,
	metadata ag_solanago.PublicKey,
	masterEdition ag_solanago.PublicKey,
	tokenRecord ag_solanago.PublicKey,
	mint ag_solanago.PublicKey,
	authority ag_solanago.PublicKey,
	delegateRecord ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	systemProgram ag_solanago.PublicKey,
	sysvarInstructions ag_solanago.PublicKey,
	splTokenProgram ag_solanago.PublicKey,
	splAtaProgram ag_solanago.PublicKey,
	authorizationRulesProgram ag_solanago.PublicKey,
	authorizationRules ag_solanago.PublicKey) *MintV1 {
	return NewMintV1InstructionBuilder().
		SetMintArgs(mintArgs).
		SetTokenAccount(token).
		SetTokenOwnerAccount(tokenOwner).
		SetMetadataAccount(metadata).
		SetMasterEditionAccount(masterEdition).
		SetTokenRecordAccount(tokenRecord).
		SetMintAccount(mint).
		SetAuthorityAccount(authority).
		SetDelegateRecordAccount(delegateRecord).
		SetPayerAccount(payer).
		SetSystemProgramAccount(systemProgram).
		SetSysvarInstructionsAccount(sysvarInstructions).
		SetSplTokenProgramAccount(splTokenProgram).
		SetSplAtaProgramAccount(splAtaProgram).
		SetAuthorizationRulesProgramAccount(authorizationRulesProgram).
		SetAuthorizationRulesAccount(authorizationRules)
}
