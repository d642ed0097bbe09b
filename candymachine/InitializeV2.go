// Code generated from the mpl-candy-machine-core IDL and trimmed to the
// instructions used by the smoke test.

package candymachine

import (
	"errors"

	ag_binary "github.com/gagliardetto/binary"
	ag_solanago "github.com/gagliardetto/solana-go"
	ag_format "github.com/gagliardetto/solana-go/text/format"
	ag_treeout "github.com/gagliardetto/treeout"
)

// Initialize the candy machine account with the specified data and token standard.
type InitializeV2 struct {
	Data          *CandyMachineData
	TokenStandard *uint8

	// [0] = [WRITE] candyMachine
	//
	// [1] = [WRITE] authorityPda
	//
	// [2] = [] authority
	//
	// [3] = [WRITE, SIGNER] payer
	//
	// [4] = [] ruleSet
	//
	// [5] = [WRITE] collectionMetadata
	//
	// [6] = [] collectionMint
	//
	// [7] = [] collectionMasterEdition
	//
	// [8] = [WRITE, SIGNER] collectionUpdateAuthority
	//
	// [9] = [WRITE] collectionDelegateRecord
	//
	// [10] = [] tokenMetadataProgram
	//
	// [11] = [] systemProgram
	//
	// [12] = [] sysvarInstructions
	//
	// [13] = [] authorizationRulesProgram
	//
	// [14] = [] authorizationRules
	ag_solanago.AccountMetaSlice `bin:"-"`
}

// NewInitializeV2InstructionBuilder creates a new `InitializeV2` instruction builder.
func NewInitializeV2InstructionBuilder() *InitializeV2 {
	nd := &InitializeV2{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 15),
	}
	return nd
}

// SetData sets the "data" parameter.
func (inst *InitializeV2) SetData(data CandyMachineData) *InitializeV2 {
	inst.Data = &data
	return inst
}

// SetTokenStandard sets the "tokenStandard" parameter.
func (inst *InitializeV2) SetTokenStandard(tokenStandard uint8) *InitializeV2 {
	inst.TokenStandard = &tokenStandard
	return inst
}

// SetCandyMachineAccount sets the "candyMachine" account.
func (inst *InitializeV2) SetCandyMachineAccount(candyMachine ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(candyMachine).WRITE()
	return inst
}

// GetCandyMachineAccount gets the "candyMachine" account.
func (inst *InitializeV2) GetCandyMachineAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

// SetAuthorityPdaAccount sets the "authorityPda" account.
func (inst *InitializeV2) SetAuthorityPdaAccount(authorityPda ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(authorityPda).WRITE()
	return inst
}

// GetAuthorityPdaAccount gets the "authorityPda" account.
func (inst *InitializeV2) GetAuthorityPdaAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

// SetAuthorityAccount sets the "authority" account.
func (inst *InitializeV2) SetAuthorityAccount(authority ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(authority)
	return inst
}

// GetAuthorityAccount gets the "authority" account.
func (inst *InitializeV2) GetAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

// SetPayerAccount sets the "payer" account.
func (inst *InitializeV2) SetPayerAccount(payer ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(payer).WRITE().SIGNER()
	return inst
}

// GetPayerAccount gets the "payer" account.
func (inst *InitializeV2) GetPayerAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

// SetRuleSetAccount sets the "ruleSet" account.
func (inst *InitializeV2) SetRuleSetAccount(ruleSet ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[4] = ag_solanago.Meta(ruleSet)
	return inst
}

// GetRuleSetAccount gets the "ruleSet" account.
func (inst *InitializeV2) GetRuleSetAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

// SetCollectionMetadataAccount sets the "collectionMetadata" account.
func (inst *InitializeV2) SetCollectionMetadataAccount(collectionMetadata ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[5] = ag_solanago.Meta(collectionMetadata).WRITE()
	return inst
}

// GetCollectionMetadataAccount gets the "collectionMetadata" account.
func (inst *InitializeV2) GetCollectionMetadataAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

// SetCollectionMintAccount sets the "collectionMint" account.
func (inst *InitializeV2) SetCollectionMintAccount(collectionMint ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[6] = ag_solanago.Meta(collectionMint)
	return inst
}

// GetCollectionMintAccount gets the "collectionMint" account.
func (inst *InitializeV2) GetCollectionMintAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

// SetCollectionMasterEditionAccount sets the "collectionMasterEdition" account.
func (inst *InitializeV2) SetCollectionMasterEditionAccount(collectionMasterEdition ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[7] = ag_solanago.Meta(collectionMasterEdition)
	return inst
}

// GetCollectionMasterEditionAccount gets the "collectionMasterEdition" account.
func (inst *InitializeV2) GetCollectionMasterEditionAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

// SetCollectionUpdateAuthorityAccount sets the "collectionUpdateAuthority" account.
func (inst *InitializeV2) SetCollectionUpdateAuthorityAccount(collectionUpdateAuthority ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[8] = ag_solanago.Meta(collectionUpdateAuthority).WRITE().SIGNER()
	return inst
}

// GetCollectionUpdateAuthorityAccount gets the "collectionUpdateAuthority" account.
func (inst *InitializeV2) GetCollectionUpdateAuthorityAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

// SetCollectionDelegateRecordAccount sets the "collectionDelegateRecord" account.
func (inst *InitializeV2) SetCollectionDelegateRecordAccount(collectionDelegateRecord ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[9] = ag_solanago.Meta(collectionDelegateRecord).WRITE()
	return inst
}

// GetCollectionDelegateRecordAccount gets the "collectionDelegateRecord" account.
func (inst *InitializeV2) GetCollectionDelegateRecordAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

// SetTokenMetadataProgramAccount sets the "tokenMetadataProgram" account.
func (inst *InitializeV2) SetTokenMetadataProgramAccount(tokenMetadataProgram ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[10] = ag_solanago.Meta(tokenMetadataProgram)
	return inst
}

// GetTokenMetadataProgramAccount gets the "tokenMetadataProgram" account.
func (inst *InitializeV2) GetTokenMetadataProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

// SetSystemProgramAccount sets the "systemProgram" account.
func (inst *InitializeV2) SetSystemProgramAccount(systemProgram ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[11] = ag_solanago.Meta(systemProgram)
	return inst
}

// GetSystemProgramAccount gets the "systemProgram" account.
func (inst *InitializeV2) GetSystemProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

// SetSysvarInstructionsAccount sets the "sysvarInstructions" account.
func (inst *InitializeV2) SetSysvarInstructionsAccount(sysvarInstructions ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[12] = ag_solanago.Meta(sysvarInstructions)
	return inst
}

// GetSysvarInstructionsAccount gets the "sysvarInstructions" account.
func (inst *InitializeV2) GetSysvarInstructionsAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

// SetAuthorizationRulesProgramAccount sets the "authorizationRulesProgram" account.
func (inst *InitializeV2) SetAuthorizationRulesProgramAccount(authorizationRulesProgram ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[13] = ag_solanago.Meta(authorizationRulesProgram)
	return inst
}

// GetAuthorizationRulesProgramAccount gets the "authorizationRulesProgram" account.
func (inst *InitializeV2) GetAuthorizationRulesProgramAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

// SetAuthorizationRulesAccount sets the "authorizationRules" account.
func (inst *InitializeV2) SetAuthorizationRulesAccount(authorizationRules ag_solanago.PublicKey) *InitializeV2 {
	inst.AccountMetaSlice[14] = ag_solanago.Meta(authorizationRules)
	return inst
}

// GetAuthorizationRulesAccount gets the "authorizationRules" account.
func (inst *InitializeV2) GetAuthorizationRulesAccount() *ag_solanago.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst InitializeV2) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_InitializeV2,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst InitializeV2) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitializeV2) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.Data == nil {
			return errors.New("Data parameter is not set")
		}
		if inst.TokenStandard == nil {
			return errors.New("TokenStandard parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.CandyMachine is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.AuthorityPda is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Authority is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Payer is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.RuleSet is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.CollectionMetadata is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.CollectionMint is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.CollectionMasterEdition is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.CollectionUpdateAuthority is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.CollectionDelegateRecord is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.TokenMetadataProgram is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.SysvarInstructions is not set")
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

func (inst *InitializeV2) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		//
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("InitializeV2")).
				//
				ParentFunc(func(instructionBranch ag_treeout.Branches) {

					// Parameters of the instruction:
					instructionBranch.Child("Params[len=2]").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("         Data", *inst.Data))
						paramsBranch.Child(ag_format.Param("TokenStandard", *inst.TokenStandard))
					})

					// Accounts of the instruction:
					instructionBranch.Child("Accounts[len=15]").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("             candyMachine", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(ag_format.Meta("             authorityPda", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(ag_format.Meta("                authority", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(ag_format.Meta("                    payer", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(ag_format.Meta("                  ruleSet", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(ag_format.Meta("       collectionMetadata", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(ag_format.Meta("           collectionMint", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(ag_format.Meta("  collectionMasterEdition", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(ag_format.Meta("collectionUpdateAuthority", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(ag_format.Meta(" collectionDelegateRecord", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(ag_format.Meta("     tokenMetadataProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(ag_format.Meta("            systemProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(ag_format.Meta("       sysvarInstructions", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(ag_format.Meta("authorizationRulesProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(ag_format.Meta("       authorizationRules", inst.AccountMetaSlice.Get(14)))
					})
				})
		})
}

func (obj InitializeV2) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	// Serialize `Data` param:
	err = encoder.Encode(obj.Data)
	if err != nil {
		return err
	}
	// Serialize `TokenStandard` param:
	err = encoder.Encode(obj.TokenStandard)
	if err != nil {
		return err
	}
	return nil
}

func (obj *InitializeV2) UnmarshalWithDecoder(decoder *ag_binary.Decoder) (err error) {
	// Deserialize `Data`:
	err = decoder.Decode(&obj.Data)
	if err != nil {
		return err
	}
	// Deserialize `TokenStandard`:
	err = decoder.Decode(&obj.TokenStandard)
	if err != nil {
		return err
	}
	return nil
}

// NewInitializeV2Instruction declares a new InitializeV2 instruction with the provided parameters and accounts.
func NewInitializeV2Instruction(
	// Parameters:
	data CandyMachineData,
	tokenStandard uint8,
	// Accounts:
	candyMachine ag_solanago.PublicKey,
	authorityPda ag_solanago.PublicKey,
	authority ag_solanago.PublicKey,
	payer ag_solanago.PublicKey,
	ruleSet ag_solanago.PublicKey,
	collectionMetadata ag_solanago.PublicKey,
	collectionMint ag_solanago.PublicKey,
	collectionMasterEdition ag_solanago.PublicKey,
	collectionUpdateAuthority ag_solanago.PublicKey,
	collectionDelegateRecord ag_solanago.PublicKey,
	tokenMetadataProgram ag_solanago.PublicKey,
	systemProgram ag_solanago.PublicKey,
	sysvarInstructions ag_solanago.PublicKey,
	authorizationRulesProgram ag_solanago.PublicKey,
	authorizationRules ag_solanago.PublicKey) *InitializeV2 {
	return NewInitializeV2InstructionBuilder().
		SetData(data).
		SetTokenStandard(tokenStandard).
		SetCandyMachineAccount(candyMachine).
		SetAuthorityPdaAccount(authorityPda).
		SetAuthorityAccount(authority).
		SetPayerAccount(payer).
		SetRuleSetAccount(ruleSet).
		SetCollectionMetadataAccount(collectionMetadata).
		SetCollectionMintAccount(collectionMint).
		SetCollectionMasterEditionAccount(collectionMasterEdition).
		SetCollectionUpdateAuthorityAccount(collectionUpdateAuthority).
		SetCollectionDelegateRecordAccount(collectionDelegateRecord).
		SetTokenMetadataProgramAccount(tokenMetadataProgram).
		SetSystemProgramAccount(systemProgram).
		SetSysvarInstructionsAccount(sysvarInstructions).
		SetAuthorizationRulesProgramAccount(authorizationRulesProgram).
		SetAuthorizationRulesAccount(authorizationRules)
}
