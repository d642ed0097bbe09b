package candymachinesdk

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.uber.org/zap"

	"github.com/zzispp/candymachine-go-sdk/candyguard"
	"github.com/zzispp/candymachine-go-sdk/candymachine"
	"github.com/zzispp/candymachine-go-sdk/tokenmetadata"
)

// Legacy drives candy machine core v3 behind a candy guard, minting token
// metadata NFTs into a token metadata collection.
type Legacy struct {
	*Client
	scenario Scenario
	accounts Accounts
}

var _ Backend = (*Legacy)(nil)

func NewLegacy(client *Client, scenario Scenario, accounts Accounts) *Legacy {
	return &Legacy{Client: client, scenario: scenario, accounts: accounts}
}

func (l *Legacy) Name() string {
	return "Candy Machine"
}

func (l *Legacy) Accounts() Accounts {
	return l.accounts
}

// CreateCollection creates and mints a token metadata collection NFT owned
// by the identity, with the collection update authority as mint and update
// authority.
func (l *Legacy) CreateCollection(ctx context.Context) (solana.Signature, error) {
	payer := l.identity.PublicKey()
	mint := l.accounts.CollectionMint.PublicKey()
	authority := l.accounts.CollectionUpdateAuthority.PublicKey()

	metadata, err := tokenmetadata.FindMetadataAddress(mint)
	if err != nil {
		return solana.Signature{}, err
	}
	edition, err := tokenmetadata.FindMasterEditionAddress(mint)
	if err != nil {
		return solana.Signature{}, err
	}
	ata, _, err := solana.FindAssociatedTokenAddress(payer, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't find collection token account: %w", err)
	}

	decimals := uint8(0)
	creators := []tokenmetadata.Creator{{Address: authority, Verified: true, Share: 100}}
	createInstr, err := tokenmetadata.NewCreateV1Instruction(
		tokenmetadata.CreateArgs{
			AssetData: tokenmetadata.AssetData{
				Name:                 l.scenario.CollectionName,
				Uri:                  l.scenario.CollectionURI,
				SellerFeeBasisPoints: l.scenario.CollectionSellerFeeBasisPoints,
				Creators:             &creators,
				IsMutable:            true,
				TokenStandard:        tokenmetadata.TokenStandardNonFungible,
				CollectionDetails:    &tokenmetadata.CollectionDetails{},
			},
			Decimals:    &decimals,
			PrintSupply: &tokenmetadata.PrintSupply{Kind: tokenmetadata.PrintSupplyZero},
		},
		metadata,
		edition,
		mint,
		authority,
		payer,
		authority,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
		solana.TokenProgramID,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build create instruction: %w", err)
	}

	mintInstr, err := tokenmetadata.NewMintV1Instruction(
		tokenmetadata.MintArgs{Amount: 1},
		ata,
		payer,
		metadata,
		edition,
		tokenmetadata.ProgramID,
		mint,
		authority,
		tokenmetadata.ProgramID,
		payer,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
		solana.TokenProgramID,
		solana.SPLAssociatedTokenAccountProgramID,
		tokenmetadata.ProgramID,
		tokenmetadata.ProgramID,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build mint instruction: %w", err)
	}

	l.log.Debug("creating collection",
		zap.Stringer("mint", mint),
		zap.Stringer("metadata", metadata),
		zap.Stringer("masterEdition", edition),
	)
	return l.SendAndConfirm(ctx,
		[]solana.Instruction{createInstr, mintInstr},
		l.accounts.CollectionMint, l.accounts.CollectionUpdateAuthority,
	)
}

func (l *Legacy) candyMachineData() candymachine.CandyMachineData {
	data := candymachine.CandyMachineData{
		ItemsAvailable:       l.scenario.ItemsAvailable,
		Symbol:               l.scenario.Symbol,
		SellerFeeBasisPoints: l.scenario.SellerFeeBasisPoints,
		IsMutable:            l.scenario.IsMutable,
		Creators: []candymachine.Creator{
			{Address: l.identity.PublicKey(), Verified: true, PercentageShare: 100},
		},
	}
	if s := l.scenario.ConfigLineSettings; s != nil {
		data.ConfigLineSettings = &candymachine.ConfigLineSettings{
			PrefixName:   s.PrefixName,
			NameLength:   s.NameLength,
			PrefixUri:    s.PrefixURI,
			UriLength:    s.URILength,
			IsSequential: s.IsSequential,
		}
	}
	return data
}

func (l *Legacy) collectionDelegateRecord(authorityPda solana.PublicKey) (solana.PublicKey, error) {
	return tokenmetadata.FindCollectionDelegateRecordAddress(
		l.accounts.CollectionMint.PublicKey(),
		l.accounts.CollectionUpdateAuthority.PublicKey(),
		authorityPda,
	)
}

// CreateCandyMachine allocates the candy machine account, initializes it,
// creates its candy guard and wraps the candy machine with the guard.
func (l *Legacy) CreateCandyMachine(ctx context.Context) (solana.Signature, error) {
	payer := l.identity.PublicKey()
	cm := l.accounts.CandyMachine.PublicKey()
	collectionMint := l.accounts.CollectionMint.PublicKey()
	data := l.candyMachineData()

	space := candymachine.AccountSpace(data)
	lamports, err := l.rentExemption(ctx, space)
	if err != nil {
		return solana.Signature{}, err
	}
	createAccountInstr, err := system.NewCreateAccountInstruction(
		lamports, space, candymachine.ProgramID, payer, cm,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build create account instruction: %w", err)
	}

	authorityPda, err := candymachine.FindAuthorityPda(cm)
	if err != nil {
		return solana.Signature{}, err
	}
	collectionMetadata, err := tokenmetadata.FindMetadataAddress(collectionMint)
	if err != nil {
		return solana.Signature{}, err
	}
	collectionEdition, err := tokenmetadata.FindMasterEditionAddress(collectionMint)
	if err != nil {
		return solana.Signature{}, err
	}
	delegateRecord, err := l.collectionDelegateRecord(authorityPda)
	if err != nil {
		return solana.Signature{}, err
	}

	initInstr, err := candymachine.NewInitializeV2Instruction(
		data,
		uint8(candymachine.TokenStandardNonFungible),
		cm,
		authorityPda,
		payer,
		payer,
		candymachine.ProgramID,
		collectionMetadata,
		collectionMint,
		collectionEdition,
		l.accounts.CollectionUpdateAuthority.PublicKey(),
		delegateRecord,
		tokenmetadata.ProgramID,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
		candymachine.ProgramID,
		candymachine.ProgramID,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build initialize instruction: %w", err)
	}

	guardInstrs, err := l.guardInstructions(cm)
	if err != nil {
		return solana.Signature{}, err
	}

	l.log.Debug("creating candy machine",
		zap.Stringer("candyMachine", cm),
		zap.Stringer("authorityPda", authorityPda),
		zap.Uint64("space", space),
		zap.Uint64("rent", lamports),
	)
	instrs := append([]solana.Instruction{createAccountInstr, initInstr}, guardInstrs...)
	return l.SendAndConfirm(ctx, instrs,
		l.accounts.CandyMachine, l.accounts.CollectionUpdateAuthority,
	)
}

func (l *Legacy) guardInstructions(cm solana.PublicKey) ([]solana.Instruction, error) {
	payer := l.identity.PublicKey()
	guard, err := candyguard.FindCandyGuardAddress(cm)
	if err != nil {
		return nil, err
	}
	guardData, err := l.scenario.Guards.Serialize()
	if err != nil {
		return nil, fmt.Errorf("can't serialize guards: %w", err)
	}
	initInstr, err := candyguard.NewInitializeInstruction(
		guardData, guard, cm, payer, payer, solana.SystemProgramID,
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("can't build guard initialize instruction: %w", err)
	}
	wrapInstr, err := candyguard.NewWrapInstruction(
		guard, payer, cm, candymachine.ProgramID, payer,
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("can't build wrap instruction: %w", err)
	}
	return []solana.Instruction{initInstr, wrapInstr}, nil
}

func (l *Legacy) AddConfigLines(ctx context.Context, index uint32, lines []ConfigLine) (solana.Signature, error) {
	configLines := make([]candymachine.ConfigLine, len(lines))
	for i, line := range lines {
		configLines[i] = candymachine.ConfigLine{Name: line.Name, Uri: line.URI}
	}
	instr, err := candymachine.NewAddConfigLinesInstruction(
		index, configLines, l.accounts.CandyMachine.PublicKey(), l.identity.PublicKey(),
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build add config lines instruction: %w", err)
	}
	return l.SendAndConfirm(ctx, []solana.Instruction{instr})
}

func (l *Legacy) FetchCandyMachine(ctx context.Context) (*CandyMachineState, error) {
	address := l.accounts.CandyMachine.PublicKey()
	raw, err := l.getAccountData(ctx, address, candymachine.ProgramID)
	if err != nil {
		return nil, err
	}
	cm, loaded, err := candymachine.DecodeCandyMachine(raw)
	if err != nil {
		return nil, err
	}
	state := &CandyMachineState{
		Address:        address,
		Authority:      cm.Authority,
		MintAuthority:  cm.MintAuthority,
		CollectionMint: cm.CollectionMint,
		ItemsAvailable: cm.Data.ItemsAvailable,
		ItemsRedeemed:  cm.ItemsRedeemed,
		ItemsLoaded:    loaded.ItemsLoaded,
	}
	for _, item := range loaded.Items {
		state.Items = append(state.Items, ConfigLine{Name: item.Name, URI: item.Uri})
	}
	return state, nil
}

// Mint mints one NFT to the identity through the candy guard using a fresh mint key.
func (l *Legacy) Mint(ctx context.Context) (solana.PublicKey, solana.Signature, error) {
	nftMint, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, fmt.Errorf("can't generate nft mint: %w", err)
	}
	instr, err := l.mintInstruction(nftMint.PublicKey())
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, err
	}
	sig, err := l.SendAndConfirm(ctx,
		[]solana.Instruction{computeUnitLimit(l.scenario.ComputeUnitLimit), instr},
		nftMint,
	)
	if err != nil {
		return solana.PublicKey{}, sig, err
	}
	return nftMint.PublicKey(), sig, nil
}

func (l *Legacy) mintInstruction(nftMint solana.PublicKey) (solana.Instruction, error) {
	payer := l.identity.PublicKey()
	cm := l.accounts.CandyMachine.PublicKey()
	collectionMint := l.accounts.CollectionMint.PublicKey()

	guard, err := candyguard.FindCandyGuardAddress(cm)
	if err != nil {
		return nil, err
	}
	authorityPda, err := candymachine.FindAuthorityPda(cm)
	if err != nil {
		return nil, err
	}
	nftMetadata, err := tokenmetadata.FindMetadataAddress(nftMint)
	if err != nil {
		return nil, err
	}
	nftEdition, err := tokenmetadata.FindMasterEditionAddress(nftMint)
	if err != nil {
		return nil, err
	}
	ata, _, err := solana.FindAssociatedTokenAddress(payer, nftMint)
	if err != nil {
		return nil, fmt.Errorf("can't find nft token account: %w", err)
	}
	collectionMetadata, err := tokenmetadata.FindMetadataAddress(collectionMint)
	if err != nil {
		return nil, err
	}
	collectionEdition, err := tokenmetadata.FindMasterEditionAddress(collectionMint)
	if err != nil {
		return nil, err
	}
	delegateRecord, err := l.collectionDelegateRecord(authorityPda)
	if err != nil {
		return nil, err
	}

	builder := candyguard.NewMintV2Instruction(
		l.scenario.Guards.MintArgs(),
		guard,
		candymachine.ProgramID,
		cm,
		authorityPda,
		payer,
		payer,
		nftMint,
		payer,
		nftMetadata,
		nftEdition,
		ata,
		candyguard.ProgramID,
		delegateRecord,
		collectionMint,
		collectionMetadata,
		collectionEdition,
		l.accounts.CollectionUpdateAuthority.PublicKey(),
		tokenmetadata.ProgramID,
		solana.TokenProgramID,
		solana.SPLAssociatedTokenAccountProgramID,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
		solana.SysVarSlotHashesPubkey,
		candyguard.ProgramID,
		candyguard.ProgramID,
	)
	builder.AccountMetaSlice = append(builder.AccountMetaSlice, l.scenario.Guards.MintRemainingAccounts()...)
	instr, err := builder.ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("can't build mint instruction: %w", err)
	}
	return instr, nil
}

// DeleteCandyMachine withdraws the rent of the candy machine and its candy guard.
func (l *Legacy) DeleteCandyMachine(ctx context.Context) (solana.Signature, error) {
	payer := l.identity.PublicKey()
	cm := l.accounts.CandyMachine.PublicKey()
	guard, err := candyguard.FindCandyGuardAddress(cm)
	if err != nil {
		return solana.Signature{}, err
	}
	cmInstr, err := candymachine.NewWithdrawInstruction(cm, payer).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build withdraw instruction: %w", err)
	}
	guardInstr, err := candyguard.NewWithdrawInstruction(guard, payer).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build guard withdraw instruction: %w", err)
	}
	return l.SendAndConfirm(ctx, []solana.Instruction{cmInstr, guardInstr})
}
