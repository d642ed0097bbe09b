package candymachinesdk

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.uber.org/zap"

	"github.com/zzispp/candymachine-go-sdk/corecandymachine"
	"github.com/zzispp/candymachine-go-sdk/coreguard"
	"github.com/zzispp/candymachine-go-sdk/mplcore"
)

// Core drives the core candy machine behind a core candy guard, minting
// mpl-core assets into an mpl-core collection.
type Core struct {
	*Client
	scenario Scenario
	accounts Accounts
}

var _ Backend = (*Core)(nil)

func NewCore(client *Client, scenario Scenario, accounts Accounts) *Core {
	return &Core{Client: client, scenario: scenario, accounts: accounts}
}

func (c *Core) Name() string {
	return "Candy Machine Core"
}

func (c *Core) Accounts() Accounts {
	return c.accounts
}

// CreateCollection creates an mpl-core collection whose update authority is the identity.
func (c *Core) CreateCollection(ctx context.Context) (solana.Signature, error) {
	collection := c.accounts.CollectionMint.PublicKey()
	instr, err := mplcore.NewCreateCollectionV1Instruction(
		mplcore.CreateCollectionV1Args{
			Name: c.scenario.CollectionName,
			Uri:  c.scenario.CollectionURI,
		},
		collection,
		mplcore.ProgramID,
		c.identity.PublicKey(),
		solana.SystemProgramID,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build create collection instruction: %w", err)
	}
	c.log.Debug("creating collection", zap.Stringer("collection", collection))
	return c.SendAndConfirm(ctx, []solana.Instruction{instr}, c.accounts.CollectionMint)
}

func (c *Core) candyMachineData() corecandymachine.CandyMachineData {
	data := corecandymachine.CandyMachineData{
		ItemsAvailable: c.scenario.ItemsAvailable,
		IsMutable:      c.scenario.IsMutable,
	}
	if s := c.scenario.ConfigLineSettings; s != nil {
		data.ConfigLineSettings = &corecandymachine.ConfigLineSettings{
			PrefixName:   s.PrefixName,
			NameLength:   s.NameLength,
			PrefixUri:    s.PrefixURI,
			UriLength:    s.URILength,
			IsSequential: s.IsSequential,
		}
	}
	return data
}

// CreateCandyMachine allocates and initializes the candy machine, then
// creates its candy guard and wraps the candy machine with it.
func (c *Core) CreateCandyMachine(ctx context.Context) (solana.Signature, error) {
	payer := c.identity.PublicKey()
	cm := c.accounts.CandyMachine.PublicKey()
	data := c.candyMachineData()

	space := corecandymachine.AccountSpace(data)
	lamports, err := c.rentExemption(ctx, space)
	if err != nil {
		return solana.Signature{}, err
	}
	createAccountInstr, err := system.NewCreateAccountInstruction(
		lamports, space, corecandymachine.ProgramID, payer, cm,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build create account instruction: %w", err)
	}

	authorityPda, err := corecandymachine.FindAuthorityPda(cm)
	if err != nil {
		return solana.Signature{}, err
	}
	initInstr, err := corecandymachine.NewInitializeInstruction(
		data,
		cm,
		authorityPda,
		payer,
		payer,
		c.accounts.CollectionMint.PublicKey(),
		c.accounts.CollectionUpdateAuthority.PublicKey(),
		mplcore.ProgramID,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build initialize instruction: %w", err)
	}

	guard, err := coreguard.FindCandyGuardAddress(cm)
	if err != nil {
		return solana.Signature{}, err
	}
	guardData, err := c.scenario.Guards.Serialize()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't serialize guards: %w", err)
	}
	guardInstr, err := coreguard.NewInitializeInstruction(
		guardData, guard, cm, payer, payer, solana.SystemProgramID,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build guard initialize instruction: %w", err)
	}
	wrapInstr, err := coreguard.NewWrapInstruction(
		guard, payer, cm, corecandymachine.ProgramID, payer,
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build wrap instruction: %w", err)
	}

	c.log.Debug("creating candy machine",
		zap.Stringer("candyMachine", cm),
		zap.Stringer("candyGuard", guard),
		zap.Uint64("space", space),
		zap.Uint64("rent", lamports),
	)
	return c.SendAndConfirm(ctx,
		[]solana.Instruction{createAccountInstr, initInstr, guardInstr, wrapInstr},
		c.accounts.CandyMachine, c.accounts.CollectionUpdateAuthority,
	)
}

func (c *Core) AddConfigLines(ctx context.Context, index uint32, lines []ConfigLine) (solana.Signature, error) {
	configLines := make([]corecandymachine.ConfigLine, len(lines))
	for i, line := range lines {
		configLines[i] = corecandymachine.ConfigLine{Name: line.Name, Uri: line.URI}
	}
	instr, err := corecandymachine.NewAddConfigLinesInstruction(
		index, configLines, c.accounts.CandyMachine.PublicKey(), c.identity.PublicKey(),
	).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build add config lines instruction: %w", err)
	}
	return c.SendAndConfirm(ctx, []solana.Instruction{instr})
}

func (c *Core) FetchCandyMachine(ctx context.Context) (*CandyMachineState, error) {
	address := c.accounts.CandyMachine.PublicKey()
	raw, err := c.getAccountData(ctx, address, corecandymachine.ProgramID)
	if err != nil {
		return nil, err
	}
	cm, loaded, err := corecandymachine.DecodeCandyMachine(raw)
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

// Mint mints one asset owned by the identity using a fresh asset key.
func (c *Core) Mint(ctx context.Context) (solana.PublicKey, solana.Signature, error) {
	asset, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, fmt.Errorf("can't generate asset: %w", err)
	}
	instr, err := c.mintInstruction(asset.PublicKey())
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, err
	}
	sig, err := c.SendAndConfirm(ctx,
		[]solana.Instruction{computeUnitLimit(c.scenario.ComputeUnitLimit), instr},
		asset,
	)
	if err != nil {
		return solana.PublicKey{}, sig, err
	}
	return asset.PublicKey(), sig, nil
}

func (c *Core) mintInstruction(asset solana.PublicKey) (solana.Instruction, error) {
	payer := c.identity.PublicKey()
	cm := c.accounts.CandyMachine.PublicKey()
	guard, err := coreguard.FindCandyGuardAddress(cm)
	if err != nil {
		return nil, err
	}
	authorityPda, err := corecandymachine.FindAuthorityPda(cm)
	if err != nil {
		return nil, err
	}
	builder := coreguard.NewMintV1Instruction(
		c.scenario.Guards.MintArgs(),
		guard,
		corecandymachine.ProgramID,
		cm,
		authorityPda,
		payer,
		payer,
		payer,
		asset,
		c.accounts.CollectionMint.PublicKey(),
		mplcore.ProgramID,
		solana.SystemProgramID,
		solana.SysVarInstructionsPubkey,
		solana.SysVarSlotHashesPubkey,
	)
	builder.AccountMetaSlice = append(builder.AccountMetaSlice, c.scenario.Guards.MintRemainingAccounts()...)
	instr, err := builder.ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("can't build mint instruction: %w", err)
	}
	return instr, nil
}

// DeleteCandyMachine withdraws the rent of the candy machine and its candy guard.
func (c *Core) DeleteCandyMachine(ctx context.Context) (solana.Signature, error) {
	payer := c.identity.PublicKey()
	cm := c.accounts.CandyMachine.PublicKey()
	guard, err := coreguard.FindCandyGuardAddress(cm)
	if err != nil {
		return solana.Signature{}, err
	}
	cmInstr, err := corecandymachine.NewWithdrawInstruction(cm, payer).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build withdraw instruction: %w", err)
	}
	guardInstr, err := coreguard.NewWithdrawInstruction(guard, payer).ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't build guard withdraw instruction: %w", err)
	}
	return c.SendAndConfirm(ctx, []solana.Instruction{cmInstr, guardInstr})
}
