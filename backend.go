package candymachinesdk

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Backend drives one candy machine program family through the lifecycle
// exercised by the smoke test.
type Backend interface {
	// Name is a human readable name of the program family.
	Name() string
	Accounts() Accounts
	Airdrop(ctx context.Context, lamports uint64) (solana.Signature, error)
	CreateCollection(ctx context.Context) (solana.Signature, error)
	CreateCandyMachine(ctx context.Context) (solana.Signature, error)
	AddConfigLines(ctx context.Context, index uint32, lines []ConfigLine) (solana.Signature, error)
	FetchCandyMachine(ctx context.Context) (*CandyMachineState, error)
	// Mint mints one item and returns the new mint or asset address.
	Mint(ctx context.Context) (solana.PublicKey, solana.Signature, error)
	// DeleteCandyMachine withdraws the candy machine and its candy guard.
	DeleteCandyMachine(ctx context.Context) (solana.Signature, error)
}

// Accounts are the keys generated for one run.
type Accounts struct {
	Keypair                   solana.PrivateKey
	CollectionMint            solana.PrivateKey
	Treasury                  solana.PrivateKey
	CandyMachine              solana.PrivateKey
	CollectionUpdateAuthority solana.PrivateKey
}

// NewAccounts generates fresh collection, treasury and candy machine keys
// for the identity. When separateUpdateAuthority is false the identity is the
// collection update authority.
func NewAccounts(identity solana.PrivateKey, separateUpdateAuthority bool) (Accounts, error) {
	a := Accounts{Keypair: identity, CollectionUpdateAuthority: identity}
	keys := []*solana.PrivateKey{&a.CollectionMint, &a.Treasury, &a.CandyMachine}
	if separateUpdateAuthority {
		keys = append(keys, &a.CollectionUpdateAuthority)
	}
	for _, key := range keys {
		k, err := solana.NewRandomPrivateKey()
		if err != nil {
			return Accounts{}, fmt.Errorf("can't generate key: %w", err)
		}
		*key = k
	}
	return a, nil
}

type ConfigLine struct {
	Name string
	URI  string
}

type ConfigLineSettings struct {
	PrefixName   string
	NameLength   uint32
	PrefixURI    string
	URILength    uint32
	IsSequential bool
}

// Scenario holds what gets created on chain.
type Scenario struct {
	CollectionName string
	CollectionURI  string
	// CollectionSellerFeeBasisPoints only applies to token metadata collections.
	CollectionSellerFeeBasisPoints uint16

	ItemsAvailable       uint64
	Symbol               string
	SellerFeeBasisPoints uint16
	IsMutable            bool
	ConfigLineSettings   *ConfigLineSettings

	Guards           GuardSet
	ComputeUnitLimit uint32
}

func (s Scenario) Validate() error {
	if s.ItemsAvailable == 0 {
		return fmt.Errorf("items available must be positive")
	}
	if s.CollectionName == "" {
		return fmt.Errorf("collection name is empty")
	}
	return s.Guards.Validate()
}
