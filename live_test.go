package candymachinesdk_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap/zaptest"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
)

type TestConfig struct {
	RPCClient *rpc.Client
	Identity  solana.PrivateKey
	Funded    bool
}

// GetTestConfig connects to devnet. TEST_PRIVATE_KEY selects a funded
// identity, otherwise a fresh one is generated and airdropped.
func GetTestConfig(t *testing.T) TestConfig {
	if os.Getenv("CANDY_SMOKE_LIVE") != "1" {
		t.Skip("CANDY_SMOKE_LIVE is not set")
	}
	endpoint := os.Getenv("CANDY_SMOKE_RPC")
	if endpoint == "" {
		endpoint = rpc.DevNet_RPC
	}
	cfg := TestConfig{RPCClient: rpc.New(endpoint)}

	if key := os.Getenv("TEST_PRIVATE_KEY"); key != "" {
		identity, err := solana.PrivateKeyFromBase58(key)
		if err != nil {
			t.Fatalf("can't parse private key: %v", err)
		}
		cfg.Identity = identity
		cfg.Funded = true
		return cfg
	}
	identity, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("can't generate identity: %v", err)
	}
	cfg.Identity = identity
	return cfg
}

func TestLiveCoreLifecycle(t *testing.T) {
	cfg := GetTestConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := candymachinesdk.NewClient(cfg.RPCClient, cfg.Identity,
		candymachinesdk.WithLogger(zaptest.NewLogger(t)),
	)
	accounts, err := candymachinesdk.NewAccounts(cfg.Identity, false)
	if err != nil {
		t.Fatalf("can't generate accounts: %v", err)
	}
	start := time.Date(2023, 4, 4, 16, 0, 0, 0, time.UTC)
	backend := candymachinesdk.NewCore(client, candymachinesdk.Scenario{
		CollectionName: "My Collection",
		CollectionURI:  "https://arweave.net/zgFQx7sWurSZnvQHLo08Krv7HISRLZA77yeYeU1-uHk",
		ItemsAvailable: 1,
		ConfigLineSettings: &candymachinesdk.ConfigLineSettings{
			PrefixName: "Quick NFT #",
			NameLength: 11,
			PrefixURI:  "https://example.com/metadata/",
			URILength:  65,
		},
		Guards: candymachinesdk.GuardSet{
			SolPayment: &candymachinesdk.SolPayment{Lamports: 1_000_000, Destination: accounts.Treasury.PublicKey()},
			StartDate:  &start,
		},
		ComputeUnitLimit: 800_000,
	}, accounts)

	if !cfg.Funded {
		if _, err := backend.Airdrop(ctx, solana.LAMPORTS_PER_SOL); err != nil {
			t.Fatalf("can't airdrop: %v", err)
		}
	}
	if _, err := backend.CreateCollection(ctx); err != nil {
		t.Fatalf("can't create collection: %v", err)
	}
	if _, err := backend.CreateCandyMachine(ctx); err != nil {
		t.Fatalf("can't create candy machine: %v", err)
	}
	lines := []candymachinesdk.ConfigLine{{Name: "1", URI: "gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"}}
	if _, err := backend.AddConfigLines(ctx, 0, lines); err != nil {
		t.Fatalf("can't add config lines: %v", err)
	}
	asset, sig, err := backend.Mint(ctx)
	if err != nil {
		t.Fatalf("can't mint: %v", err)
	}
	t.Logf("minted %s: %s", asset, sig)

	state, err := backend.FetchCandyMachine(ctx)
	if err != nil {
		t.Fatalf("can't fetch candy machine: %v", err)
	}
	err = candymachinesdk.CompareCandyMachineState(state, candymachinesdk.ExpectedCandyMachineState{
		ItemsLoaded:   1,
		ItemsRedeemed: 1,
		Authority:     cfg.Identity.PublicKey(),
		Collection:    accounts.CollectionMint.PublicKey(),
	})
	if err != nil {
		t.Fatalf("unexpected state: %v", err)
	}
	if _, err := backend.DeleteCandyMachine(ctx); err != nil {
		t.Fatalf("can't delete candy machine: %v", err)
	}
}
