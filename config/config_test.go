package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	legacy := Default(VariantLegacy)
	require.NoError(legacy.Validate())
	require.Equal(rpc.DevNet_RPC, legacy.RPC)
	require.Equal(uint64(5*solana.LAMPORTS_PER_SOL), legacy.AirdropLamports())
	require.Len(legacy.ConfigLines, 3)
	require.Equal(uint32(32), legacy.CandyMachine.ConfigLineSettings.NameLength)
	require.True(legacy.Collection.SeparateUpdateAuthority)
	require.Nil(legacy.Guards.BotTax)

	core := Default(VariantCore)
	require.NoError(core.Validate())
	require.False(core.CandyMachine.IsMutable)
	require.Equal(uint32(11), core.CandyMachine.ConfigLineSettings.NameLength)
	require.Equal("2023-04-04T16:00:00Z", core.Guards.StartDate)
}

func TestCoreScenario(t *testing.T) {
	require := require.New(t)
	treasury := solana.NewWallet().PublicKey()

	s, err := Default(VariantCore).Scenario(treasury)
	require.NoError(err)
	require.Equal(uint64(1_000_000), s.Guards.BotTax.Lamports)
	require.True(s.Guards.BotTax.LastInstruction)
	require.Equal(uint64(1_500_000_000), s.Guards.SolPayment.Lamports)
	require.Equal(treasury, s.Guards.SolPayment.Destination)
	require.True(s.Guards.StartDate.Equal(time.Date(2023, 4, 4, 16, 0, 0, 0, time.UTC)))
	require.Nil(s.Guards.EndDate)
	require.Equal(uint32(800_000), s.ComputeUnitLimit)
}

func TestParse(t *testing.T) {
	require := require.New(t)
	destination := solana.NewWallet().PublicKey()

	cfg, err := Parse([]byte(`
variant: core
mints: 1
delete: true
confirm_timeout: 90s
candy_machine:
  items_available: 10
  is_mutable: true
config_lines:
  - name: "7"
    uri: https://example.com/7.json
guards:
  sol_payment:
    sol: 0.25
    destination: `+destination.String()+`
`), VariantLegacy)
	require.NoError(err)
	require.NoError(cfg.Validate())
	require.Equal(VariantCore, cfg.Variant)
	require.Equal(1, cfg.Mints)
	require.True(cfg.Delete)
	require.Equal(90*time.Second, cfg.ConfirmTimeout)
	require.Equal(500*time.Millisecond, cfg.PollInterval)
	require.Equal(uint64(10), cfg.CandyMachine.ItemsAvailable)
	// nested fields not in the file keep their defaults
	require.Equal(uint32(11), cfg.CandyMachine.ConfigLineSettings.NameLength)
	require.Equal([]ConfigLine{{Name: "7", URI: "https://example.com/7.json"}}, cfg.ConfigLines)
	require.NotNil(cfg.Guards.BotTax)

	s, err := cfg.Scenario(solana.NewWallet().PublicKey())
	require.NoError(err)
	require.Equal(destination, s.Guards.SolPayment.Destination)
	require.Equal(uint64(250_000_000), s.Guards.SolPayment.Lamports)
}

func TestParseFallbackVariant(t *testing.T) {
	cfg, err := Parse([]byte("mints: 2\n"), VariantLegacy)
	require.NoError(t, err)
	require.Equal(t, VariantLegacy, cfg.Variant)
	require.Equal(t, "My Collection NFT", cfg.Collection.Name)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("variant: v2\n"), VariantCore)
	require.ErrorIs(t, err, ErrUnknownVariant)

	_, err = Parse([]byte("unknown_field: 1\n"), VariantCore)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default(VariantCore)
	cfg.RPC = ""
	cfg.Commitment = "recent"
	cfg.Mints = -1
	cfg.Guards.StartDate = "yesterday"
	cfg.ConfigLines = append(cfg.ConfigLines, ConfigLine{Name: "a name longer than eleven"})

	err := cfg.Validate()
	require.Error(t, err)
	// items exceeded, name too long, rpc, commitment, mints, start date
	require.Len(t, multierr.Errors(err), 6)
}

func TestLoadAndMarshal(t *testing.T) {
	require := require.New(t)
	out, err := Default(VariantCore).Marshal()
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(os.WriteFile(path, out, 0o600))
	cfg, err := Load(path, VariantLegacy)
	require.NoError(err)
	require.Equal(Default(VariantCore), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), VariantCore)
	require.Error(err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRPC, "https://devnet.example.com")
	cfg := Default(VariantCore)
	cfg.ApplyEnv()
	require.Equal(t, "https://devnet.example.com", cfg.RPC)
}
