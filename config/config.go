// Package config holds the smoke test configuration. Defaults reproduce the
// accounts, items and guards of the reference devnet run; a YAML file and
// command line flags override them.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
)

// EnvRPC overrides the RPC endpoint so that API keys stay out of files.
const EnvRPC = "CANDY_SMOKE_RPC"

type Variant string

const (
	VariantLegacy Variant = "legacy"
	VariantCore   Variant = "core"
)

var ErrUnknownVariant = errors.New("unknown variant")

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantLegacy, VariantCore:
		return v, nil
	default:
		return "", fmt.Errorf("%w %q, want %q or %q", ErrUnknownVariant, s, VariantLegacy, VariantCore)
	}
}

type Config struct {
	Variant Variant `yaml:"variant"`
	RPC     string  `yaml:"rpc"`
	// Keypair is a solana-keygen JSON file. Empty means a fresh identity per run.
	Keypair string `yaml:"keypair,omitempty"`

	AirdropSOL   float64      `yaml:"airdrop_sol"`
	Collection   Collection   `yaml:"collection"`
	CandyMachine CandyMachine `yaml:"candy_machine"`
	ConfigLines  []ConfigLine `yaml:"config_lines"`
	Guards       Guards       `yaml:"guards"`

	Mints            int    `yaml:"mints"`
	ComputeUnitLimit uint32 `yaml:"compute_unit_limit"`
	ComputeUnitPrice uint64 `yaml:"compute_unit_price,omitempty"`
	Delete           bool   `yaml:"delete"`

	Commitment     string        `yaml:"commitment"`
	SkipPreflight  bool          `yaml:"skip_preflight"`
	ConfirmTimeout time.Duration `yaml:"confirm_timeout"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

type Collection struct {
	Name string `yaml:"name"`
	URI  string `yaml:"uri"`
	// SellerFeeBasisPoints only applies to the legacy token metadata collection.
	SellerFeeBasisPoints uint16 `yaml:"seller_fee_basis_points,omitempty"`
	// SeparateUpdateAuthority generates a collection update authority
	// distinct from the identity.
	SeparateUpdateAuthority bool `yaml:"separate_update_authority"`
}

type CandyMachine struct {
	ItemsAvailable       uint64              `yaml:"items_available"`
	Symbol               string              `yaml:"symbol,omitempty"`
	SellerFeeBasisPoints uint16              `yaml:"seller_fee_basis_points,omitempty"`
	IsMutable            bool                `yaml:"is_mutable"`
	ConfigLineSettings   *ConfigLineSettings `yaml:"config_line_settings,omitempty"`
}

type ConfigLineSettings struct {
	PrefixName   string `yaml:"prefix_name"`
	NameLength   uint32 `yaml:"name_length"`
	PrefixURI    string `yaml:"prefix_uri"`
	URILength    uint32 `yaml:"uri_length"`
	IsSequential bool   `yaml:"is_sequential"`
}

type ConfigLine struct {
	Name string `yaml:"name"`
	URI  string `yaml:"uri"`
}

type Guards struct {
	BotTax     *BotTax     `yaml:"bot_tax,omitempty"`
	SolPayment *SolPayment `yaml:"sol_payment,omitempty"`
	// StartDate and EndDate are RFC 3339 timestamps.
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`
}

type BotTax struct {
	SOL             float64 `yaml:"sol"`
	LastInstruction bool    `yaml:"last_instruction"`
}

type SolPayment struct {
	SOL float64 `yaml:"sol"`
	// Destination defaults to the generated treasury.
	Destination string `yaml:"destination,omitempty"`
}

var defaultConfigLines = []ConfigLine{
	{Name: "1", URI: "https://arweave.net/gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"},
	{Name: "2", URI: "https://arweave.net/Ya_V3r3k_c-BivoJiMUfO8vEpsi95c5dupYIh2cFdGo"},
	{Name: "3", URI: "https://arweave.net/8MPJnyFK0eBvYEKRgA6mxCBbGGEHIRXjC74Jl06ymDg"},
}

const collectionURI = "https://arweave.net/zgFQx7sWurSZnvQHLo08Krv7HISRLZA77yeYeU1-uHk"

// Default returns the reference devnet configuration for variant.
func Default(variant Variant) *Config {
	cfg := &Config{
		Variant:          variant,
		RPC:              rpc.DevNet_RPC,
		AirdropSOL:       5,
		ConfigLines:      append([]ConfigLine(nil), defaultConfigLines...),
		Mints:            3,
		ComputeUnitLimit: 800_000,
		Commitment:       string(rpc.CommitmentProcessed),
		SkipPreflight:    true,
		ConfirmTimeout:   60 * time.Second,
		PollInterval:     500 * time.Millisecond,
	}
	switch variant {
	case VariantCore:
		cfg.Collection = Collection{Name: "My Collection", URI: collectionURI}
		cfg.CandyMachine = CandyMachine{
			ItemsAvailable: 3,
			ConfigLineSettings: &ConfigLineSettings{
				PrefixName: "Quick NFT #",
				NameLength: 11,
				PrefixURI:  "https://example.com/metadata/",
				URILength:  65,
			},
		}
		cfg.Guards = Guards{
			BotTax:     &BotTax{SOL: 0.001, LastInstruction: true},
			SolPayment: &SolPayment{SOL: 1.5},
			StartDate:  "2023-04-04T16:00:00Z",
		}
	default:
		cfg.Collection = Collection{
			Name:                    "My Collection NFT",
			URI:                     collectionURI,
			SellerFeeBasisPoints:    10000,
			SeparateUpdateAuthority: true,
		}
		cfg.CandyMachine = CandyMachine{
			ItemsAvailable:       3,
			SellerFeeBasisPoints: 999,
			IsMutable:            true,
			ConfigLineSettings: &ConfigLineSettings{
				PrefixName: "Quick NFT #",
				NameLength: 32,
				PrefixURI:  "https://example.com/metadata/",
				URILength:  65,
			},
		}
	}
	return cfg
}

// Load reads a YAML file over the defaults of the variant it names, or of
// fallback when the file does not name one.
func Load(path string, fallback Variant) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	return Parse(raw, fallback)
}

func Parse(raw []byte, fallback Variant) (*Config, error) {
	var probe struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("can't parse config: %w", err)
	}
	variant := fallback
	if probe.Variant != "" {
		v, err := ParseVariant(probe.Variant)
		if err != nil {
			return nil, err
		}
		variant = v
	}
	cfg := Default(variant)
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if endpoint := os.Getenv(EnvRPC); endpoint != "" {
		c.RPC = endpoint
	}
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if _, verr := ParseVariant(string(c.Variant)); verr != nil {
		err = multierr.Append(err, verr)
	}
	if c.RPC == "" {
		err = multierr.Append(err, errors.New("rpc endpoint is empty"))
	}
	switch rpc.CommitmentType(c.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		err = multierr.Append(err, fmt.Errorf("unsupported commitment %q", c.Commitment))
	}
	if c.CandyMachine.ItemsAvailable == 0 {
		err = multierr.Append(err, errors.New("items_available must be positive"))
	}
	if uint64(len(c.ConfigLines)) > c.CandyMachine.ItemsAvailable {
		err = multierr.Append(err, fmt.Errorf("%d config lines exceed %d items available", len(c.ConfigLines), c.CandyMachine.ItemsAvailable))
	}
	if s := c.CandyMachine.ConfigLineSettings; s != nil {
		for i, line := range c.ConfigLines {
			if uint32(len(line.Name)) > s.NameLength {
				err = multierr.Append(err, fmt.Errorf("config line %d: name longer than %d", i, s.NameLength))
			}
		}
	}
	if c.Mints < 0 {
		err = multierr.Append(err, errors.New("mints must not be negative"))
	}
	if c.ConfirmTimeout <= 0 || c.PollInterval <= 0 {
		err = multierr.Append(err, errors.New("confirm_timeout and poll_interval must be positive"))
	}
	if c.Guards.SolPayment != nil && c.Guards.SolPayment.Destination != "" {
		if _, perr := solana.PublicKeyFromBase58(c.Guards.SolPayment.Destination); perr != nil {
			err = multierr.Append(err, fmt.Errorf("sol payment destination: %w", perr))
		}
	}
	for name, date := range map[string]string{"start_date": c.Guards.StartDate, "end_date": c.Guards.EndDate} {
		if date == "" {
			continue
		}
		if _, perr := time.Parse(time.RFC3339, date); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, perr))
		}
	}
	return err
}

// AirdropLamports returns the airdrop amount in lamports.
func (c *Config) AirdropLamports() uint64 {
	return solToLamports(c.AirdropSOL)
}

func solToLamports(sol float64) uint64 {
	return uint64(math.Round(sol * float64(solana.LAMPORTS_PER_SOL)))
}

func (c *Config) Lines() []candymachinesdk.ConfigLine {
	lines := make([]candymachinesdk.ConfigLine, len(c.ConfigLines))
	for i, line := range c.ConfigLines {
		lines[i] = candymachinesdk.ConfigLine{Name: line.Name, URI: line.URI}
	}
	return lines
}

// Scenario converts the configuration into what the backends create.
// treasury receives sol payments without an explicit destination.
func (c *Config) Scenario(treasury solana.PublicKey) (candymachinesdk.Scenario, error) {
	s := candymachinesdk.Scenario{
		CollectionName:                 c.Collection.Name,
		CollectionURI:                  c.Collection.URI,
		CollectionSellerFeeBasisPoints: c.Collection.SellerFeeBasisPoints,
		ItemsAvailable:                 c.CandyMachine.ItemsAvailable,
		Symbol:                         c.CandyMachine.Symbol,
		SellerFeeBasisPoints:           c.CandyMachine.SellerFeeBasisPoints,
		IsMutable:                      c.CandyMachine.IsMutable,
		ComputeUnitLimit:               c.ComputeUnitLimit,
	}
	if cls := c.CandyMachine.ConfigLineSettings; cls != nil {
		s.ConfigLineSettings = &candymachinesdk.ConfigLineSettings{
			PrefixName:   cls.PrefixName,
			NameLength:   cls.NameLength,
			PrefixURI:    cls.PrefixURI,
			URILength:    cls.URILength,
			IsSequential: cls.IsSequential,
		}
	}

	g := c.Guards
	if g.BotTax != nil {
		s.Guards.BotTax = &candymachinesdk.BotTax{
			Lamports:        solToLamports(g.BotTax.SOL),
			LastInstruction: g.BotTax.LastInstruction,
		}
	}
	if g.SolPayment != nil {
		destination := treasury
		if g.SolPayment.Destination != "" {
			pk, err := solana.PublicKeyFromBase58(g.SolPayment.Destination)
			if err != nil {
				return candymachinesdk.Scenario{}, fmt.Errorf("can't parse sol payment destination: %w", err)
			}
			destination = pk
		}
		s.Guards.SolPayment = &candymachinesdk.SolPayment{
			Lamports:    solToLamports(g.SolPayment.SOL),
			Destination: destination,
		}
	}
	if g.StartDate != "" {
		t, err := time.Parse(time.RFC3339, g.StartDate)
		if err != nil {
			return candymachinesdk.Scenario{}, fmt.Errorf("can't parse start date: %w", err)
		}
		s.Guards.StartDate = &t
	}
	if g.EndDate != "" {
		t, err := time.Parse(time.RFC3339, g.EndDate)
		if err != nil {
			return candymachinesdk.Scenario{}, fmt.Errorf("can't parse end date: %w", err)
		}
		s.Guards.EndDate = &t
	}
	return s, s.Validate()
}
