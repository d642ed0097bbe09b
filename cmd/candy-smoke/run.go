package main

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
	"github.com/zzispp/candymachine-go-sdk/config"
	"github.com/zzispp/candymachine-go-sdk/smoke"
)

type runOptions struct {
	rpc              string
	keypair          string
	mints            int
	delete           bool
	computeUnitPrice uint64
	failOnError      bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create a collection and a candy machine, mint from it and verify its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root, opts.apply)
			if err != nil {
				return err
			}
			log, cleanup, err := newLogger(root.logLevel, root.logFile)
			if err != nil {
				return err
			}
			defer cleanup()
			return runSmoke(cmd, cfg, log, opts.failOnError)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.rpc, "rpc", "", "RPC endpoint (overrides the config and "+config.EnvRPC+")")
	flags.StringVar(&opts.keypair, "keypair", "", "solana-keygen JSON file of the identity; a fresh identity is generated otherwise")
	flags.IntVar(&opts.mints, "mints", 0, "number of items to mint")
	flags.BoolVar(&opts.delete, "delete", false, "delete the candy machine and its candy guard at the end")
	flags.Uint64Var(&opts.computeUnitPrice, "compute-unit-price", 0, "priority fee in micro-lamports per compute unit")
	flags.BoolVar(&opts.failOnError, "fail-on-error", false, "exit with an error when any step failed")
	return cmd
}

func (o *runOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rpc") {
		cfg.RPC = o.rpc
	}
	if flags.Changed("keypair") {
		cfg.Keypair = o.keypair
	}
	if flags.Changed("mints") {
		cfg.Mints = o.mints
	}
	if flags.Changed("delete") {
		cfg.Delete = o.delete
	}
	if flags.Changed("compute-unit-price") {
		cfg.ComputeUnitPrice = o.computeUnitPrice
	}
	return nil
}

func loadIdentity(path string) (solana.PrivateKey, error) {
	if path == "" {
		return solana.NewRandomPrivateKey()
	}
	identity, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't load keypair: %w", err)
	}
	return identity, nil
}

func newBackend(cfg *config.Config, client *candymachinesdk.Client, identity solana.PrivateKey) (candymachinesdk.Backend, error) {
	accounts, err := candymachinesdk.NewAccounts(identity, cfg.Collection.SeparateUpdateAuthority)
	if err != nil {
		return nil, err
	}
	scenario, err := cfg.Scenario(accounts.Treasury.PublicKey())
	if err != nil {
		return nil, err
	}
	switch cfg.Variant {
	case config.VariantLegacy:
		return candymachinesdk.NewLegacy(client, scenario, accounts), nil
	case config.VariantCore:
		return candymachinesdk.NewCore(client, scenario, accounts), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownVariant, cfg.Variant)
	}
}

func runSmoke(cmd *cobra.Command, cfg *config.Config, log *zap.Logger, failOnError bool) error {
	identity, err := loadIdentity(cfg.Keypair)
	if err != nil {
		return err
	}
	client := candymachinesdk.NewClient(rpc.New(cfg.RPC), identity,
		candymachinesdk.WithLogger(log),
		candymachinesdk.WithCommitment(rpc.CommitmentType(cfg.Commitment)),
		candymachinesdk.WithSkipPreflight(cfg.SkipPreflight),
		candymachinesdk.WithConfirmation(cfg.ConfirmTimeout, cfg.PollInterval),
		candymachinesdk.WithComputeUnitPrice(cfg.ComputeUnitPrice),
	)
	backend, err := newBackend(cfg, client, identity)
	if err != nil {
		return err
	}
	log.Info("starting smoke test",
		zap.String("variant", string(cfg.Variant)),
		zap.String("rpc", cfg.RPC),
		zap.Stringer("identity", identity.PublicKey()),
	)

	reporter := smoke.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	runner := smoke.NewRunner(backend, smoke.Options{
		AirdropLamports: cfg.AirdropLamports(),
		ConfigLines:     cfg.Lines(),
		Mints:           cfg.Mints,
		Delete:          cfg.Delete,
	}, reporter, log)
	summary := runner.Run(cmd.Context())

	if err := reporter.Summary(summary); err != nil {
		log.Warn("can't print summary", zap.Error(err))
	}
	if failOnError && summary.Failed() {
		return summary.Err()
	}
	return nil
}
