package main

import (
	"github.com/spf13/cobra"

	"github.com/zzispp/candymachine-go-sdk/config"
)

type rootOptions struct {
	configPath string
	variant    string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "candy-smoke",
		Short:         "End to end smoke test of a Metaplex candy machine on devnet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.variant, "variant", string(config.VariantCore), "candy machine program family: legacy|core")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	flags.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotated file")

	cmd.AddCommand(
		newRunCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// loadConfig resolves defaults, the config file, the environment and the
// flags that were set, in that order.
func loadConfig(cmd *cobra.Command, opts *rootOptions, overrides ...func(*cobra.Command, *config.Config) error) (*config.Config, error) {
	variant, err := config.ParseVariant(opts.variant)
	if err != nil {
		return nil, err
	}
	cfg := config.Default(variant)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath, variant)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("variant") {
			cfg.Variant = variant
		}
	}
	cfg.ApplyEnv()
	for _, override := range overrides {
		if err := override(cmd, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
