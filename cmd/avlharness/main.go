// Package main provides avlharness, a command line harness that drives the
// AVL tree and the AVL bucketed hash set through fixed scenarios and random
// workloads while checking every invariant.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds what every subcommand needs once the flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *Config
	logger     *slog.Logger
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "avlharness",
		Short: "Exercise the AVL tree and the AVL bucketed hash set",
		Long: `avlharness runs the AVL tree through fixed scenarios and random workloads,
checking the ordering, parent links and balance factors after every operation.

Commands:
  scenario  Build the reference scenarios and verify their shapes
  stress    Random inserts and removes checked against a reference tree
  hashset   Populate a hash set of random strings and print its buckets`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .avlharness.yaml in . or $HOME)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.Int64("seed", DefaultSeed, "seed of the random workloads")
	mustBind(a.v, "verbose", flags, "verbose")
	mustBind(a.v, "seed", flags, "seed")

	rootCmd.AddCommand(newScenarioCommand(a))
	rootCmd.AddCommand(newStressCommand(a))
	rootCmd.AddCommand(newHashSetCommand(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// load the config and set up the logger on stderr of cmd.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded", "file", a.v.ConfigFileUsed(), "seed", cfg.Seed)

	return nil
}

// mustBind binds the flag name of fs to key; only a typo in the names can make it fail.
func mustBind(v *viper.Viper, key string, fs *pflag.FlagSet, name string) {
	err := v.BindPFlag(key, fs.Lookup(name))
	if err != nil {
		panic(err)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "avlharness %s\n", version)
		},
	}
}
