// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackchuka/vcsinfo/internal/config"
	"github.com/jackchuka/vcsinfo/internal/prompt"
	"github.com/jackchuka/vcsinfo/internal/status"
)

var (
	cfgFile string
	cfg     *config.Config
	cfgErr  error
	logger  = slog.New(slog.DiscardHandler)

	flagFallback bool
	flagColor    bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "vcsinfo",
	Short: "Print version control status for a shell prompt",
	Long: `
  vcsinfo prints a compact status string for the git, Mercurial or
  Subversion working copy containing the current directory:

      [git](main ↑ |W +0 ~2 -0 !0 |? 1)

  Outside a working copy it prints nothing. It never fails, so it is
  safe to call from PS1 or PROMPT.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Backend output is parsed in English.
		_ = os.Setenv("LANG", "en_US.UTF-8")
		_ = os.Setenv("LANGUAGE", "en_US.UTF-8")

		if flagDebug || os.Getenv("VCSINFO_DEBUG") == "1" {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		if cfgErr != nil {
			logger.Debug("config not loaded, using defaults", "path", cfgFile, "err", cfgErr)
		}
	},
	RunE: runPrompt,
}

// Execute runs the CLI. Failures of the prompt command itself are never
// reported, so a broken backend cannot break the shell prompt.
func Execute() {
	c, err := rootCmd.ExecuteC()
	if err == nil || c == rootCmd {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/vcsinfo/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log backend commands to stderr")
	rootCmd.Flags().BoolVar(&flagFallback, "fallback", false, "use ASCII symbols instead of Unicode arrows")
	rootCmd.Flags().BoolVar(&flagColor, "color", false, "colour the prompt with ANSI escapes")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	cfg, cfgErr = config.Load(cfgFile)
	if cfgErr != nil {
		cfg = config.NewConfig()
	}
}

func runPrompt(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		logger.Debug("read working directory", "err", err)
		return nil
	}

	opts := prompt.Options{Fallback: cfg.Fallback, Color: cfg.Color}
	if cmd.Flags().Changed("fallback") {
		opts.Fallback = flagFallback
	}
	if cmd.Flags().Changed("color") {
		opts.Color = flagColor
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reader := status.NewReader(append(status.FromConfig(cfg), status.WithLogger(logger))...)
	st, err := reader.Current(ctx, dir)
	if err != nil {
		logger.Debug("read status", "dir", dir, "err", err)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, prompt.NewFormatter(out, opts).Format(st))
	return nil
}
