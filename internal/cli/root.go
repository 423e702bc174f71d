package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	corroadmin "github.com/joeblew999/corrosion"
	"github.com/joeblew999/corrosion/internal/render"
	"github.com/joeblew999/corrosion/internal/tripwire"
)

// Version information (set at build time).
var Version = "dev"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "corrosion-admin",
		Short: "Administer a running Corrosion node",
		Long: `corrosion-admin talks to the admin endpoint of a local Corrosion node.

It submits one command per invocation and prints the node's log records to
stderr and its data payloads to stdout.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./corrosion-admin.yaml)")
	flags.String("admin-path", "", "Admin socket path or endpoint (unix:PATH, tcp://127.0.0.1:PORT)")
	flags.Int("admin-port", 0, "Loopback TCP admin port; overrides --admin-path")
	flags.Duration("timeout", DefaultTimeout, "Deadline for the command (0 disables it)")
	flags.String("log-level", DefaultLogLevel, "Log level (trace|debug|info|warn|error)")
	flags.StringP("output", "o", DefaultOutput, "Data output format (json|table)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{render.FormatJSON, render.FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"trace", "debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newPingCommand(),
		newSyncCommand(),
		newLocksCommand(),
		newClusterCommand(),
		newActorCommand(),
		newSubsCommand(),
		newLogCommand(),
	)

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}

	return &Config{
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
	}
}

// runCommand submits adminCmd to the configured endpoint. The first
// termination signal cancels it.
func runCommand(cmd *cobra.Command, adminCmd corroadmin.Command) error {
	cfg := GetConfig(cmd.Context())

	log, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	renderer, err := render.ByName(cfg.Output)
	if err != nil {
		return err
	}

	ep, err := cfg.Endpoint()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.Debug("Submitting admin command",
		"command", adminCmd.CommandName(),
		"endpoint", ep.String(),
	)

	signals := tripwire.Notify()
	defer signals.Stop()

	return tripwire.Run(ctx, signals, func(ctx context.Context) error {
		return corroadmin.Send(ctx, ep, adminCmd,
			corroadmin.WithLogger(log),
			corroadmin.WithOutput(cmd.OutOrStdout()),
			corroadmin.WithRenderer(renderer),
		)
	})
}
