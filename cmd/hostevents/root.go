package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hostevents/internal/config"
)

// options collects persistent flags and the resolved configuration.
type options struct {
	configPath string
	envFiles   []string
	logLevel   string
	server     string

	cfg config.Config
}

// buildRootCmd constructs the command tree. Output of client commands goes to out.
func buildRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "hostevents",
		Short:         "Native host event registry daemon and client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml|.yml|.json|.toml); searched in ./, ~/.config/hostevents, /etc/hostevents when empty")
	pf.StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "Dotenv files loaded before reading HOSTEVENTS_* variables")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")
	pf.StringVar(&opts.server, "server", "", "Daemon base URL for client commands (default "+config.DefaultServer+", env HOSTEVENTS_SERVER)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(opts)
		if err != nil {
			return err
		}
		opts.cfg = cfg
		return nil
	}

	root.AddCommand(
		newServeCmd(opts),
		newEmitCmd(opts),
		newCommandCmd(opts),
		newCompletionCmd(root),
	)
	return root
}

// resolveConfig applies file, environment, then flags, then defaults.
func resolveConfig(opts *options) (config.Config, error) {
	var cfg config.Config
	path := opts.configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return cfg, err
		}
		path = found
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg, err := config.FromEnv(cfg, opts.envFiles...)
	if err != nil {
		return cfg, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.server != "" {
		cfg.Server = opts.server
	}
	cfg = config.Defaults(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	return completionCmd
}
