// Package cli provides the command-line interface for the SSH profile
// manager.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/config"
	"github.com/zeloras/ssh-manager/internal/logger"
	"github.com/zeloras/ssh-manager/internal/notify"
	"github.com/zeloras/ssh-manager/internal/registry"
	"github.com/zeloras/ssh-manager/internal/runner"
	"github.com/zeloras/ssh-manager/internal/store"
)

// CLI holds the application state for the CLI.
type CLI struct {
	Settings *config.Settings
	Registry *registry.Registry
	Runner   *runner.Runner
	Notifier notify.Notifier
	Log      logger.Logger

	rootCmd *cobra.Command

	// Flags
	storeFlag   string
	verboseFlag bool
	outputFlag  string
}

// New creates a new CLI instance.
func New() *CLI {
	cli := &CLI{}

	cli.rootCmd = &cobra.Command{
		Use:   "sshm",
		Short: "sshm - SSH connection profile manager",
		Long: `sshm manages named SSH connection profiles (host, user, port, key,
jump host) and builds the corresponding ssh command lines.

Profiles are stored in a JSON file under your configuration directory and
can be listed, searched, connected to, exported and backed up.

Examples:
  # Add a profile
  sshm add prod-web web.example.com deploy --port 2222

  # Connect to it
  sshm connect prod-web

  # Show the command without running it
  sshm connect prod-web --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	cli.rootCmd.PersistentFlags().StringVar(&cli.storeFlag, "store", "", "Path to the profile store file")
	cli.rootCmd.PersistentFlags().BoolVarP(&cli.verboseFlag, "verbose", "v", false, "Enable verbose output")
	cli.rootCmd.PersistentFlags().StringVarP(&cli.outputFlag, "output", "o", "text", "Output format (text, json)")

	cli.addCommands()

	return cli
}

// addCommands adds all subcommands to the root command.
func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newAddCmd(),
		cli.newListCmd(),
		cli.newConnectCmd(),
		cli.newRemoveCmd(),
		cli.newRenameCmd(),
		cli.newEditCmd(),
		cli.newSearchCmd(),
		cli.newStatsCmd(),
		cli.newExportCmd(),
		cli.newImportCmd(),
		cli.newBackupCmd(),
		cli.newVersionCmd(),
		cli.newCompletionCmd(),
	)
}

// initialize loads settings and opens the profile registry.
func (cli *CLI) initialize() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	cli.Settings = settings

	level := settings.LogLevel
	if cli.verboseFlag {
		level = "debug"
	}
	cli.Log = logger.New(level)

	storePath := settings.ProfilesFile
	if cli.storeFlag != "" {
		storePath = cli.storeFlag
	}

	cli.Registry = registry.Open(store.New(storePath), cli.Log)
	cli.Runner = runner.New()
	cli.Notifier = notify.New(settings.Notifications)

	return nil
}

// Execute runs the CLI with the given context.
func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}
