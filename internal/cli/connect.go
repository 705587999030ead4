package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/profile"
	"github.com/zeloras/ssh-manager/internal/runner"
	"github.com/zeloras/ssh-manager/internal/search"
)

// newConnectCmd creates the connect command.
func (cli *CLI) newConnectCmd() *cobra.Command {
	var (
		dryRun bool
		copyCmd bool
	)

	cmd := &cobra.Command{
		Use:   "connect <name>",
		Short: "Connect to an SSH profile",
		Long: `Connect to a saved SSH profile.

The profile's usage metadata is updated and the ssh command is executed
attached to your terminal. With --dry-run the command is printed without
side effects; with --copy it is also placed on the clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runConnect(cmd, args[0], dryRun, copyCmd)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the ssh command without executing it")
	cmd.Flags().BoolVar(&copyCmd, "copy", false, "Copy the ssh command to the clipboard")

	return cmd
}

func (cli *CLI) runConnect(cmd *cobra.Command, name string, dryRun, copyCmd bool) error {
	ctx := cmd.Context()

	sshCmd, err := cli.Registry.Connect(name, dryRun)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			cli.printSuggestions(name)
		}
		return err
	}

	if copyCmd {
		if clipErr := cli.Runner.CopyToClipboard(ctx, sshCmd); clipErr != nil {
			cli.Log.Debugf("clipboard copy skipped: %v", clipErr)
		} else {
			fmt.Println("Command copied to clipboard.")
		}
	}

	if dryRun {
		fmt.Printf("SSH command for %q:\n  %s\n", name, sshCmd)
		return nil
	}

	fmt.Printf("Connecting to %s...\n", name)
	fmt.Printf("Command: %s\n", sshCmd)

	if err := cli.Runner.Run(ctx, sshCmd); err != nil {
		if errors.Is(err, runner.ErrInterrupted) {
			fmt.Println("\nConnection interrupted by user.")
			return nil
		}
		if notifyErr := cli.Notifier.NotifyConnectFailure(name, err); notifyErr != nil {
			cli.Log.Debugf("notification failed: %v", notifyErr)
		}
		return err
	}
	return nil
}

// printSuggestions prints did-you-mean candidates for an unknown name.
func (cli *CLI) printSuggestions(name string) {
	suggestions := search.Suggest(cli.Registry.Names(), name)
	if len(suggestions) > 0 {
		fmt.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
}
