package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// newRemoveCmd creates the remove command.
func (cli *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an SSH profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := cli.Registry.Remove(name); err != nil {
				if errors.Is(err, profile.ErrNotFound) {
					cli.printSuggestions(name)
				}
				return err
			}
			fmt.Printf("Removed SSH profile %q\n", name)
			return nil
		},
	}
}

// newRenameCmd creates the rename command.
func (cli *CLI) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename an SSH profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			if err := cli.Registry.Rename(oldName, newName); err != nil {
				return err
			}
			fmt.Printf("Renamed SSH profile %q to %q\n", oldName, newName)
			return nil
		},
	}
}
