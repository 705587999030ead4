package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/store"
)

const defaultExportFile = "ssh-profiles-backup.json"

// newExportCmd creates the export command.
func (cli *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all profiles to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultExportFile
			if len(args) == 1 {
				path = args[0]
			}

			profiles := cli.Registry.List()
			if err := store.Export(path, profiles); err != nil {
				return err
			}
			fmt.Printf("Exported %d profile(s) to %s\n", len(profiles), path)
			return nil
		},
	}
}

// newImportCmd creates the import command.
func (cli *CLI) newImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import profiles from a file",
		Long: `Import profiles from an exported file.

Profiles whose names already exist are skipped unless --force is given,
in which case the imported profile replaces the existing one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := store.ReadFile(args[0])
			if err != nil {
				return err
			}

			imported, err := cli.Registry.Import(profiles, force)
			if err != nil {
				return err
			}

			skipped := len(profiles) - len(imported)
			fmt.Printf("Imported %d profile(s)", len(imported))
			if skipped > 0 {
				fmt.Printf(", skipped %d existing (use --force to overwrite)", skipped)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing profiles with the same name")

	return cmd
}

// newBackupCmd creates the backup command.
func (cli *CLI) newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Create a timestamped backup of all profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.Backup(cli.Settings.BackupDir, cli.Registry.List())
			if err != nil {
				return err
			}
			fmt.Printf("Backup created: %s\n", path)
			return nil
		},
	}
}
