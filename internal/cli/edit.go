package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/registry"
)

// newEditCmd creates the edit command.
func (cli *CLI) newEditCmd() *cobra.Command {
	var (
		host        string
		username    string
		port        int
		identity    string
		jumpHost    string
		description string
		tags        []string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit fields of an SSH profile",
		Long: `Edit an SSH profile. Only the flags you pass are changed; every other
field keeps its current value. Pass an empty string to clear an optional
field, e.g. --jump "".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var upd registry.Update
			flags := cmd.Flags()
			if flags.Changed("host") {
				upd.Host = &host
			}
			if flags.Changed("username") {
				upd.Username = &username
			}
			if flags.Changed("port") {
				upd.Port = &port
			}
			if flags.Changed("identity") {
				upd.PrivateKeyPath = &identity
			}
			if flags.Changed("jump") {
				upd.JumpHost = &jumpHost
			}
			if flags.Changed("description") {
				upd.Description = &description
			}
			if flags.Changed("tag") {
				upd.Tags = &tags
			}

			p, err := cli.Registry.Edit(name, upd)
			if err != nil {
				return err
			}

			if strict {
				if err := p.Validate(); err != nil {
					fmt.Printf("Warning: profile is now invalid: %v\n", err)
				}
			}

			fmt.Printf("Updated SSH profile %q (%s)\n", p.Name, p.Target())
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "SSH host")
	cmd.Flags().StringVar(&username, "username", "", "SSH username")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "SSH port")
	cmd.Flags().StringVarP(&identity, "identity", "i", "", "Private key path")
	cmd.Flags().StringVarP(&jumpHost, "jump", "j", "", "Jump host (user@host[:port])")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag (repeatable, replaces the tag list)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Warn if the edited profile fails validation")

	return cmd
}
