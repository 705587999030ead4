package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// newAddCmd creates the add command.
func (cli *CLI) newAddCmd() *cobra.Command {
	var (
		port        int
		identity    string
		jumpHost    string
		description string
		tags        []string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "add <name> <host> <username>",
		Short: "Add a new SSH profile",
		Long: `Add a new SSH connection profile.

Examples:
  # Minimal profile on the default port
  sshm add prod-web web.example.com deploy

  # Full profile
  sshm add prod-db db.example.com admin \
    --port 5022 --identity ~/.ssh/db --jump bastion@jump.example.com \
    --description "primary database" --tag prod --tag db`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, host, username := args[0], args[1], args[2]

			opts := []profile.Option{profile.WithPort(port)}
			if identity != "" {
				opts = append(opts, profile.WithPrivateKey(identity))
			}
			if jumpHost != "" {
				opts = append(opts, profile.WithJumpHost(jumpHost))
			}
			if description != "" {
				opts = append(opts, profile.WithDescription(description))
			}
			if len(tags) > 0 {
				opts = append(opts, profile.WithTags(tags))
			}

			if strict {
				// Validation is opt-in; the entity itself stays permissive.
				candidate := profile.New(name, host, username, opts...)
				if err := candidate.Validate(); err != nil {
					return err
				}
			}

			p, err := cli.Registry.Add(name, host, username, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("Added SSH profile %q (%s)\n", p.Name, p.Target())
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", profile.DefaultPort, "SSH port")
	cmd.Flags().StringVarP(&identity, "identity", "i", "", "Private key path")
	cmd.Flags().StringVarP(&jumpHost, "jump", "j", "", "Jump host (user@host[:port])")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject invalid hosts and out-of-range ports")

	return cmd
}
