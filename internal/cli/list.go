package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// ProfileListOutput represents the profile list for JSON output.
type ProfileListOutput struct {
	Total    int              `json:"total"`
	Profiles []profile.Record `json:"profiles"`
}

// newListCmd creates the list command.
func (cli *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all SSH profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runList(format)
		},
	}
}

// runList displays all profiles.
func (cli *CLI) runList(format OutputFormat) error {
	output := NewOutputWriter(format)
	profiles := cli.Registry.List()

	records := make([]profile.Record, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, p.ToRecord())
	}
	listOutput := ProfileListOutput{Total: len(profiles), Profiles: records}

	if len(profiles) == 0 {
		return output.Write(listOutput, func() {
			fmt.Println("No SSH profiles configured.")
			fmt.Println()
			fmt.Println("Add your first profile with: sshm add <name> <host> <username>")
		})
	}

	return output.Write(listOutput, func() {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTARGET\tKEY\tJUMP\tTAGS\tUSED")

		for _, p := range profiles {
			key := "-"
			if p.PrivateKeyPath != "" {
				key = p.PrivateKeyPath
			}
			jump := "-"
			if p.JumpHost != "" {
				jump = p.JumpHost
			}
			tags := "-"
			if len(p.Tags) > 0 {
				tags = strings.Join(p.Tags, ",")
			}
			used := "never"
			if p.UseCount > 0 {
				used = fmt.Sprintf("%d times", p.UseCount)
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.Name, p.Target(), key, jump, tags, used)
		}

		// #nosec G104 - Flush error on stdout; the user will see incomplete output
		_ = w.Flush()
	})
}
