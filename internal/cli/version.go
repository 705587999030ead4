package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/version"
)

// newVersionCmd creates the version command.
func (cli *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version has no use for a loaded registry.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			info := version.Get()
			return NewOutputWriter(format).Write(info, func() {
				fmt.Println(info.String())
			})
		},
	}
}
