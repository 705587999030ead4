package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command.
func (cli *CLI) newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sshm.

To load completions:

Bash:
  $ source <(sshm completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ sshm completion bash > /etc/bash_completion.d/sshm
  # macOS:
  $ sshm completion bash > $(brew --prefix)/etc/bash_completion.d/sshm

Zsh:
  $ sshm completion zsh > "${fpath[1]}/_sshm"
  # You may need to start a new shell for this to take effect.

Fish:
  $ sshm completion fish | source
  # To load completions for each session, execute once:
  $ sshm completion fish > ~/.config/fish/completions/sshm.fish

PowerShell:
  PS> sshm completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
