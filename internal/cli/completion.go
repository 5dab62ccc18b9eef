package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/pkg/forms"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for unitwiz. Form names after --form and
--to-form and the flags of every command complete.

Bash:
  $ source <(unitwiz completion bash)

Zsh (with compinit enabled):
  $ unitwiz completion zsh > "${fpath[1]}/_unitwiz"

Fish:
  $ unitwiz completion fish > ~/.config/fish/completions/unitwiz.fish

PowerShell:
  PS> unitwiz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeForms completes form names from the compiled-in catalog.
func completeForms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, f := range forms.Known() {
		if strings.HasPrefix(f.String(), toComplete) {
			out = append(out, f.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
