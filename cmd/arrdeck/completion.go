package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for arrdeck.

To load completions:

Bash:
  $ source <(arrdeck completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ arrdeck completion bash > /etc/bash_completion.d/arrdeck
  # macOS:
  $ arrdeck completion bash > $(brew --prefix)/etc/bash_completion.d/arrdeck

Zsh:
  $ source <(arrdeck completion zsh)
  # To load completions for each session, execute once:
  $ arrdeck completion zsh > "${fpath[1]}/_arrdeck"

Fish:
  $ arrdeck completion fish | source
  # To load completions for each session, execute once:
  $ arrdeck completion fish > ~/.config/fish/completions/arrdeck.fish

PowerShell:
  PS> arrdeck completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> arrdeck completion powershell > arrdeck.ps1
  # and source this file from your PowerShell profile.
`,
	Annotations:           map[string]string{skipSetup: "true"},
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
