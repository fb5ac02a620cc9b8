package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for govol.

To load completions:

Bash:

  $ source <(govol completion bash)

  To load completions for each session, execute once:
  Linux:
    $ govol completion bash > /etc/bash_completion.d/govol
  macOS:
    $ govol completion bash > /usr/local/etc/bash_completion.d/govol

Zsh:

  If shell completion is not already enabled in your environment,
  you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
  $ govol completion zsh > "${fpath[1]}/_govol"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ govol completion fish | source

  To load completions for each session, execute once:
  $ govol completion fish > ~/.config/fish/completions/govol.fish
`,
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
		return fmt.Errorf("unsupported shell %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeModelFile offers model files for the first positional argument
func completeModelFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return []string{"stl", "3mf", "scad"}, cobra.ShellCompDirectiveFilterFileExt
}
