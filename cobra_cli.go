package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
lazydocs converts a docstring-annotated Python module into rendered
documentation. It walks the module's classes and methods (plus any public
sibling modules it imports) and writes three files into the output folder:

  • docs.tex     — a LaTeX fragment using \classname / \methodname commands
  • docs.md      — a Markdown document
  • classes.dot  — a Graphviz class-relationship diagram

Docstrings follow a small semi-formal grammar: narrative paragraphs,
*-prefixed bullet lists, and the named sections "Parameters:", "Examples:"
and "Raises:". Narrative text is folded and translated per format; section
tails pass through verbatim.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "lazydocs [flags] <file.py>",
		Short:         "Generate LaTeX, Markdown and Graphviz docs from a Python module",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outDir, "out", "o", "", "output folder for generated files (must exist; default current directory)")
	flags.StringVar(&app.opts.markersPath, "markers", "", "YAML file mapping class names to section titles")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(args[0])
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	cmd.AddCommand(newServeCmd())
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for lazydocs.

The output should be evaluated by your shell. For example:

  # bash
  lazydocs completion bash > /usr/local/etc/bash_completion.d/lazydocs

  # zsh
  lazydocs completion zsh > "${fpath[1]}/_lazydocs"

  # fish
  lazydocs completion fish | source

  # PowerShell
  lazydocs completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  lazydocs gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
