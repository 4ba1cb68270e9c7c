// Command langfront is the thin CLI adapter around the core pipeline:
// it builds a Session (internal/project), drives
// lex -> parse -> resolve -> lower -> check, and renders the resulting
// diagnostics (internal/diagfmt). It is not part of the core itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"langfront/internal/diag"
	"langfront/internal/diagfmt"
	"langfront/internal/source"
)

const toolVersion = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "langfront",
	Short: "langfront compiles and inspects a source package",
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", diag.DefaultMaxDiagnostics, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("verbose", false, "log module discovery to stderr")

	rootCmd.AddCommand(tokenizeCmd, parseCmd, checkCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// renderAndExit prints bag (if non-empty) to stderr and, when it holds
// an error-severity diagnostic, prints a one-line summary and exits
// non-zero, per spec.md §6's exit-code rule.
func renderAndExit(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	bag.SortBySeverityThenPosition()
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd),
			Context:   1,
			PathMode:  source.PathRelative,
			ShowNotes: true,
		})
	}
	if bag.HasErrors() {
		errs, warns, infos := bag.Counts()
		fmt.Fprintf(os.Stderr, "\n%d error(s), %d warning(s), %d info(s)\n", errs, warns, infos)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the langfront version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "langfront %s\n", toolVersion)
		return nil
	},
}
