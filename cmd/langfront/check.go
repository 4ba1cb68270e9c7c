package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [package-dir]",
	Short: "run the full pipeline (resolve, lower, type-check) and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, bag, err := loadSession(cmd.Root().PersistentFlags(), packageDir(args))
	if err != nil {
		return err
	}

	result := runPipeline(sess, bag)
	if !bag.HasErrors() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d proc(s), %d enum(s), %d union(s), %d struct(s), %d const(s), %d global(s)\n",
			sess.Manifest.Name, result.tables.Procs.Len(), result.tables.Enums.Len(), result.tables.Unions.Len(),
			result.tables.Structs.Len(), result.tables.Consts.Len(), result.tables.Globals.Len())
	}

	renderAndExit(cmd, bag, sess.Files)
	return nil
}
