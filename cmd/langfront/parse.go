package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"langfront/internal/ast"
	"langfront/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [package-dir]",
	Short: "parse a package's source tree and print its item counts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var itemKindNames = map[ast.ItemKind]string{
	ast.ItemProc:   "proc",
	ast.ItemEnum:   "enum",
	ast.ItemUnion:  "union",
	ast.ItemStruct: "struct",
	ast.ItemConst:  "const",
	ast.ItemGlobal: "global",
	ast.ItemImport: "import",
}

func runParse(cmd *cobra.Command, args []string) error {
	sess, bag, err := loadSession(cmd.Root().PersistentFlags(), packageDir(args))
	if err != nil {
		return err
	}

	files := make([]source.FileID, 0, len(sess.Tree.Modules))
	for file := range sess.Tree.Modules {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool {
		return sess.Files.Get(files[i]).Path < sess.Files.Get(files[j]).Path
	})

	for _, file := range files {
		mod := sess.Tree.Modules[file]
		counts := map[ast.ItemKind]int{}
		for _, id := range mod.Items {
			counts[sess.Tree.Items.Get(id).Kind]++
		}
		f := sess.Files.Get(file)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d item(s)", f.FormatPath(source.PathRelative, sess.Files.BaseDir()), len(mod.Items))
		for kind, name := range itemKindNames {
			if n := counts[kind]; n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " %s=%d", name, n)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	renderAndExit(cmd, bag, sess.Files)
	return nil
}
