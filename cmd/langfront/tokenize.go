package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langfront/internal/diag"
	"langfront/internal/lexer"
	"langfront/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "lex a single source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	bag := diag.NewBagWithLimit(maxDiag)
	fs := source.NewFileSet()

	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	file := fs.Get(id)
	stream := lexer.Lex(file, source.NewInterner(), lexer.Options{Reporter: bag})

	for i := 0; i < stream.Len(); i++ {
		start, _ := fs.Resolve(stream.Spans[i])
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", start.Line, start.Col, stream.Kinds[i].String())
	}

	renderAndExit(cmd, bag, fs)
	return nil
}
