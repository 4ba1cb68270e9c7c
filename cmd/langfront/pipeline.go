package main

import (
	"fmt"
	"os"

	"langfront/internal/diag"
	"langfront/internal/hir"
	"langfront/internal/project"
	"langfront/internal/sema"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// pipelineResult holds every stage's output that a subcommand might want
// to inspect or render.
type pipelineResult struct {
	session *project.Session
	tables  *hir.Tables
	bag     *diag.Bag
}

// loadSession resolves the package at dir and reports any manifest/
// filesystem error directly (these are not diag.Diagnostic-worthy: the
// session couldn't even be built).
func loadSession(cmd cobraFlagsReader, dir string) (*project.Session, *diag.Bag, error) {
	maxDiag, err := cmd.GetInt("max-diagnostics")
	if err != nil {
		return nil, nil, err
	}
	verbose, err := cmd.GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}
	bag := diag.NewBagWithLimit(maxDiag)
	sess, err := project.Load(dir, verbose, bag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package at %s: %w", dir, err)
	}
	return sess, bag, nil
}

// runPipeline drives Session -> ScopeGraph -> DeclPass -> TypeCheck,
// matching spec.md §5's data-flow line. Name resolution and lowering
// continue even when earlier errors exist, per spec.md §7's propagation
// policy, but HIR is only meaningful once the caller checks bag.HasErrors.
func runPipeline(sess *project.Session, bag *diag.Bag) *pipelineResult {
	res := symbols.Discover(sess.Files, sess.Tree, sess.Interner, sess.RootFile, bag)
	symbols.ResolveImports(sess.Tree, res.Table, sess.Interner, res.Root, res.Pending, bag)
	symbols.CheckMainProc(sess.Tree, res.Table, sess.Interner, res.Root, source.Span{File: sess.RootFile}, sess.Manifest.IsBinary(), bag)

	tables := hir.Lower(sess.Tree, res.Table, sess.Interner, res.Root, bag)
	sema.Check(sess.Tree, tables, res.Table, sess.Interner, res.Root, bag)

	return &pipelineResult{session: sess, tables: tables, bag: bag}
}

// cobraFlagsReader is the subset of *pflag.FlagSet / *cobra.Command the
// pipeline helpers need, so tests can supply a fake.
type cobraFlagsReader interface {
	GetInt(name string) (int, error)
	GetBool(name string) (bool, error)
}

func packageDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
