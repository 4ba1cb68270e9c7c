package hir_test

import (
	"testing"

	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/hir"
	"langfront/internal/lexer"
	"langfront/internal/parser"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// testPackage builds a small multi-file package from (path, source)
// pairs, in order (the first pair's file is the root module), runs name
// resolution, and lowers the result into HIR Tables.
type testPackage struct {
	interner *source.Interner
	tree     *ast.Tree
	table    *symbols.Table
	root     symbols.ScopeID
	tables   *hir.Tables
	bag      *diag.Bag
}

func buildPackage(t *testing.T, files ...[2]string) *testPackage {
	t.Helper()
	fs := source.NewFileSet()
	interner := source.NewInterner()
	bag := diag.NewBag()
	b := ast.NewBuilder(ast.Hints{}, interner)

	var rootID source.FileID
	for i, f := range files {
		path, src := f[0], f[1]
		id := fs.AddVirtual(path, []byte(src))
		file := fs.Get(id)
		stream := lexer.Lex(file, interner, lexer.Options{Reporter: bag})
		parser.ParseFile(file, stream, b, parser.Options{Reporter: bag})
		if i == 0 {
			rootID = id
		}
	}

	res := symbols.Discover(fs, b.Tree, interner, rootID, bag)
	symbols.ResolveImports(b.Tree, res.Table, interner, res.Root, res.Pending, bag)

	tables := hir.Lower(b.Tree, res.Table, interner, res.Root, bag)

	return &testPackage{
		interner: interner, tree: b.Tree, table: res.Table, root: res.Root,
		tables: tables, bag: bag,
	}
}

func (p *testPackage) procNamed(t *testing.T, name string) *hir.ProcData {
	t.Helper()
	symID, ok := p.table.Lookup(p.root, p.interner.Intern(name))
	if !ok {
		t.Fatalf("no symbol named %q in root scope", name)
	}
	ref, ok := p.tables.BySymbol[symID]
	if !ok || ref.Kind != hir.ItemRefProc {
		t.Fatalf("%q did not lower to a proc", name)
	}
	return p.tables.Procs.Get(uint32(ref.Proc))
}

func (p *testPackage) structNamed(t *testing.T, name string) *hir.StructData {
	t.Helper()
	symID, ok := p.table.Lookup(p.root, p.interner.Intern(name))
	if !ok {
		t.Fatalf("no symbol named %q in root scope", name)
	}
	ref, ok := p.tables.BySymbol[symID]
	if !ok || ref.Kind != hir.ItemRefStruct {
		t.Fatalf("%q did not lower to a struct", name)
	}
	return p.tables.Structs.Get(uint32(ref.Struct))
}

func (p *testPackage) enumNamed(t *testing.T, name string) *hir.EnumData {
	t.Helper()
	symID, ok := p.table.Lookup(p.root, p.interner.Intern(name))
	if !ok {
		t.Fatalf("no symbol named %q in root scope", name)
	}
	ref, ok := p.tables.BySymbol[symID]
	if !ok || ref.Kind != hir.ItemRefEnum {
		t.Fatalf("%q did not lower to an enum", name)
	}
	return p.tables.Enums.Get(uint32(ref.Enum))
}

func TestLowerProcSignature(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `proc add(a: s32, b: s32) -> s32 { return a + b; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	proc := p.procNamed(t, "add")
	if len(proc.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(proc.Params))
	}
	if proc.Params[0].Type.Tag != hir.TyBasic || proc.Params[0].Type.Basic != hir.BasicS32 {
		t.Fatalf("expected param 0 to be s32, got %v", proc.Params[0].Type)
	}
	if proc.Return.Tag != hir.TyBasic || proc.Return.Basic != hir.BasicS32 {
		t.Fatalf("expected return type s32, got %v", proc.Return)
	}
}

func TestLowerProcNoReturnTypeIsUnit(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `proc f() {}`})
	proc := p.procNamed(t, "f")
	if proc.Return.Tag != hir.TyUnit {
		t.Fatalf("expected unit return type, got %v", proc.Return)
	}
}

func TestLowerStructFieldTypes(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `struct Point { x: s32; y: &mut s32; tags: []s32; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	s := p.structNamed(t, "Point")
	if len(s.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(s.Fields))
	}
	if s.Fields[0].Type.Tag != hir.TyBasic {
		t.Fatalf("expected field 0 to be a basic type, got %v", s.Fields[0].Type)
	}
	if s.Fields[1].Type.Tag != hir.TyReference || !s.Fields[1].Type.Mut {
		t.Fatalf("expected field 1 to be &mut, got %v", s.Fields[1].Type)
	}
	if s.Fields[2].Type.Tag != hir.TySlice {
		t.Fatalf("expected field 2 to be a slice, got %v", s.Fields[2].Type)
	}
}

func TestLowerStructSelfReferenceViaReference(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `struct Node { next: &Node; value: s32; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	s := p.structNamed(t, "Node")
	next := s.Fields[0].Type
	if next.Tag != hir.TyReference || next.Inner.Tag != hir.TyNamed || next.Inner.NamedKind != hir.NamedStruct {
		t.Fatalf("expected next: &Node, got %v", next)
	}
}

func TestLowerEnumSequentialDiscriminants(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `enum Color s32 { Red = 5; Green; Blue = 1; Yellow; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	e := p.enumNamed(t, "Color")
	if len(e.Variants) != 4 {
		t.Fatalf("expected 4 variants, got %d", len(e.Variants))
	}
	want := []int64{5, 6, 1, 2}
	for i, w := range want {
		slot := p.tables.ConstExpr(e.Variants[i].Value)
		if slot == nil || slot.State != hir.ConstExprResolved || slot.Value != w {
			t.Fatalf("variant %d: expected resolved value %d, got %+v", i, w, slot)
		}
	}
}

func TestLowerArrayLengthResolvesAgainstConst(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `const SIZE: s32 = 4; struct Buf { data: [SIZE]s32; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	s := p.structNamed(t, "Buf")
	arr := s.Fields[0].Type
	if arr.Tag != hir.TyArray {
		t.Fatalf("expected an array type, got %v", arr)
	}
	slot := p.tables.ConstExpr(arr.ArrayLen)
	if slot == nil || slot.State != hir.ConstExprResolved || slot.Value != 4 {
		t.Fatalf("expected array length to resolve to 4, got %+v", slot)
	}
}

func TestLowerArrayLengthArithmetic(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `struct Buf { data: [2 + 3]s32; }`})
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	s := p.structNamed(t, "Buf")
	slot := p.tables.ConstExpr(s.Fields[0].Type.ArrayLen)
	if slot == nil || slot.State != hir.ConstExprResolved || slot.Value != 5 {
		t.Fatalf("expected array length to resolve to 5, got %+v", slot)
	}
}

func TestLowerCyclicConstDependencyIsDiagnosed(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `const A: s32 = B; const B: s32 = A; struct S { data: [A]s32; }`})
	found := false
	for _, d := range p.bag.Items() {
		if d.Code == diag.TypeCyclicConstDep {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a cyclic constant dependency diagnostic among %v", p.bag.Items())
	}
}

func TestLowerNamedTypeAcrossImport(t *testing.T) {
	p := buildPackage(t,
		[2]string{"/pkg/main.lang", `import shapes.{Circle}; struct Scene { c: Circle; }`},
		[2]string{"/pkg/shapes.lang", `pub struct Circle { radius: s32; }`},
	)
	if p.bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.bag.Items())
	}
	scene := p.structNamed(t, "Scene")
	field := scene.Fields[0].Type
	if field.Tag != hir.TyNamed || field.NamedKind != hir.NamedStruct {
		t.Fatalf("expected c: Circle to lower to a named struct type, got %v", field)
	}
	if field.StructID == hir.NoStructID {
		t.Fatalf("expected a resolved struct ID for the imported Circle type")
	}
	circle := p.tables.Structs.Get(uint32(field.StructID))
	if got := p.interner.MustLookup(circle.Name); got != "Circle" {
		t.Fatalf("expected c's struct to be Circle, got %q", got)
	}
}

func TestTypeEqualBasics(t *testing.T) {
	if !hir.Equal(hir.Basic(hir.BasicS32), hir.Basic(hir.BasicS32)) {
		t.Fatalf("expected s32 == s32")
	}
	if hir.Equal(hir.Basic(hir.BasicS32), hir.Basic(hir.BasicU32)) {
		t.Fatalf("expected s32 != u32")
	}
}

func TestTypeEqualReferenceMutability(t *testing.T) {
	a := hir.Reference(true, hir.Basic(hir.BasicS32))
	b := hir.Reference(false, hir.Basic(hir.BasicS32))
	if hir.Equal(a, b) {
		t.Fatalf("expected &mut s32 != &s32")
	}
	c := hir.Reference(true, hir.Basic(hir.BasicS32))
	if !hir.Equal(a, c) {
		t.Fatalf("expected &mut s32 == &mut s32")
	}
}

func TestTypeEqualErrorUnifiesWithAnything(t *testing.T) {
	if !hir.Equal(hir.Error, hir.Basic(hir.BasicBool)) {
		t.Fatalf("expected the error type to unify with bool")
	}
}

func TestTypeEqualArrayIgnoresLength(t *testing.T) {
	a := hir.Array(hir.Basic(hir.BasicS32), hir.ConstExprID(1))
	b := hir.Array(hir.Basic(hir.BasicS32), hir.ConstExprID(2))
	if !hir.Equal(a, b) {
		t.Fatalf("expected arrays to compare equal regardless of length const-expr")
	}
}

func TestLowerGlobalMutability(t *testing.T) {
	p := buildPackage(t, [2]string{"/pkg/main.lang", `global mut counter: s32 = 0;`})
	symID, ok := p.table.Lookup(p.root, p.interner.Intern("counter"))
	if !ok {
		t.Fatalf("expected `counter` to be declared")
	}
	ref, ok := p.tables.BySymbol[symID]
	if !ok || ref.Kind != hir.ItemRefGlobal {
		t.Fatalf("expected counter to lower to a global")
	}
	g := p.tables.Globals.Get(uint32(ref.Global))
	if !g.Mut {
		t.Fatalf("expected counter to be mutable")
	}
	if g.Type.Tag != hir.TyBasic || g.Type.Basic != hir.BasicS32 {
		t.Fatalf("expected counter: s32, got %v", g.Type)
	}
}
