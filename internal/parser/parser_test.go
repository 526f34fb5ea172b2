package parser_test

import (
	"testing"

	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/lexer"
	"github.com/BluPerf/swift/internal/parser"
	"github.com/BluPerf/swift/internal/sema"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

type fixture struct {
	names  *source.Interner
	types  *types.Interner
	ctx    *ast.Context
	binder *sema.Binder
	bag    *diag.Bag
	unit   ast.UnitID
}

func bind(t *testing.T, src string, opts sema.Options) *fixture {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.swift", []byte(src))

	f := &fixture{
		names: source.NewInterner(),
		types: types.NewInterner(),
		ctx:   ast.NewContext(ast.Hints{}),
		bag:   diag.NewBag(0),
	}
	reporter := diag.BagReporter{Bag: f.bag}
	f.binder = sema.NewBinder(f.ctx, f.names, f.types, reporter, opts)

	lx := lexer.New(fs.Get(fileID), lexer.Options{
		Reporter: reporter,
		Interner: f.names,
	})
	res := parser.ParseUnit(lx, f.binder, parser.Options{Reporter: reporter})
	f.unit = res.Unit
	return f
}

func (f *fixture) overloads(name string) []ast.ValueID {
	return f.binder.TopLevelOverloads(f.names.Intern(name))
}

func (f *fixture) requireClean(t *testing.T) {
	t.Helper()
	if f.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", f.bag.Items())
	}
}

func (f *fixture) requireOneError(t *testing.T, code diag.Code) diag.Diagnostic {
	t.Helper()
	if f.bag.Len() != 1 {
		t.Fatalf("diagnostics = %+v, want exactly one", f.bag.Items())
	}
	d := f.bag.Items()[0]
	if d.Code != code {
		t.Fatalf("code = %v, want %v", d.Code, code)
	}
	return d
}

func TestVarDeclBinds(t *testing.T) {
	f := bind(t, "var x : Int = 4", sema.Options{})
	f.requireClean(t)

	set := f.overloads("x")
	if len(set) != 1 {
		t.Fatalf("overload set for x = %v, want one entry", set)
	}
	vd := f.ctx.Value(set[0])
	if vd.Kind != ast.ValueVar {
		t.Errorf("kind = %v, want ValueVar", vd.Kind)
	}
	if vd.Type != f.types.Builtins().Int {
		t.Errorf("type = %v, want Int", vd.Type)
	}
	if !vd.IsDefinition() {
		t.Error("initialized var should be a definition")
	}

	items := f.ctx.Unit(f.unit).Items
	if len(items) != 1 || f.ctx.Item(items[0]).Kind != ast.ItemValue {
		t.Errorf("unit items = %v", items)
	}
}

func TestVarWithoutAnnotationIsDependent(t *testing.T) {
	f := bind(t, "var x = 4", sema.Options{})
	f.requireClean(t)
	vd := f.ctx.Value(f.overloads("x")[0])
	if vd.Type != f.types.Builtins().Dependent {
		t.Errorf("type = %v, want the dependent placeholder", vd.Type)
	}
}

func TestForwardTypeReferenceResolves(t *testing.T) {
	f := bind(t, `
var p : Point
typealias Point = Int
`, sema.Options{})
	f.requireClean(t)
	if pending := f.ctx.Unit(f.unit).Unresolved; len(pending) != 0 {
		t.Errorf("pending aliases = %v, want none", pending)
	}
}

func TestAliasChainAcrossForwardReferences(t *testing.T) {
	f := bind(t, `
typealias A = B
typealias B = Int
`, sema.Options{})
	f.requireClean(t)
	if pending := f.ctx.Unit(f.unit).Unresolved; len(pending) != 0 {
		t.Errorf("pending aliases = %v, want none", pending)
	}
}

func TestUndeclaredTypeReachesUnit(t *testing.T) {
	f := bind(t, "var p : Missing", sema.Options{})
	f.requireClean(t) // binding itself stays quiet; reporting is downstream

	pending := f.ctx.Unit(f.unit).Unresolved
	if len(pending) != 1 {
		t.Fatalf("pending aliases = %v, want one", pending)
	}
	d := f.ctx.Alias(pending[0])
	if d.IsResolved() {
		t.Error("pending alias is marked resolved")
	}
	if got, _ := f.names.Lookup(d.Name); got != "Missing" {
		t.Errorf("pending alias name = %q, want Missing", got)
	}
}

func TestTypealiasRedefinition(t *testing.T) {
	f := bind(t, `
typealias A = Int
typealias A = Bool
`, sema.Options{})
	d := f.requireOneError(t, diag.SemaTypeRedefinition)
	if d.Message != "redefinition of type named 'A'" {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration here" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestOperatorOverloadsCoexist(t *testing.T) {
	f := bind(t, `
@infix(100) func + (a : Int, b : Int) -> Int;
@infix(100) func + (a : Double, b : Double) -> Double;
`, sema.Options{})
	f.requireClean(t)

	set := f.overloads("+")
	if len(set) != 2 {
		t.Fatalf("overload set = %v, want two entries", set)
	}
	for _, id := range set {
		vd := f.ctx.Value(id)
		if vd.Kind != ast.ValueFunc || vd.Infix != 100 {
			t.Errorf("overload %d: kind=%v infix=%d", id, vd.Kind, vd.Infix)
		}
		if vd.IsDefinition() {
			t.Errorf("bodyless func %d should be a declaration", id)
		}
	}
}

func TestInfixPrecedenceMismatch(t *testing.T) {
	f := bind(t, `
@infix(100) func + (a : Int, b : Int) -> Int;
@infix(90) func + (a : Double, b : Double) -> Double;
`, sema.Options{})
	d := f.requireOneError(t, diag.SemaOverloadIncompatible)
	if d.Message != "infix precedence of functions in an overload set must match" {
		t.Errorf("message = %q", d.Message)
	}
	if set := f.overloads("+"); len(set) != 1 {
		t.Errorf("mismatched overload not discarded: %v", set)
	}
}

func TestLocalRedefinition(t *testing.T) {
	f := bind(t, "func f() { var x = 1; var x = 2; }", sema.Options{})
	d := f.requireOneError(t, diag.SemaValueRedefinition)
	if d.Message != "definition conflicts with previous value" {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous definition here" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestParamRedefinedByLocal(t *testing.T) {
	f := bind(t, "func f(x : Int) { var x = 1 }", sema.Options{})
	d := f.requireOneError(t, diag.SemaValueRedefinition)
	// the previous declaration is the parameter, which has no initializer
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration here" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestShadowingInNestedBlockIsAllowed(t *testing.T) {
	f := bind(t, `
func f() {
	var x = 1
	if x {
		var x = 2
		x
	}
	while x {
		var x = 3
	}
}
`, sema.Options{})
	f.requireClean(t)
}

func TestLocalReferencesBind(t *testing.T) {
	f := bind(t, "func f() { var x = 1; x + 2; }", sema.Options{})
	f.requireClean(t)

	xName := f.names.Intern("x")
	var bound int
	for _, e := range f.ctx.Exprs.Slice() {
		if e.Kind == ast.ExprIdent && e.Name == xName {
			if e.Decl == ast.NoValueID {
				t.Error("reference to local x left unbound")
			}
			bound++
		}
	}
	if bound != 1 {
		t.Errorf("found %d references to x, want 1", bound)
	}
}

func TestTopLevelReferencesStayUnbound(t *testing.T) {
	f := bind(t, `
var g = 1
func f() { g; }
`, sema.Options{})
	f.requireClean(t)

	gName := f.names.Intern("g")
	for _, e := range f.ctx.Exprs.Slice() {
		if e.Kind == ast.ExprIdent && e.Name == gName && e.Decl != ast.NoValueID {
			t.Error("top-level reference bound eagerly; overload sets are downstream work")
		}
	}
}

func TestRecursiveFuncBindsItself(t *testing.T) {
	f := bind(t, `
func f() {
	func g() { g(); }
}
`, sema.Options{})
	f.requireClean(t)

	gName := f.names.Intern("g")
	var bound bool
	for _, e := range f.ctx.Exprs.Slice() {
		if e.Kind == ast.ExprIdent && e.Name == gName && e.Decl != ast.NoValueID {
			bound = true
		}
	}
	if !bound {
		t.Error("recursive reference to g did not bind")
	}
}

func TestRequireTopLevelTypes(t *testing.T) {
	f := bind(t, "var x = 4", sema.Options{RequireTopLevelTypes: true})
	d := f.requireOneError(t, diag.SemaTopLevelTypeMissing)
	if d.Message != "top level declarations require a type specifier" {
		t.Errorf("message = %q", d.Message)
	}
	vd := f.ctx.Value(f.overloads("x")[0])
	if vd.Type != f.types.Builtins().EmptyTuple {
		t.Errorf("recovery type = %v, want the empty tuple", vd.Type)
	}
}

func TestSyntaxErrorRecovery(t *testing.T) {
	f := bind(t, `
var = 4
var y = 2
`, sema.Options{})
	if !f.bag.HasErrors() {
		t.Fatal("missing identifier did not produce an error")
	}
	if set := f.overloads("y"); len(set) != 1 {
		t.Errorf("binding did not recover after the bad decl: %v", set)
	}
}

func TestUnknownAttribute(t *testing.T) {
	f := bind(t, "@wat func f();", sema.Options{})
	f.requireOneError(t, diag.SynBadAttribute)
	if set := f.overloads("f"); len(set) != 1 {
		t.Errorf("func after bad attribute not bound: %v", set)
	}
}

func TestBlockScopedTypealias(t *testing.T) {
	f := bind(t, `
typealias T = Int
func f() { typealias T = Bool }
`, sema.Options{})
	f.requireClean(t)
}

func TestFunctionTypeAnnotation(t *testing.T) {
	f := bind(t, "var g : (Int, Int) -> Int", sema.Options{})
	f.requireClean(t)
	vd := f.ctx.Value(f.overloads("g")[0])
	if got := f.types.Format(vd.Type, f.names); got != "(Int, Int) -> Int" {
		t.Errorf("annotation type = %q, want (Int, Int) -> Int", got)
	}
}

func TestEmptyUnit(t *testing.T) {
	f := bind(t, "", sema.Options{})
	f.requireClean(t)
	u := f.ctx.Unit(f.unit)
	if len(u.Items) != 0 || len(u.Unresolved) != 0 {
		t.Errorf("empty source produced items=%v pending=%v", u.Items, u.Unresolved)
	}
}

func TestItemOrder(t *testing.T) {
	f := bind(t, `
var a = 1;
typealias T = Int;
var b = 2;
`, sema.Options{})
	f.requireClean(t)
	items := f.ctx.Unit(f.unit).Items
	if len(items) != 3 {
		t.Fatalf("item count = %d, want 3", len(items))
	}
	wantKinds := []ast.ItemKind{ast.ItemValue, ast.ItemTypeAlias, ast.ItemValue}
	for i, want := range wantKinds {
		if got := f.ctx.Item(items[i]).Kind; got != want {
			t.Errorf("item[%d].Kind = %v, want %v", i, got, want)
		}
	}
}
