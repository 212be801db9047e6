package sem

import (
	"blinkc/ast"
	"blinkc/typing"
)

// Walker performs semantic analysis over one module.  It accumulates every
// error it finds instead of stopping at the first: unresolved names type as
// Unknown and traversal continues, so a single analysis pass reports all
// discoverable faults.
type Walker struct {
	// symbols is the symbol table being populated and consulted.
	symbols *SymbolTable

	// errors is the accumulated list of semantic errors.
	errors []Error

	// scopes is the stack of lexical scopes, innermost last.
	scopes []map[string]typing.Type
}

// Analyze performs semantic analysis on a parsed module.  It always returns a
// complete typed module; the module is valid exactly when the returned error
// slice is empty.
func Analyze(mod *ast.Module) (*TypedModule, []Error) {
	symbols := NewSymbolTable()
	defineBuiltins(symbols)

	w := &Walker{symbols: symbols}

	// First pass: collect all definitions so forward references resolve.
	w.collectDefinitions(mod)

	// Second pass: type-checked traversal.
	items := w.walkItems(mod.Items)

	return &TypedModule{Items: items, Symbols: symbols}, w.errors
}

// collectDefinitions registers every component, function, and tracker
// definition before any body is typed.
func (w *Walker) collectDefinitions(mod *ast.Module) {
	for _, item := range mod.Items {
		switch v := item.(type) {
		case *ast.ComponentDef:
			fields := make(map[string]typing.Type)
			for _, field := range v.Fields {
				fields[field.Name] = typing.FromTypeExpr(field.Type)
			}

			w.symbols.AddComponent(v.Name, fields)
		case *ast.FuncDef:
			params := make([]FunctionParam, len(v.Params))
			for i, p := range v.Params {
				params[i] = FunctionParam{Name: p.Name, Type: typing.FromTypeExpr(p.Type)}
			}

			w.symbols.AddFunction(v.Name, params, returnTypeOf(v.ReturnType))
		case *ast.TrackerDef:
			w.symbols.AddTracker(v.Component, v.Event)
		}
	}
}

// returnTypeOf resolves an optional return annotation, defaulting to Void.
func returnTypeOf(expr ast.TypeExpr) typing.Type {
	if expr == nil {
		return typing.PrimType(typing.PrimVoid)
	}

	return typing.FromTypeExpr(expr)
}

// error records a semantic error without interrupting traversal.
func (w *Walker) error(err Error) {
	w.errors = append(w.errors, err)
}

// -----------------------------------------------------------------------------

// pushScope opens a new innermost lexical scope.
func (w *Walker) pushScope() {
	w.scopes = append(w.scopes, make(map[string]typing.Type))
}

// popScope closes the innermost lexical scope.
func (w *Walker) popScope() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// define binds a name in the innermost scope.
func (w *Walker) define(name string, typ typing.Type) {
	w.scopes[len(w.scopes)-1][name] = typ
}

// lookup resolves a name against the scope stack, innermost first.
func (w *Walker) lookup(name string) (typing.Type, bool) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if typ, ok := w.scopes[i][name]; ok {
			return typ, true
		}
	}

	return nil, false
}
