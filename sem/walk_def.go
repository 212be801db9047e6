package sem

import (
	"blinkc/ast"
	"blinkc/typing"
)

// walkItems types each top-level item.  Imports and nested module definitions
// are dropped: neither contributes typed output.
func (w *Walker) walkItems(items []ast.Item) []TypedItem {
	var typed []TypedItem
	for _, item := range items {
		switch v := item.(type) {
		case *ast.ComponentDef:
			typed = append(typed, w.walkComponent(v))
		case *ast.RuleDef:
			typed = append(typed, w.walkRule(v))
		case *ast.FuncDef:
			typed = append(typed, w.walkFunction(v))
		case *ast.TrackerDef:
			typed = append(typed, w.walkTracker(v))
		case *ast.EntityDef:
			typed = append(typed, w.walkEntity(v))
		}
	}

	return typed
}

func (w *Walker) walkComponent(comp *ast.ComponentDef) *TypedComponent {
	fields := make([]*TypedField, len(comp.Fields))
	for i, f := range comp.Fields {
		fields[i] = &TypedField{
			Name:     f.Name,
			Type:     typing.FromTypeExpr(f.Type),
			Optional: f.Optional,
		}
	}

	return &TypedComponent{Name: comp.Name, Fields: fields}
}

// walkRule types a rule.  Rule scopes are seeded with the two implicit
// entity-id bindings `event` and `entity`; the `when` guard sees them too.
func (w *Walker) walkRule(rule *ast.RuleDef) *TypedRule {
	w.pushScope()
	defer w.popScope()

	w.define("event", typing.PrimType(typing.PrimEntityID))
	w.define("entity", typing.PrimType(typing.PrimEntityID))

	var condition *TypedExpr
	if rule.Condition != nil {
		condition = w.walkExpr(rule.Condition)
	}

	return &TypedRule{
		Name:         rule.Name,
		TriggerEvent: rule.TriggerEvent,
		Condition:    condition,
		Priority:     rule.Priority,
		Body:         w.walkBlock(rule.Body),
	}
}

func (w *Walker) walkFunction(fn *ast.FuncDef) *TypedFunction {
	w.pushScope()
	defer w.popScope()

	params := w.defineParams(fn.Params)

	return &TypedFunction{
		Name:   fn.Name,
		Params: params,
		Return: returnTypeOf(fn.ReturnType),
		Body:   w.walkBlock(fn.Body),
	}
}

// defineParams binds a parameter list into the current scope and returns the
// typed parameters.
func (w *Walker) defineParams(params []*ast.ParamDef) []*TypedParam {
	typed := make([]*TypedParam, len(params))
	for i, p := range params {
		typ := typing.FromTypeExpr(p.Type)
		w.define(p.Name, typ)

		typed[i] = &TypedParam{Name: p.Name, Type: typ}
	}

	return typed
}

func (w *Walker) walkTracker(tracker *ast.TrackerDef) *TypedTracker {
	if _, ok := w.symbols.GetComponent(tracker.Component); !ok {
		w.error(&UndefinedComponentError{Name: tracker.Component})
	}

	return &TypedTracker{Component: tracker.Component, Event: tracker.Event}
}

// walkEntity types an entity declaration.  Component initializers are typed
// in an empty scope: entity data must not reference rule or function
// bindings.
func (w *Walker) walkEntity(entity *ast.EntityDef) *TypedEntity {
	w.pushScope()
	components := w.walkComponentInits(entity.Components)
	w.popScope()

	boundFuncs := make([]*TypedBoundFunction, len(entity.BoundFunctions))
	for i, bf := range entity.BoundFunctions {
		boundFuncs[i] = w.walkBoundFunction(bf)
	}

	return &TypedEntity{
		Variable:       entity.Variable,
		Components:     components,
		BoundFunctions: boundFuncs,
	}
}

func (w *Walker) walkBoundFunction(fn *ast.BoundFuncDef) *TypedBoundFunction {
	w.pushScope()
	defer w.popScope()

	params := w.defineParams(fn.Params)

	return &TypedBoundFunction{
		Name:   fn.Name,
		Params: params,
		Return: returnTypeOf(fn.ReturnType),
		Body:   w.walkBlock(fn.Body),
	}
}

// walkComponentInits types a component initializer list, checking that every
// referenced component is declared.  Field initializers are not checked
// against the component's declared fields.
func (w *Walker) walkComponentInits(inits []*ast.ComponentInit) []*TypedComponentInit {
	typed := make([]*TypedComponentInit, len(inits))
	for i, ci := range inits {
		if _, ok := w.symbols.GetComponent(ci.Name); !ok {
			w.error(&UndefinedComponentError{Name: ci.Name})
		}

		fields := make([]*TypedFieldInit, len(ci.Fields))
		for j, f := range ci.Fields {
			fields[j] = &TypedFieldInit{Name: f.Name, Value: w.walkExpr(f.Value)}
		}

		typed[i] = &TypedComponentInit{Name: ci.Name, Fields: fields}
	}

	return typed
}
