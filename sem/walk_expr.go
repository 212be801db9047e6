package sem

import (
	"blinkc/ast"
	"blinkc/typing"
)

var (
	unknownType = typing.PrimType(typing.PrimUnknown)
	booleanType = typing.PrimType(typing.PrimBoolean)
	entityIDTyp = typing.PrimType(typing.PrimEntityID)
)

// walkExpr types one expression.  Unresolvable subexpressions type as
// Unknown after recording an error; the walk itself never fails.
func (w *Walker) walkExpr(expr ast.Expr) *TypedExpr {
	switch v := expr.(type) {
	case *ast.Literal:
		return &TypedExpr{Kind: &KLiteral{Lit: v}, Type: literalType(v)}
	case *ast.Identifier:
		return w.walkIdentifier(v)
	case *ast.EntityRef:
		return &TypedExpr{Kind: &KEntityRef{Name: v.Name}, Type: entityIDTyp}
	case *ast.FieldAccess:
		return w.walkFieldAccess(v)
	case *ast.IndexAccess:
		base := w.walkExpr(v.Base)
		index := w.walkExpr(v.Index)

		elemType := typing.Type(unknownType)
		if lt, ok := base.Type.(*typing.ListType); ok {
			elemType = lt.Elem
		}

		return &TypedExpr{
			Kind: &KIndexAccess{Base: base, Index: index},
			Type: elemType,
		}
	case *ast.BinaryOp:
		return w.walkBinary(v)
	case *ast.UnaryOp:
		operand := w.walkExpr(v.Operand)

		resultType := operand.Type
		if v.Op == ast.UnaryNot {
			resultType = booleanType
		}

		return &TypedExpr{
			Kind: &KUnary{Op: v.Op, Operand: operand},
			Type: resultType,
		}
	case *ast.Call:
		return w.walkCall(v)
	case *ast.MethodCall:
		base := w.walkExpr(v.Base)
		args := w.walkExprs(v.Args)

		// Method return types are not modeled.
		return &TypedExpr{
			Kind: &KMethodCall{Base: base, Method: v.Method, Args: args},
			Type: unknownType,
		}
	case *ast.HasComponent:
		base := w.walkExpr(v.Base)

		if _, ok := w.symbols.GetComponent(v.Component); !ok {
			w.error(&UndefinedComponentError{Name: v.Component})
		}

		return &TypedExpr{
			Kind: &KHasComponent{Base: base, Component: v.Component},
			Type: booleanType,
		}
	case *ast.Cast:
		src := w.walkExpr(v.Src)
		target := typing.FromTypeExpr(v.Target)

		return &TypedExpr{
			Kind: &KCast{Src: src, Target: target},
			Type: target,
		}
	case *ast.ListLit:
		elements := w.walkExprs(v.Elements)

		// A list takes its element type from its first element.  Later
		// elements of other types are accepted without diagnostics.
		elemType := typing.Type(unknownType)
		if len(elements) > 0 {
			elemType = elements[0].Type
		}

		return &TypedExpr{
			Kind: &KList{Elements: elements},
			Type: &typing.ListType{Elem: elemType},
		}
	case *ast.Paren:
		// Parentheses are transparent to typing.
		return w.walkExpr(v.Inner)
	case *ast.EntitiesHaving:
		if _, ok := w.symbols.GetComponent(v.Component); !ok {
			w.error(&UndefinedComponentError{Name: v.Component})
		}

		return &TypedExpr{
			Kind: &KEntitiesHaving{Component: v.Component},
			Type: &typing.ListType{Elem: entityIDTyp},
		}
	default:
		clone := expr.(*ast.CloneEntity)
		source := w.walkExpr(clone.Source)
		overrides := w.walkComponentInits(clone.Overrides)

		return &TypedExpr{
			Kind: &KClone{Source: source, Overrides: overrides},
			Type: entityIDTyp,
		}
	}
}

func (w *Walker) walkExprs(exprs []ast.Expr) []*TypedExpr {
	typed := make([]*TypedExpr, len(exprs))
	for i, e := range exprs {
		typed[i] = w.walkExpr(e)
	}

	return typed
}

func literalType(lit *ast.Literal) typing.Type {
	switch lit.Kind {
	case ast.LitString:
		return typing.PrimType(typing.PrimString)
	case ast.LitInteger:
		return typing.PrimType(typing.PrimInteger)
	case ast.LitFloat:
		return typing.PrimType(typing.PrimFloat)
	case ast.LitDecimal:
		return typing.PrimType(typing.PrimDecimal)
	case ast.LitBool:
		return booleanType
	default:
		// null is an optional of unknown element type.
		return &typing.OptionalType{Elem: unknownType}
	}
}

// walkIdentifier resolves a name against the scope stack first, then against
// the component table; an unresolvable name records an error and types as
// Unknown.
func (w *Walker) walkIdentifier(ident *ast.Identifier) *TypedExpr {
	typ, ok := w.lookup(ident.Name)
	if !ok {
		if _, isComp := w.symbols.GetComponent(ident.Name); isComp {
			typ = &typing.ComponentType{Name: ident.Name}
		} else {
			w.error(&UndefinedVariableError{Name: ident.Name})
			typ = unknownType
		}
	}

	return &TypedExpr{Kind: &KVar{Name: ident.Name}, Type: typ}
}

// walkFieldAccess types a field access.  Only component-typed bases resolve
// to declared field types; everything else degrades to Unknown without a
// diagnostic, since fields may legitimately be dynamic.
func (w *Walker) walkFieldAccess(fa *ast.FieldAccess) *TypedExpr {
	base := w.walkExpr(fa.Base)

	fieldType := typing.Type(unknownType)
	if ct, ok := base.Type.(*typing.ComponentType); ok {
		if info, ok := w.symbols.GetComponent(ct.Name); ok {
			if ft, ok := info.Fields[fa.Field]; ok {
				fieldType = ft
			}
		}
	}

	return &TypedExpr{
		Kind: &KFieldAccess{Base: base, Field: fa.Field},
		Type: fieldType,
	}
}

// walkBinary types a binary operation.  Comparisons and logical operators
// yield Boolean; arithmetic prefers Float, then Decimal, then Integer.
func (w *Walker) walkBinary(bin *ast.BinaryOp) *TypedExpr {
	lhs := w.walkExpr(bin.Lhs)
	rhs := w.walkExpr(bin.Rhs)

	var resultType typing.Type
	switch bin.Op {
	case ast.BinAdd, ast.BinSub, ast.BinMul, ast.BinDiv, ast.BinMod:
		resultType = numericResult(lhs.Type, rhs.Type)
	default:
		resultType = booleanType
	}

	return &TypedExpr{
		Kind: &KBinary{Op: bin.Op, Lhs: lhs, Rhs: rhs},
		Type: resultType,
	}
}

func numericResult(a, b typing.Type) typing.Type {
	if isPrim(a, typing.PrimFloat) || isPrim(b, typing.PrimFloat) {
		return typing.PrimType(typing.PrimFloat)
	}

	if isPrim(a, typing.PrimDecimal) || isPrim(b, typing.PrimDecimal) {
		return typing.PrimType(typing.PrimDecimal)
	}

	return typing.PrimType(typing.PrimInteger)
}

func isPrim(t typing.Type, kind int) bool {
	pt, ok := t.(typing.PrimType)
	return ok && int(pt) == kind
}

// walkCall types a free function call against the function table, which
// includes the built-ins.
func (w *Walker) walkCall(call *ast.Call) *TypedExpr {
	args := w.walkExprs(call.Args)

	returnType := typing.Type(unknownType)
	if info, ok := w.symbols.GetFunction(call.Name); ok {
		returnType = info.Return
	} else {
		w.error(&UndefinedFunctionError{Name: call.Name})
	}

	return &TypedExpr{
		Kind: &KCall{Name: call.Name, Args: args},
		Type: returnType,
	}
}
