package generate

import (
	"strconv"

	"blinkc/ast"
	"blinkc/ir"
	"blinkc/sem"
)

func genExpr(expr *sem.TypedExpr) ir.Expression {
	return genExprKind(expr.Kind)
}

// genExprKind lowers one expression kind.  Kinds with no wire representation
// (method calls, has-component tests, casts, entity queries, clones) lower
// to the literal null.
func genExprKind(kind sem.TypedExprKind) ir.Expression {
	switch v := kind.(type) {
	case *sem.KLiteral:
		return &ir.LiteralExpr{Value: convLiteral(v.Lit)}
	case *sem.KVar:
		return &ir.VarExpr{Name: v.Name}
	case *sem.KEntityRef:
		return &ir.VarExpr{Name: "@" + v.Name}
	case *sem.KFieldAccess:
		return genFieldAccess(v)
	case *sem.KBinary:
		return &ir.BinaryExpr{
			Op:    binaryOpName(v.Op),
			Left:  genExpr(v.Lhs),
			Right: genExpr(v.Rhs),
		}
	case *sem.KUnary:
		return &ir.UnaryExpr{
			Op:   unaryOpName(v.Op),
			Expr: genExpr(v.Operand),
		}
	case *sem.KCall:
		return &ir.CallExpr{
			Function: v.Name,
			Args:     genExprs(v.Args),
		}
	case *sem.KIndexAccess:
		// Index access lowers to a call of the builtin "get".
		return &ir.CallExpr{
			Function: "get",
			Args:     []ir.Expression{genExpr(v.Base), genExpr(v.Index)},
		}
	case *sem.KList:
		// List literals lower to a call of the builtin "list".
		return &ir.CallExpr{
			Function: "list",
			Args:     genExprs(v.Elements),
		}
	default:
		return &ir.LiteralExpr{Value: ir.NullValue{}}
	}
}

func genExprs(exprs []*sem.TypedExpr) []ir.Expression {
	irExprs := make([]ir.Expression, len(exprs))
	for i, e := range exprs {
		irExprs[i] = genExpr(e)
	}

	return irExprs
}

// genFieldAccess lowers a field access.  Only the exact two-level chain
// `identifier.Component.field` resolves to a field node; any other shape
// falls back to a bare variable named after the field, a documented lossy
// simplification.
func genFieldAccess(fa *sem.KFieldAccess) ir.Expression {
	if base, ok := fa.Base.Kind.(*sem.KFieldAccess); ok {
		if entity, ok := base.Base.Kind.(*sem.KVar); ok {
			return &ir.FieldExpr{
				Entity:    entity.Name,
				Component: base.Field,
				Field:     fa.Field,
			}
		}
	}

	return &ir.VarExpr{Name: fa.Field}
}

// convDecimal parses a decimal literal's digits.  An unparseable literal
// degrades to null; the lexer guarantees the digits are well formed.
func convDecimal(text string) ir.Value {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ir.NullValue{}
	}

	return ir.NumberValue(value)
}

func binaryOpName(op int) string {
	switch op {
	case ast.BinAdd:
		return "add"
	case ast.BinSub:
		return "subtract"
	case ast.BinMul:
		return "multiply"
	case ast.BinDiv:
		return "divide"
	case ast.BinMod:
		return "modulo"
	case ast.BinEq:
		return "eq"
	case ast.BinNotEq:
		return "neq"
	case ast.BinLt:
		return "lt"
	case ast.BinLtEq:
		return "lte"
	case ast.BinGt:
		return "gt"
	case ast.BinGtEq:
		return "gte"
	case ast.BinAnd:
		return "and"
	default:
		return "or"
	}
}

func unaryOpName(op int) string {
	if op == ast.UnaryNeg {
		return "negate"
	}

	return "not"
}
