package generate

import (
	"blinkc/ast"
	"blinkc/ir"
	"blinkc/report"
	"blinkc/sem"
)

func (g *Generator) genComponent(comp *sem.TypedComponent) *ir.Component {
	fields := make([]*ir.Field, len(comp.Fields))
	for i, f := range comp.Fields {
		fields[i] = &ir.Field{
			Name: f.Name,
			Type: convType(f.Type),
		}
	}

	return &ir.Component{
		ID:     g.nextComponentID(),
		Name:   comp.Name,
		Fields: fields,
	}
}

func (g *Generator) genFunction(fn *sem.TypedFunction) *ir.Function {
	return &ir.Function{
		ID:         g.nextFunctionID(),
		Name:       fn.Name,
		Params:     genParams(fn.Params),
		ReturnType: convType(fn.Return),
		Body:       genFunctionBody(fn.Body),
	}
}

func genParams(params []*sem.TypedParam) []*ir.Param {
	irParams := make([]*ir.Param, len(params))
	for i, p := range params {
		irParams[i] = &ir.Param{Name: p.Name, Type: convType(p.Type)}
	}

	return irParams
}

// genFunctionBody lowers a function body to a single expression: the value
// of the first return statement found scanning top to bottom, defaulting to
// the literal 0 when the body never returns a value.
func genFunctionBody(block *sem.TypedBlock) ir.Expression {
	for _, stmt := range block.Statements {
		if ret, ok := stmt.(*sem.TypedReturn); ok && ret.Value != nil {
			return genExpr(ret.Value)
		}
	}

	return &ir.LiteralExpr{Value: ir.NumberValue(0)}
}

func (g *Generator) genTracker(tracker *sem.TypedTracker) *ir.Tracker {
	return &ir.Tracker{
		ID:        g.nextTrackerID(),
		Component: tracker.Component,
		Event:     tracker.Event,
	}
}

// genEntity lowers an entity declaration into an initial-state entry.  The
// entity's binding variable becomes its IR name.
func (g *Generator) genEntity(entity *sem.TypedEntity) *ir.Entity {
	components := ir.NewOrderedMap[*ir.OrderedMap[ir.Value]]()
	for _, comp := range entity.Components {
		fields := ir.NewOrderedMap[ir.Value]()
		for _, f := range comp.Fields {
			fields.Set(f.Name, exprToValue(f.Value))
		}

		components.Set(comp.Name, fields)
	}

	var boundFuncs *ir.OrderedMap[*ir.BoundFunction]
	if len(entity.BoundFunctions) > 0 {
		boundFuncs = ir.NewOrderedMap[*ir.BoundFunction]()
		for _, fn := range entity.BoundFunctions {
			boundFuncs.Set(fn.Name, genBoundFunction(fn))
		}
	}

	return &ir.Entity{
		ID:             g.nextEntityID(),
		Name:           entity.Variable,
		Components:     components,
		BoundFunctions: boundFuncs,
	}
}

func genBoundFunction(fn *sem.TypedBoundFunction) *ir.BoundFunction {
	return &ir.BoundFunction{
		Params:     genParams(fn.Params),
		ReturnType: convType(fn.Return),
		Body:       genFunctionBody(fn.Body),
	}
}

// exprToValue converts an entity field initializer to a plain value.  Entity
// data allows literals only; a non-literal initializer is a data-language
// violation that degrades to a warning and a null substitute rather than
// failing compilation.
func exprToValue(expr *sem.TypedExpr) ir.Value {
	if lit, ok := expr.Kind.(*sem.KLiteral); ok {
		return convLiteral(lit.Lit)
	}

	report.PrintWarningMessage("Warning", "Non-literal expression in entity field (BDL violation). Using null.")
	return ir.NullValue{}
}

func convLiteral(lit *ast.Literal) ir.Value {
	switch lit.Kind {
	case ast.LitString:
		return ir.StringValue(lit.StrVal)
	case ast.LitInteger:
		return ir.NumberValue(lit.IntVal)
	case ast.LitFloat:
		return ir.NumberValue(lit.FloatVal)
	case ast.LitDecimal:
		return convDecimal(lit.StrVal)
	case ast.LitBool:
		return ir.BoolValue(lit.BoolVal)
	default:
		return ir.NullValue{}
	}
}
