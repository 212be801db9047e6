package sem

import (
	"blinkc/ast"
	"blinkc/typing"
)

// walkBlock types a statement sequence in a fresh child scope.
func (w *Walker) walkBlock(block *ast.Block) *TypedBlock {
	w.pushScope()
	defer w.popScope()

	statements := make([]TypedStmt, len(block.Statements))
	for i, stmt := range block.Statements {
		statements[i] = w.walkStmt(stmt)
	}

	return &TypedBlock{Statements: statements}
}

func (w *Walker) walkStmt(stmt ast.Stmt) TypedStmt {
	switch v := stmt.(type) {
	case *ast.LetStmt:
		return w.walkLet(v)
	case *ast.AssignStmt:
		return &TypedAssign{
			Target: w.walkExpr(v.Target),
			Op:     v.Op,
			Value:  w.walkExpr(v.Value),
		}
	case *ast.IfStmt:
		return w.walkIf(v)
	case *ast.ForStmt:
		return w.walkFor(v)
	case *ast.WhileStmt:
		return &TypedWhile{
			Condition: w.walkExpr(v.Condition),
			Body:      w.walkBlock(v.Body),
		}
	case *ast.ReturnStmt:
		var value *TypedExpr
		if v.Value != nil {
			value = w.walkExpr(v.Value)
		}

		return &TypedReturn{Value: value}
	case *ast.ScheduleStmt:
		return w.walkSchedule(v)
	case *ast.CancelStmt:
		return &TypedCancel{Target: w.walkExpr(v.Target)}
	case *ast.CreateStmt:
		return &TypedCreate{Components: w.walkComponentInits(v.Components)}
	case *ast.DeleteStmt:
		return &TypedDelete{Entity: w.walkExpr(v.Entity)}
	default:
		return &TypedExprStmt{Expr: w.walkExpr(stmt.(*ast.ExprStmt).Expr)}
	}
}

// walkLet types a let declaration and binds the variable in the current
// scope.  An explicit annotation wins over the inferred initializer type.
func (w *Walker) walkLet(let *ast.LetStmt) TypedStmt {
	value := w.walkExpr(let.Value)

	varType := value.Type
	if let.TypeAnnotation != nil {
		varType = typing.FromTypeExpr(let.TypeAnnotation)
	}

	w.define(let.Name, varType)

	return &TypedLet{Name: let.Name, VarType: varType, Value: value}
}

func (w *Walker) walkIf(ifStmt *ast.IfStmt) *TypedIf {
	condition := w.walkExpr(ifStmt.Condition)
	thenBlock := w.walkBlock(ifStmt.Then)

	var elseClause TypedElseClause
	switch e := ifStmt.Else.(type) {
	case *ast.IfStmt:
		elseClause = w.walkIf(e)
	case *ast.Block:
		elseClause = w.walkBlock(e)
	}

	return &TypedIf{Condition: condition, Then: thenBlock, Else: elseClause}
}

// walkFor types a for-in loop.  The loop variable gets the iterable's
// element type when the iterable is a list, Unknown otherwise.
func (w *Walker) walkFor(forStmt *ast.ForStmt) TypedStmt {
	iterable := w.walkExpr(forStmt.Iterable)

	elemType := typing.Type(typing.PrimType(typing.PrimUnknown))
	if lt, ok := iterable.Type.(*typing.ListType); ok {
		elemType = lt.Elem
	}

	w.pushScope()
	w.define(forStmt.Variable, elemType)
	body := w.walkBlock(forStmt.Body)
	w.popScope()

	return &TypedFor{Variable: forStmt.Variable, Iterable: iterable, Body: body}
}

func (w *Walker) walkSchedule(sched *ast.ScheduleStmt) TypedStmt {
	var delay, interval *TypedExpr
	if sched.Delay != nil {
		delay = w.walkExpr(sched.Delay)
	}
	if sched.Interval != nil {
		interval = w.walkExpr(sched.Interval)
	}

	fields := make([]*TypedFieldInit, len(sched.Fields))
	for i, f := range sched.Fields {
		fields[i] = &TypedFieldInit{Name: f.Name, Value: w.walkExpr(f.Value)}
	}

	return &TypedSchedule{
		Recurring: sched.Recurring,
		Delay:     delay,
		Interval:  interval,
		EventName: sched.EventName,
		Fields:    fields,
	}
}
