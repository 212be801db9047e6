package generate

import (
	"blinkc/ast"
	"blinkc/ir"
	"blinkc/sem"
)

func (g *Generator) genRule(rule *sem.TypedRule) *ir.Rule {
	var condition ir.Expression
	if rule.Condition != nil {
		condition = genExpr(rule.Condition)
	}

	irRule := &ir.Rule{
		ID:   g.nextRuleID(),
		Name: rule.Name,
		Trigger: &ir.Trigger{
			Type:  "event",
			Event: rule.TriggerEvent,
		},
		Condition: condition,
		Actions:   genBlockActions(rule.Body),
	}

	return irRule
}

// genBlockActions lowers a statement block to its action list.  Statement
// kinds with no action mapping (while loops, bare expression statements)
// contribute nothing.
func genBlockActions(block *sem.TypedBlock) []ir.Action {
	actions := []ir.Action{}
	for _, stmt := range block.Statements {
		if action := genStmtAction(stmt); action != nil {
			actions = append(actions, action)
		}
	}

	return actions
}

func genStmtAction(stmt sem.TypedStmt) ir.Action {
	switch v := stmt.(type) {
	case *sem.TypedAssign:
		return genAssignAction(v)
	case *sem.TypedLet:
		return &ir.LetAction{Name: v.Name, Value: genExpr(v.Value)}
	case *sem.TypedIf:
		return genConditional(v)
	case *sem.TypedFor:
		return &ir.LoopAction{
			Variable: v.Variable,
			Iterable: genExpr(v.Iterable),
			Body:     genBlockActions(v.Body),
		}
	case *sem.TypedSchedule:
		return genScheduleAction(v)
	case *sem.TypedCancel:
		return &ir.CancelAction{Target: genExpr(v.Target)}
	case *sem.TypedCreate:
		components := make([]*ir.ComponentInit, len(v.Components))
		for i, c := range v.Components {
			components[i] = genComponentInit(c)
		}

		return &ir.SpawnAction{Components: components}
	case *sem.TypedDelete:
		return &ir.DespawnAction{Entity: genExpr(v.Entity)}
	default:
		return nil
	}
}

// genAssignAction lowers an assignment on a field-access target to a modify
// action.  Assignments to anything else have no action mapping.
func genAssignAction(assign *sem.TypedAssign) ir.Action {
	fa, ok := assign.Target.Kind.(*sem.KFieldAccess)
	if !ok {
		return nil
	}

	entity, component := extractEntityComponent(fa.Base)

	return &ir.ModifyAction{
		Entity:    genExprKind(entity.Kind),
		Component: component,
		Field:     fa.Field,
		Op:        assignOpName(assign.Op),
		Value:     genExpr(assign.Value),
	}
}

// extractEntityComponent splits the base of a modify target: for a target
// `entity.Health.current` the base is `entity.Health`, yielding the entity
// expression and the component name.  A base that is not itself a field
// access yields the component name "Unknown".
func extractEntityComponent(expr *sem.TypedExpr) (*sem.TypedExpr, string) {
	if fa, ok := expr.Kind.(*sem.KFieldAccess); ok {
		return fa.Base, fa.Field
	}

	return expr, "Unknown"
}

func genConditional(ifStmt *sem.TypedIf) ir.Action {
	action := &ir.ConditionalAction{
		Condition:   genExpr(ifStmt.Condition),
		ThenActions: genBlockActions(ifStmt.Then),
	}

	if ifStmt.Else != nil {
		action.ElseActions = genElseActions(ifStmt.Else)
	}

	return action
}

// genElseActions lowers an else clause: a plain else contributes its block's
// actions, an else-if contributes a single nested conditional.
func genElseActions(clause sem.TypedElseClause) []ir.Action {
	switch v := clause.(type) {
	case *sem.TypedIf:
		return []ir.Action{genConditional(v)}
	default:
		return genBlockActions(v.(*sem.TypedBlock))
	}
}

// genScheduleAction lowers a schedule statement.  The interval annotation
// and the recurring flag are not represented in the action schema yet; only
// the delay survives lowering.
func genScheduleAction(sched *sem.TypedSchedule) ir.Action {
	action := &ir.ScheduleAction{Event: sched.EventName}

	if sched.Delay != nil {
		action.Delay = genExpr(sched.Delay)
	}

	if len(sched.Fields) > 0 {
		fields := ir.NewOrderedMap[ir.Expression]()
		for _, f := range sched.Fields {
			fields.Set(f.Name, genExpr(f.Value))
		}

		action.Fields = fields
	}

	return action
}

func genComponentInit(init *sem.TypedComponentInit) *ir.ComponentInit {
	fields := ir.NewOrderedMap[ir.Expression]()
	for _, f := range init.Fields {
		fields.Set(f.Name, genExpr(f.Value))
	}

	return &ir.ComponentInit{Name: init.Name, Fields: fields}
}

func assignOpName(op int) string {
	switch op {
	case ast.AssignAdd:
		return "add"
	case ast.AssignSub:
		return "subtract"
	case ast.AssignMul:
		return "multiply"
	case ast.AssignDiv:
		return "divide"
	default:
		return "set"
	}
}
