package ir

import "encoding/json"

// Expression is a lowered expression tree node.  Expressions serialize with
// a string tag discriminating the variant.
type Expression interface {
	irExpression()
}

// LiteralExpr is a literal value.
type LiteralExpr struct {
	Value Value `json:"value"`
}

func (*LiteralExpr) irExpression() {}

func (e *LiteralExpr) MarshalJSON() ([]byte, error) {
	type alias LiteralExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"literal", (*alias)(e)})
}

// VarExpr is a variable reference.
type VarExpr struct {
	Name string `json:"name"`
}

func (*VarExpr) irExpression() {}

func (e *VarExpr) MarshalJSON() ([]byte, error) {
	type alias VarExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"var", (*alias)(e)})
}

// ParamExpr is a function parameter reference.
type ParamExpr struct {
	Name string `json:"name"`
}

func (*ParamExpr) irExpression() {}

func (e *ParamExpr) MarshalJSON() ([]byte, error) {
	type alias ParamExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"param", (*alias)(e)})
}

// FieldExpr is a resolved `entity.component.field` access.
type FieldExpr struct {
	Entity    string `json:"entity"`
	Component string `json:"component"`
	Field     string `json:"field"`
}

func (*FieldExpr) irExpression() {}

func (e *FieldExpr) MarshalJSON() ([]byte, error) {
	type alias FieldExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"field", (*alias)(e)})
}

// BinaryExpr is a binary operation.  Op is one of: add, subtract, multiply,
// divide, modulo, eq, neq, lt, lte, gt, gte, and, or.
type BinaryExpr struct {
	Op    string     `json:"op"`
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (*BinaryExpr) irExpression() {}

func (e *BinaryExpr) MarshalJSON() ([]byte, error) {
	type alias BinaryExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"binary", (*alias)(e)})
}

// UnaryExpr is a unary operation.  Op is negate or not.
type UnaryExpr struct {
	Op   string     `json:"op"`
	Expr Expression `json:"expr"`
}

func (*UnaryExpr) irExpression() {}

func (e *UnaryExpr) MarshalJSON() ([]byte, error) {
	type alias UnaryExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"unary", (*alias)(e)})
}

// CallExpr is a function call.  Index accesses lower to calls of "get" and
// list literals to calls of "list".
type CallExpr struct {
	Function string       `json:"function"`
	Args     []Expression `json:"args"`
}

func (*CallExpr) irExpression() {}

func (e *CallExpr) MarshalJSON() ([]byte, error) {
	type alias CallExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"call", (*alias)(e)})
}

// IfExpr is a conditional expression.  Nothing lowers to it today; it is
// part of the closed wire schema consumed by downstream engines.
type IfExpr struct {
	Condition Expression `json:"condition"`
	Then      Expression `json:"then"`
	Else      Expression `json:"else"`
}

func (*IfExpr) irExpression() {}

func (e *IfExpr) MarshalJSON() ([]byte, error) {
	type alias IfExpr
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"if", (*alias)(e)})
}
