package sem

import (
	"blinkc/ast"
	"blinkc/typing"
)

// TypedModule is the output of semantic analysis: the module's items with
// every expression annotated with its resolved type, plus the populated
// symbol table.
type TypedModule struct {
	Items   []TypedItem
	Symbols *SymbolTable
}

// TypedItem is the interface of all typed top-level items.  Imports and
// nested module definitions do not survive analysis.
type TypedItem interface {
	typedItem()
}

// TypedComponent is a typed component definition.
type TypedComponent struct {
	Name   string
	Fields []*TypedField
}

func (tc *TypedComponent) typedItem() {}

// TypedField is one typed component field.  Type already carries the
// optional wrapper when Optional is set.
type TypedField struct {
	Name     string
	Type     typing.Type
	Optional bool
}

// TypedRule is a typed rule definition.
type TypedRule struct {
	// Name is empty for an anonymous rule.
	Name string

	TriggerEvent string

	// Condition is nil when the rule has no `when` guard.
	Condition *TypedExpr

	// Priority is nil when the rule has no priority annotation.
	Priority *int

	Body *TypedBlock
}

func (tr *TypedRule) typedItem() {}

// TypedFunction is a typed function definition.
type TypedFunction struct {
	Name   string
	Params []*TypedParam
	Return typing.Type
	Body   *TypedBlock
}

func (tf *TypedFunction) typedItem() {}

// TypedParam is one typed function parameter.
type TypedParam struct {
	Name string
	Type typing.Type
}

// TypedTracker is a typed tracker binding.
type TypedTracker struct {
	Component string
	Event     string
}

func (tt *TypedTracker) typedItem() {}

// TypedEntity is a typed entity declaration.
type TypedEntity struct {
	// Variable is the binding name for the entity; empty when anonymous.
	Variable string

	Components     []*TypedComponentInit
	BoundFunctions []*TypedBoundFunction
}

func (te *TypedEntity) typedItem() {}

// TypedBoundFunction is a typed choice function bound to an entity.
type TypedBoundFunction struct {
	Name   string
	Params []*TypedParam
	Return typing.Type
	Body   *TypedBlock
}

// TypedComponentInit is a typed component initializer.
type TypedComponentInit struct {
	Name   string
	Fields []*TypedFieldInit
}

// TypedFieldInit is one typed `name: expr` initializer pair.  Field order is
// preserved from the source.
type TypedFieldInit struct {
	Name  string
	Value *TypedExpr
}

// -----------------------------------------------------------------------------

// TypedBlock is a typed statement sequence.
type TypedBlock struct {
	Statements []TypedStmt
}

func (tb *TypedBlock) typedElseClause() {}

// TypedStmt is the interface of all typed statements.
type TypedStmt interface {
	typedStmt()
}

// TypedLet is a typed variable declaration.  VarType is the annotation when
// one was given, otherwise the inferred type of the initializer.
type TypedLet struct {
	Name    string
	VarType typing.Type
	Value   *TypedExpr
}

func (tl *TypedLet) typedStmt() {}

// TypedAssign is a typed assignment.  Op is one of the ast assignment
// operator constants.
type TypedAssign struct {
	Target *TypedExpr
	Op     int
	Value  *TypedExpr
}

func (ta *TypedAssign) typedStmt() {}

// TypedIf is a typed conditional.
type TypedIf struct {
	Condition *TypedExpr
	Then      *TypedBlock

	// Else is nil, a *TypedIf, or a *TypedBlock.
	Else TypedElseClause
}

func (ti *TypedIf) typedStmt()       {}
func (ti *TypedIf) typedElseClause() {}

// TypedElseClause is the sum of the two else forms: *TypedIf for `else if`,
// *TypedBlock for a plain `else`.
type TypedElseClause interface {
	typedElseClause()
}

// TypedFor is a typed for-in loop.
type TypedFor struct {
	Variable string
	Iterable *TypedExpr
	Body     *TypedBlock
}

func (tf *TypedFor) typedStmt() {}

// TypedWhile is a typed while loop.
type TypedWhile struct {
	Condition *TypedExpr
	Body      *TypedBlock
}

func (tw *TypedWhile) typedStmt() {}

// TypedReturn is a typed return statement.  Value is nil for a bare return.
type TypedReturn struct {
	Value *TypedExpr
}

func (tr *TypedReturn) typedStmt() {}

// TypedSchedule is a typed schedule statement.
type TypedSchedule struct {
	Recurring bool
	Delay     *TypedExpr
	Interval  *TypedExpr
	EventName string
	Fields    []*TypedFieldInit
}

func (ts *TypedSchedule) typedStmt() {}

// TypedCancel is a typed cancel statement.
type TypedCancel struct {
	Target *TypedExpr
}

func (tc *TypedCancel) typedStmt() {}

// TypedCreate is a typed create-entity statement.
type TypedCreate struct {
	Components []*TypedComponentInit
}

func (tc *TypedCreate) typedStmt() {}

// TypedDelete is a typed delete-entity statement.
type TypedDelete struct {
	Entity *TypedExpr
}

func (td *TypedDelete) typedStmt() {}

// TypedExprStmt is a typed bare expression statement.
type TypedExprStmt struct {
	Expr *TypedExpr
}

func (te *TypedExprStmt) typedStmt() {}

// -----------------------------------------------------------------------------

// TypedExpr pairs an expression with its resolved type.
type TypedExpr struct {
	Kind TypedExprKind
	Type typing.Type
}

// TypedExprKind is the interface of all typed expression kinds.
type TypedExprKind interface {
	typedExprKind()
}

// KLiteral is a literal value.  The underlying AST literal is shared, not
// copied; literals are immutable after parsing.
type KLiteral struct {
	Lit *ast.Literal
}

func (k *KLiteral) typedExprKind() {}

// KVar is a variable or component-name reference.
type KVar struct {
	Name string
}

func (k *KVar) typedExprKind() {}

// KEntityRef is a deprecated `@name` entity reference.
type KEntityRef struct {
	Name string
}

func (k *KEntityRef) typedExprKind() {}

// KFieldAccess is a field access.
type KFieldAccess struct {
	Base  *TypedExpr
	Field string
}

func (k *KFieldAccess) typedExprKind() {}

// KIndexAccess is an index access.
type KIndexAccess struct {
	Base  *TypedExpr
	Index *TypedExpr
}

func (k *KIndexAccess) typedExprKind() {}

// KBinary is a binary operator application.  Op is one of the ast binary
// operator constants.
type KBinary struct {
	Op       int
	Lhs, Rhs *TypedExpr
}

func (k *KBinary) typedExprKind() {}

// KUnary is a unary operator application.
type KUnary struct {
	Op      int
	Operand *TypedExpr
}

func (k *KUnary) typedExprKind() {}

// KCall is a free function call.
type KCall struct {
	Name string
	Args []*TypedExpr
}

func (k *KCall) typedExprKind() {}

// KMethodCall is a method call on an expression.
type KMethodCall struct {
	Base   *TypedExpr
	Method string
	Args   []*TypedExpr
}

func (k *KMethodCall) typedExprKind() {}

// KHasComponent is a component presence test.
type KHasComponent struct {
	Base      *TypedExpr
	Component string
}

func (k *KHasComponent) typedExprKind() {}

// KCast is a type conversion.
type KCast struct {
	Src    *TypedExpr
	Target typing.Type
}

func (k *KCast) typedExprKind() {}

// KList is a list literal.
type KList struct {
	Elements []*TypedExpr
}

func (k *KList) typedExprKind() {}

// KEntitiesHaving is an `entities having Component` query.
type KEntitiesHaving struct {
	Component string
}

func (k *KEntitiesHaving) typedExprKind() {}

// KClone is an entity cloning expression.
type KClone struct {
	Source    *TypedExpr
	Overrides []*TypedComponentInit
}

func (k *KClone) typedExprKind() {}
