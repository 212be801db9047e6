package ast

import "blinkc/report"

// Block is a `{ statement* }` sequence.
type Block struct {
	Statements []Stmt

	Pos *report.TextSpan
}

func (b *Block) Span() *report.TextSpan { return b.Pos }

// Stmt is the interface of all statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Enumeration of assignment operators.
const (
	AssignSet = iota // =
	AssignAdd        // +=
	AssignSub        // -=
	AssignMul        // *=
	AssignDiv        // /=
)

// LetStmt is a `let name [: type] = value` declaration.
type LetStmt struct {
	Name string

	// TypeAnnotation is nil when the declaration carries no annotation.
	TypeAnnotation TypeExpr

	Value Expr

	Pos *report.TextSpan
}

func (ls *LetStmt) Span() *report.TextSpan { return ls.Pos }
func (ls *LetStmt) stmt()                  {}

// AssignStmt is a `target op value` assignment.  The target is restricted to
// identifier, field-access, or index-access expressions by the analyzer, not
// by the grammar.
type AssignStmt struct {
	Target Expr
	Op     int
	Value  Expr

	Pos *report.TextSpan
}

func (as *AssignStmt) Span() *report.TextSpan { return as.Pos }
func (as *AssignStmt) stmt()                  {}

// IfStmt is an `if cond { ... } [else ...]` statement.
type IfStmt struct {
	Condition Expr
	Then      *Block

	// Else is nil, an *IfStmt (`else if`), or a *Block (`else`).
	Else ElseClause

	Pos *report.TextSpan
}

func (is *IfStmt) Span() *report.TextSpan { return is.Pos }
func (is *IfStmt) stmt()                  {}

// ElseClause is the sum of the two possible else forms: *IfStmt for
// `else if`, *Block for a plain `else`.
type ElseClause interface {
	elseClause()
}

func (is *IfStmt) elseClause() {}
func (b *Block) elseClause()   {}

// ForStmt is a `for x in iterable { ... }` loop.
type ForStmt struct {
	Variable string
	Iterable Expr
	Body     *Block

	Pos *report.TextSpan
}

func (fs *ForStmt) Span() *report.TextSpan { return fs.Pos }
func (fs *ForStmt) stmt()                  {}

// WhileStmt is a `while cond { ... }` loop.
type WhileStmt struct {
	Condition Expr
	Body      *Block

	Pos *report.TextSpan
}

func (ws *WhileStmt) Span() *report.TextSpan { return ws.Pos }
func (ws *WhileStmt) stmt()                  {}

// ReturnStmt is a `return [expr]` statement.
type ReturnStmt struct {
	// Value is nil for a bare return.
	Value Expr

	Pos *report.TextSpan
}

func (rs *ReturnStmt) Span() *report.TextSpan { return rs.Pos }
func (rs *ReturnStmt) stmt()                  {}

// ScheduleStmt is a `schedule [recurring] [[delay:e|interval:e]] Event
// { field* }` statement.
type ScheduleStmt struct {
	Recurring bool

	// Delay and Interval are mutually exclusive; both nil when no timing
	// annotation is present.
	Delay    Expr
	Interval Expr

	EventName string
	Fields    []*FieldInit

	Pos *report.TextSpan
}

func (ss *ScheduleStmt) Span() *report.TextSpan { return ss.Pos }
func (ss *ScheduleStmt) stmt()                  {}

// CancelStmt is a `cancel expr` statement.
type CancelStmt struct {
	Target Expr

	Pos *report.TextSpan
}

func (cs *CancelStmt) Span() *report.TextSpan { return cs.Pos }
func (cs *CancelStmt) stmt()                  {}

// CreateStmt is a `create entity { componentInit* }` statement.
type CreateStmt struct {
	Components []*ComponentInit

	Pos *report.TextSpan
}

func (cs *CreateStmt) Span() *report.TextSpan { return cs.Pos }
func (cs *CreateStmt) stmt()                  {}

// DeleteStmt is a `delete expr` statement.
type DeleteStmt struct {
	Entity Expr

	Pos *report.TextSpan
}

func (ds *DeleteStmt) Span() *report.TextSpan { return ds.Pos }
func (ds *DeleteStmt) stmt()                  {}

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Expr Expr
}

func (es *ExprStmt) Span() *report.TextSpan { return es.Expr.Span() }
func (es *ExprStmt) stmt()                  {}
