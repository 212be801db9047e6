package ast

import "blinkc/report"

// Expr is the interface of all expression nodes.
type Expr interface {
	Node
	expr()
}

// Enumeration of binary operators.
const (
	BinAdd = iota
	BinSub
	BinMul
	BinDiv
	BinMod

	BinEq
	BinNotEq
	BinLt
	BinLtEq
	BinGt
	BinGtEq

	BinAnd
	BinOr
)

// Enumeration of unary operators.
const (
	UnaryNeg = iota
	UnaryNot
)

// Enumeration of literal kinds.
const (
	LitString = iota
	LitInteger
	LitFloat
	LitDecimal
	LitBool
	LitNull
)

// Literal is a literal value.  Only the field matching Kind is meaningful;
// decimal literals keep their source text in StrVal to preserve precision.
type Literal struct {
	Kind int

	StrVal   string
	IntVal   int64
	FloatVal float64
	BoolVal  bool

	Pos *report.TextSpan
}

func (l *Literal) Span() *report.TextSpan { return l.Pos }
func (l *Literal) expr()                  {}

// Identifier is a variable or component-type reference.
type Identifier struct {
	Name string

	Pos *report.TextSpan
}

func (id *Identifier) Span() *report.TextSpan { return id.Pos }
func (id *Identifier) expr()                  {}

// EntityRef is a deprecated `@name` entity reference.
type EntityRef struct {
	Name string

	Pos *report.TextSpan
}

func (er *EntityRef) Span() *report.TextSpan { return er.Pos }
func (er *EntityRef) expr()                  {}

// FieldAccess is a `base.field` expression.
type FieldAccess struct {
	Base  Expr
	Field string

	Pos *report.TextSpan
}

func (fa *FieldAccess) Span() *report.TextSpan { return fa.Pos }
func (fa *FieldAccess) expr()                  {}

// IndexAccess is a `base[index]` expression.
type IndexAccess struct {
	Base  Expr
	Index Expr

	Pos *report.TextSpan
}

func (ia *IndexAccess) Span() *report.TextSpan { return ia.Pos }
func (ia *IndexAccess) expr()                  {}

// BinaryOp is a binary operator application.
type BinaryOp struct {
	Op       int
	Lhs, Rhs Expr

	Pos *report.TextSpan
}

func (bo *BinaryOp) Span() *report.TextSpan { return bo.Pos }
func (bo *BinaryOp) expr()                  {}

// UnaryOp is a unary operator application.
type UnaryOp struct {
	Op      int
	Operand Expr

	Pos *report.TextSpan
}

func (uo *UnaryOp) Span() *report.TextSpan { return uo.Pos }
func (uo *UnaryOp) expr()                  {}

// Call is a free function call `name(args)`.
type Call struct {
	Name string
	Args []Expr

	Pos *report.TextSpan
}

func (c *Call) Span() *report.TextSpan { return c.Pos }
func (c *Call) expr()                  {}

// MethodCall is a `base.method(args)` call.
type MethodCall struct {
	Base   Expr
	Method string
	Args   []Expr

	Pos *report.TextSpan
}

func (mc *MethodCall) Span() *report.TextSpan { return mc.Pos }
func (mc *MethodCall) expr()                  {}

// HasComponent is an `base.has(Component)` test.
type HasComponent struct {
	Base      Expr
	Component string

	Pos *report.TextSpan
}

func (hc *HasComponent) Span() *report.TextSpan { return hc.Pos }
func (hc *HasComponent) expr()                  {}

// Cast is an `expr as type` conversion.
type Cast struct {
	Src    Expr
	Target TypeExpr

	Pos *report.TextSpan
}

func (c *Cast) Span() *report.TextSpan { return c.Pos }
func (c *Cast) expr()                  {}

// ListLit is a `[e1, e2, ...]` list literal.
type ListLit struct {
	Elements []Expr

	Pos *report.TextSpan
}

func (ll *ListLit) Span() *report.TextSpan { return ll.Pos }
func (ll *ListLit) expr()                  {}

// Paren is a parenthesized expression.  The node is kept so spans remain
// exact; it is transparent to typing.
type Paren struct {
	Inner Expr

	Pos *report.TextSpan
}

func (p *Paren) Span() *report.TextSpan { return p.Pos }
func (p *Paren) expr()                  {}

// EntitiesHaving is an `entities having Component` query.
type EntitiesHaving struct {
	Component string

	Pos *report.TextSpan
}

func (eh *EntitiesHaving) Span() *report.TextSpan { return eh.Pos }
func (eh *EntitiesHaving) expr()                  {}

// CloneEntity is a `clone source [{ overrides }]` expression.
type CloneEntity struct {
	Source    Expr
	Overrides []*ComponentInit

	Pos *report.TextSpan
}

func (ce *CloneEntity) Span() *report.TextSpan { return ce.Pos }
func (ce *CloneEntity) expr()                  {}
