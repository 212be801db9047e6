package ast

import "blinkc/report"

// ComponentDef is a `component Name { field* }` definition.
type ComponentDef struct {
	Name   string
	Fields []*FieldDef

	Pos *report.TextSpan
}

func (cd *ComponentDef) Span() *report.TextSpan { return cd.Pos }
func (cd *ComponentDef) item()                  {}

// FieldDef is a single field declaration within a component.
type FieldDef struct {
	Name string
	Type TypeExpr

	// Optional indicates the field was declared with a trailing `?`.  The
	// field's Type is already wrapped in an OptionalTypeExpr when this is set.
	Optional bool

	Pos *report.TextSpan
}

func (fd *FieldDef) Span() *report.TextSpan { return fd.Pos }

// RuleDef is a `rule [name] on Event [when cond] [[priority: N]] { ... }`
// definition.
type RuleDef struct {
	// Name is the optional rule name; empty if the rule is anonymous.
	Name string

	TriggerEvent string

	// Condition is the optional `when` guard; nil if absent.
	Condition Expr

	// Priority is the optional `[priority: N]` annotation; nil if absent.
	Priority *int

	Body *Block

	Pos *report.TextSpan
}

func (rd *RuleDef) Span() *report.TextSpan { return rd.Pos }
func (rd *RuleDef) item()                  {}

// FuncDef is a top-level `fn` definition.
type FuncDef struct {
	Name   string
	Params []*ParamDef

	// ReturnType is nil when the function declares no return type.
	ReturnType TypeExpr

	Body *Block

	Pos *report.TextSpan
}

func (fd *FuncDef) Span() *report.TextSpan { return fd.Pos }
func (fd *FuncDef) item()                  {}

// ParamDef is a single function or choice-function parameter.
type ParamDef struct {
	Name string
	Type TypeExpr

	Pos *report.TextSpan
}

func (pd *ParamDef) Span() *report.TextSpan { return pd.Pos }

// TrackerDef is a legacy `tracker Component on Event` binding.
type TrackerDef struct {
	Component string
	Event     string

	Pos *report.TextSpan
}

func (td *TrackerDef) Span() *report.TextSpan { return td.Pos }
func (td *TrackerDef) item()                  {}

// ImportDef is an `import a.b.c [{ x, y }]` declaration.
type ImportDef struct {
	Path []string

	// Items lists the specific names imported, or nil for a whole-module
	// import.
	Items []string

	Pos *report.TextSpan
}

func (id *ImportDef) Span() *report.TextSpan { return id.Pos }
func (id *ImportDef) item()                  {}

// ModuleDef is a nested `module name { item* }` namespace.
type ModuleDef struct {
	Name  string
	Items []Item

	Pos *report.TextSpan
}

func (md *ModuleDef) Span() *report.TextSpan { return md.Pos }
func (md *ModuleDef) item()                  {}

// EntityDef is a BDL entity declaration.  All three surface syntaxes
// normalize to this node: `v = new entity { ... }`, `entity [@v|v] { ... }`,
// and the deprecated bare `@v { ... }`.
type EntityDef struct {
	// Variable is the binding name for the entity; empty for an anonymous
	// entity.
	Variable string

	Components     []*ComponentInit
	BoundFunctions []*BoundFuncDef

	Pos *report.TextSpan
}

func (ed *EntityDef) Span() *report.TextSpan { return ed.Pos }
func (ed *EntityDef) item()                  {}

// BoundFuncDef is a BCL choice function bound to an entity:
// `.name = choice(params): type { ... }`.
type BoundFuncDef struct {
	Name   string
	Params []*ParamDef

	// ReturnType is nil when the choice declares no return type.
	ReturnType TypeExpr

	Body *Block

	Pos *report.TextSpan
}

func (bf *BoundFuncDef) Span() *report.TextSpan { return bf.Pos }

// ComponentInit is a component initializer inside an entity declaration, a
// `create entity` statement, or a `clone` override list.  Field order is
// preserved from the source.
type ComponentInit struct {
	Name   string
	Fields []*FieldInit

	Pos *report.TextSpan
}

func (ci *ComponentInit) Span() *report.TextSpan { return ci.Pos }

// FieldInit is one `name: expr` pair within a component initializer.
type FieldInit struct {
	Name  string
	Value Expr
}

// -----------------------------------------------------------------------------

// TypeExpr is the interface of all source-level type annotations.
type TypeExpr interface {
	typeExpr()
}

// Enumeration of primitive type-expression kinds.
const (
	TypeString = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeDecimal
	TypeID
)

// PrimTypeExpr is a primitive scalar type annotation.
type PrimTypeExpr struct {
	Kind int
}

func (pt *PrimTypeExpr) typeExpr() {}

// ComponentTypeExpr is a bare identifier used as a component type reference.
type ComponentTypeExpr struct {
	Name string
}

func (ct *ComponentTypeExpr) typeExpr() {}

// ListTypeExpr is a `list<T>` annotation.  Bare `list` parses as `list<id>`.
type ListTypeExpr struct {
	Element TypeExpr
}

func (lt *ListTypeExpr) typeExpr() {}

// OptionalTypeExpr is a `T?` annotation.
type OptionalTypeExpr struct {
	Element TypeExpr
}

func (ot *OptionalTypeExpr) typeExpr() {}

// CompositeTypeExpr is an `A & B & C` entity constraint, valid only in
// choice-function parameter lists.  Every member is a ComponentTypeExpr; the
// parser enforces this.
type CompositeTypeExpr struct {
	Members []TypeExpr
}

func (ct *CompositeTypeExpr) typeExpr() {}
