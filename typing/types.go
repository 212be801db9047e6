package typing

import (
	"strings"

	"blinkc/ast"
)

// Type represents a resolved semantic type.  The type lattice is small and
// flat: primitives, component references, list and optional wrappers, and
// composite entity constraints.  Unknown is the error and absence sentinel;
// analysis degrades to it and never fails on it.
type Type interface {
	// Repr returns the string representation of the type as it appears in
	// diagnostics.
	Repr() string

	// equals tests exact structural equality with another type.
	equals(other Type) bool
}

// Equals tests two types for exact structural equality.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// Enumeration of primitive type kinds.
const (
	PrimString = iota
	PrimBoolean
	PrimInteger
	PrimFloat
	PrimDecimal
	PrimEntityID
	PrimVoid
	PrimUnknown
)

// PrimType is a primitive type.  Its value must be one of the enumerated
// primitive kinds.
type PrimType int

func (pt PrimType) Repr() string {
	switch pt {
	case PrimString:
		return "string"
	case PrimBoolean:
		return "boolean"
	case PrimInteger:
		return "integer"
	case PrimFloat:
		return "float"
	case PrimDecimal:
		return "decimal"
	case PrimEntityID:
		return "id"
	case PrimVoid:
		return "void"
	default:
		return "unknown"
	}
}

func (pt PrimType) equals(other Type) bool {
	opt, ok := other.(PrimType)
	return ok && pt == opt
}

// ComponentType is a reference to a declared component.  Component types are
// nominal: two component types are equal exactly when their names match.
type ComponentType struct {
	Name string
}

func (ct *ComponentType) Repr() string {
	return ct.Name
}

func (ct *ComponentType) equals(other Type) bool {
	oct, ok := other.(*ComponentType)
	return ok && ct.Name == oct.Name
}

// ListType is a homogeneous list type.
type ListType struct {
	Elem Type
}

func (lt *ListType) Repr() string {
	return "list<" + lt.Elem.Repr() + ">"
}

func (lt *ListType) equals(other Type) bool {
	olt, ok := other.(*ListType)
	return ok && lt.Elem.equals(olt.Elem)
}

// OptionalType is a nullable wrapper around another type.
type OptionalType struct {
	Elem Type
}

func (ot *OptionalType) Repr() string {
	return ot.Elem.Repr() + "?"
}

func (ot *OptionalType) equals(other Type) bool {
	oot, ok := other.(*OptionalType)
	return ok && ot.Elem.equals(oot.Elem)
}

// CompositeType is an `A & B & C` entity constraint: an entity carrying all
// of the member components at once.  Members are always component types.
type CompositeType struct {
	Members []Type
}

func (ct *CompositeType) Repr() string {
	reprs := make([]string, len(ct.Members))
	for i, m := range ct.Members {
		reprs[i] = m.Repr()
	}

	return strings.Join(reprs, " & ")
}

func (ct *CompositeType) equals(other Type) bool {
	oct, ok := other.(*CompositeType)
	if !ok || len(ct.Members) != len(oct.Members) {
		return false
	}

	for i, m := range ct.Members {
		if !m.equals(oct.Members[i]) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// FromTypeExpr resolves a source-level type annotation into a semantic type.
func FromTypeExpr(expr ast.TypeExpr) Type {
	switch v := expr.(type) {
	case *ast.PrimTypeExpr:
		switch v.Kind {
		case ast.TypeString:
			return PrimType(PrimString)
		case ast.TypeBoolean:
			return PrimType(PrimBoolean)
		case ast.TypeInteger:
			return PrimType(PrimInteger)
		case ast.TypeFloat:
			return PrimType(PrimFloat)
		case ast.TypeDecimal:
			return PrimType(PrimDecimal)
		default:
			return PrimType(PrimEntityID)
		}
	case *ast.ComponentTypeExpr:
		return &ComponentType{Name: v.Name}
	case *ast.ListTypeExpr:
		return &ListType{Elem: FromTypeExpr(v.Element)}
	case *ast.OptionalTypeExpr:
		return &OptionalType{Elem: FromTypeExpr(v.Element)}
	case *ast.CompositeTypeExpr:
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = FromTypeExpr(m)
		}

		return &CompositeType{Members: members}
	default:
		return PrimType(PrimUnknown)
	}
}
