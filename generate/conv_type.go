package generate

import (
	"blinkc/ir"
	"blinkc/typing"
)

// convType maps a semantic type onto the coarser IR type system.  All three
// numeric types collapse to number; component and composite references are
// entity handles at runtime; optionals unwrap since the IR has no optional
// representation.  Void and unknown default to number.
func convType(t typing.Type) ir.Type {
	switch v := t.(type) {
	case typing.PrimType:
		switch v {
		case typing.PrimString:
			return ir.StringType{}
		case typing.PrimBoolean:
			return ir.BooleanType{}
		case typing.PrimEntityID:
			return ir.EntityType{}
		default:
			return ir.NumberType{}
		}
	case *typing.ComponentType:
		return ir.EntityType{}
	case *typing.CompositeType:
		return ir.EntityType{}
	case *typing.ListType:
		return &ir.ListType{Element: convType(v.Elem)}
	case *typing.OptionalType:
		return convType(v.Elem)
	default:
		return ir.NumberType{}
	}
}
