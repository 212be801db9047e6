package sem

import "blinkc/typing"

// defineBuiltins seeds the symbol table with the built-in function
// signatures.  Integer arguments coerce to float at the call site, so the
// numeric builtins all take floats.
func defineBuiltins(st *SymbolTable) {
	float := typing.PrimType(typing.PrimFloat)
	integer := typing.PrimType(typing.PrimInteger)

	st.AddFunction("min", []FunctionParam{{"a", float}, {"b", float}}, float)
	st.AddFunction("max", []FunctionParam{{"a", float}, {"b", float}}, float)
	st.AddFunction("floor", []FunctionParam{{"x", float}}, integer)
	st.AddFunction("ceil", []FunctionParam{{"x", float}}, integer)
	st.AddFunction("round", []FunctionParam{{"x", float}}, integer)
	st.AddFunction("abs", []FunctionParam{{"x", float}}, float)
	st.AddFunction("random", nil, float)
	st.AddFunction("random_range", []FunctionParam{{"min", float}, {"max", float}}, float)
	st.AddFunction("len", []FunctionParam{
		{"list", &typing.ListType{Elem: typing.PrimType(typing.PrimUnknown)}},
	}, integer)
}
