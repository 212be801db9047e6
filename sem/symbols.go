package sem

import "blinkc/typing"

// SymbolTable tracks the module-level definitions visible during analysis:
// components, functions (declared and built-in), and tracker bindings.  It is
// populated by the collection pass and read-only afterward.
type SymbolTable struct {
	components map[string]*ComponentInfo
	functions  map[string]*FunctionInfo
	trackers   []*TrackerInfo
}

// ComponentInfo records one component definition.
type ComponentInfo struct {
	Name   string
	Fields map[string]typing.Type
}

// FunctionInfo records one function signature.
type FunctionInfo struct {
	Name   string
	Params []FunctionParam
	Return typing.Type
}

// FunctionParam is one named parameter of a function signature.
type FunctionParam struct {
	Name string
	Type typing.Type
}

// TrackerInfo records one tracker binding.
type TrackerInfo struct {
	Component string
	Event     string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		components: make(map[string]*ComponentInfo),
		functions:  make(map[string]*FunctionInfo),
	}
}

// AddComponent registers a component definition.  A later definition of the
// same name shadows the earlier one.
func (st *SymbolTable) AddComponent(name string, fields map[string]typing.Type) {
	st.components[name] = &ComponentInfo{Name: name, Fields: fields}
}

// GetComponent looks up a component by name.
func (st *SymbolTable) GetComponent(name string) (*ComponentInfo, bool) {
	info, ok := st.components[name]
	return info, ok
}

// AddFunction registers a function signature.
func (st *SymbolTable) AddFunction(name string, params []FunctionParam, ret typing.Type) {
	st.functions[name] = &FunctionInfo{Name: name, Params: params, Return: ret}
}

// GetFunction looks up a function by name.
func (st *SymbolTable) GetFunction(name string) (*FunctionInfo, bool) {
	info, ok := st.functions[name]
	return info, ok
}

// AddTracker registers a tracker binding.
func (st *SymbolTable) AddTracker(component, event string) {
	st.trackers = append(st.trackers, &TrackerInfo{Component: component, Event: event})
}

// Trackers returns the tracker bindings in registration order.
func (st *SymbolTable) Trackers() []*TrackerInfo {
	return st.trackers
}
