package ir

// Version is the IR format version stamped into every emitted module.
// Downstream engines branch on this string.
const Version = "1.0"

// Module is the compiled IR module: the central contract between the
// compiler and every downstream execution engine.
type Module struct {
	Version    string    `json:"version"`
	ModuleName string    `json:"module"`
	Metadata   *Metadata `json:"metadata,omitempty"`

	Components []*Component `json:"components"`
	Rules      []*Rule      `json:"rules"`
	Functions  []*Function  `json:"functions"`
	Trackers   []*Tracker   `json:"trackers"`

	// Constants is omitted when empty.  Nothing populates it today; it is
	// part of the wire schema consumed by downstream engines.
	Constants *OrderedMap[Value] `json:"constants,omitempty"`

	InitialState *InitialState `json:"initial_state,omitempty"`
	SourceMap    *SourceMap    `json:"source_map,omitempty"`
}

// Metadata is the compiler metadata block.
type Metadata struct {
	CompiledAt      string `json:"compiled_at"`
	CompilerVersion string `json:"compiler_version"`
	SourceHash      string `json:"source_hash,omitempty"`
}

// Component is a compiled component definition.
type Component struct {
	ID     uint32   `json:"id"`
	Name   string   `json:"name"`
	Fields []*Field `json:"fields"`
}

// Field is one compiled component field.
type Field struct {
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	Default Value  `json:"default,omitempty"`
}

// Rule is a compiled rule definition.
type Rule struct {
	ID        uint32     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Trigger   *Trigger   `json:"trigger"`
	Filter    *Filter    `json:"filter,omitempty"`
	Condition Expression `json:"condition,omitempty"`
	Actions   []Action   `json:"actions"`
}

// Trigger describes what fires a rule.  Only event triggers exist today.
type Trigger struct {
	Type     string              `json:"type"`
	Event    string              `json:"event,omitempty"`
	Bindings *OrderedMap[string] `json:"bindings,omitempty"`
}

// Filter restricts a rule to entities carrying the listed components.
type Filter struct {
	Components []string `json:"components,omitempty"`
}

// Function is a compiled function definition.  The body is a single lowered
// expression: the first return's value, or the literal 0.
type Function struct {
	ID         uint32     `json:"id"`
	Name       string     `json:"name"`
	Params     []*Param   `json:"params"`
	ReturnType Type       `json:"return_type"`
	Body       Expression `json:"body"`
}

// Param is one compiled function parameter.
type Param struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Tracker is a compiled tracker binding.
type Tracker struct {
	ID        uint32 `json:"id"`
	Component string `json:"component"`
	Event     string `json:"event"`
}

// InitialState is the entity snapshot built from entity declarations.
type InitialState struct {
	Entities []*Entity `json:"entities"`
}

// Entity is one entity in the initial state.  Component data maps component
// names to field-value maps, preserving source order at both levels.
type Entity struct {
	ID         uint32                          `json:"id"`
	Name       string                          `json:"name,omitempty"`
	Components *OrderedMap[*OrderedMap[Value]] `json:"components"`

	// BoundFunctions is omitted when the entity binds no choice functions.
	BoundFunctions *OrderedMap[*BoundFunction] `json:"bound_functions,omitempty"`
}

// BoundFunction is a compiled choice function bound to an entity.
type BoundFunction struct {
	Params     []*Param   `json:"params"`
	ReturnType Type       `json:"return_type"`
	Body       Expression `json:"body"`

	// Source is the original source text of the function, carried for
	// display purposes when available.
	Source string `json:"source,omitempty"`
}

// SourceMap carries the compiled sources verbatim for debugging.
type SourceMap struct {
	Files []*SourceFile `json:"files"`
}

// SourceFile is one source file entry in the source map.
type SourceFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}
