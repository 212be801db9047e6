package generate

import (
	"blinkc/common"
	"blinkc/ir"
	"blinkc/sem"
)

// Options controls IR generation and serialization behavior.
type Options struct {
	// ModuleName is stamped into the IR `module` field.  Empty means
	// "unnamed".
	ModuleName string

	// IncludeSourceMap embeds the compiled sources into the IR.
	IncludeSourceMap bool

	// PrettyPrint selects indented JSON output.
	PrettyPrint bool

	// Optimize is accepted but not implemented.
	Optimize bool
}

// Generator lowers one typed module into IR.  Ids are assigned sequentially
// from zero, independently per definition kind, in item order; a generator
// must be freshly constructed per compilation so counters never leak between
// modules.
type Generator struct {
	componentID uint32
	ruleID      uint32
	functionID  uint32
	trackerID   uint32
	entityID    uint32
}

// New creates a generator with all id counters at zero.
func New() *Generator {
	return &Generator{}
}

// Generate lowers a typed module into an IR module.  The source text and
// path, when given, feed the source hash and the optional source map;
// extraSources are caller-supplied auxiliary files included in the source
// map verbatim.
func (g *Generator) Generate(typed *sem.TypedModule, opts *Options, source, sourcePath string, extraSources []*ir.SourceFile) (*ir.Module, error) {
	components := []*ir.Component{}
	rules := []*ir.Rule{}
	functions := []*ir.Function{}
	trackers := []*ir.Tracker{}
	var entities []*ir.Entity

	for _, item := range typed.Items {
		switch v := item.(type) {
		case *sem.TypedComponent:
			components = append(components, g.genComponent(v))
		case *sem.TypedRule:
			rules = append(rules, g.genRule(v))
		case *sem.TypedFunction:
			functions = append(functions, g.genFunction(v))
		case *sem.TypedTracker:
			trackers = append(trackers, g.genTracker(v))
		case *sem.TypedEntity:
			entities = append(entities, g.genEntity(v))
		}
	}

	moduleName := opts.ModuleName
	if moduleName == "" {
		moduleName = "unnamed"
	}

	metadata := &ir.Metadata{
		CompiledAt:      timestamp(),
		CompilerVersion: common.Version,
	}
	if source != "" {
		metadata.SourceHash = sourceHash(source)
	}

	var initialState *ir.InitialState
	if len(entities) > 0 {
		initialState = &ir.InitialState{Entities: entities}
	}

	return &ir.Module{
		Version:      ir.Version,
		ModuleName:   moduleName,
		Metadata:     metadata,
		Components:   components,
		Rules:        rules,
		Functions:    functions,
		Trackers:     trackers,
		InitialState: initialState,
		SourceMap:    g.genSourceMap(opts, source, sourcePath, extraSources),
	}, nil
}

// genSourceMap builds the optional source map: the primary source plus any
// auxiliary files, in that order.
func (g *Generator) genSourceMap(opts *Options, source, sourcePath string, extraSources []*ir.SourceFile) *ir.SourceMap {
	if !opts.IncludeSourceMap {
		return nil
	}

	var files []*ir.SourceFile
	if source != "" && sourcePath != "" {
		files = append(files, &ir.SourceFile{
			Path:     sourcePath,
			Content:  source,
			Language: LanguageOf(sourcePath),
		})
	}

	files = append(files, extraSources...)

	if len(files) == 0 {
		return nil
	}

	return &ir.SourceMap{Files: files}
}

func (g *Generator) nextComponentID() uint32 {
	id := g.componentID
	g.componentID++
	return id
}

func (g *Generator) nextRuleID() uint32 {
	id := g.ruleID
	g.ruleID++
	return id
}

func (g *Generator) nextFunctionID() uint32 {
	id := g.functionID
	g.functionID++
	return id
}

func (g *Generator) nextTrackerID() uint32 {
	id := g.trackerID
	g.trackerID++
	return id
}

func (g *Generator) nextEntityID() uint32 {
	id := g.entityID
	g.entityID++
	return id
}
