package generate

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinkc/ir"
	"blinkc/sem"
	"blinkc/syntax"
)

func generateSource(t *testing.T, src string, opts *Options) *ir.Module {
	t.Helper()

	tokens, err := syntax.Tokenize(src)
	require.NoError(t, err)

	mod, err := syntax.Parse(tokens)
	require.NoError(t, err)

	typed, semErrs := sem.Analyze(mod)
	require.Empty(t, semErrs)

	if opts == nil {
		opts = &Options{ModuleName: "test"}
	}

	irMod, err := New().Generate(typed, opts, src, "test.brl", nil)
	require.NoError(t, err)

	return irMod
}

func TestGenerateComponent(t *testing.T) {
	mod := generateSource(t, `
		component Health {
			current: float
			max: float
		}
	`, nil)

	require.Len(t, mod.Components, 1)

	comp := mod.Components[0]
	assert.Equal(t, uint32(0), comp.ID)
	assert.Equal(t, "Health", comp.Name)
	require.Len(t, comp.Fields, 2)
	assert.Equal(t, "current", comp.Fields[0].Name)
	assert.Equal(t, ir.NumberType{}, comp.Fields[0].Type)
}

func TestGenerateSequentialIDsPerKind(t *testing.T) {
	mod := generateSource(t, `
		component A { x: float }
		component B { y: float }

		rule on E1 { }
		rule on E2 { }
	`, nil)

	assert.Equal(t, uint32(0), mod.Components[0].ID)
	assert.Equal(t, uint32(1), mod.Components[1].ID)

	// Rule ids count independently of component ids.
	assert.Equal(t, uint32(0), mod.Rules[0].ID)
	assert.Equal(t, uint32(1), mod.Rules[1].ID)
}

func TestGenerateModifyAction(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float }

		rule on Damaged {
			entity.Health.current -= 10
		}
	`, nil)

	require.Len(t, mod.Rules, 1)

	rule := mod.Rules[0]
	assert.Equal(t, "event", rule.Trigger.Type)
	assert.Equal(t, "Damaged", rule.Trigger.Event)
	require.Len(t, rule.Actions, 1)

	modify, ok := rule.Actions[0].(*ir.ModifyAction)
	require.True(t, ok)

	assert.Equal(t, "Health", modify.Component)
	assert.Equal(t, "current", modify.Field)
	assert.Equal(t, "subtract", modify.Op)
	assert.Equal(t, &ir.VarExpr{Name: "entity"}, modify.Entity)
	assert.Equal(t, &ir.LiteralExpr{Value: ir.NumberValue(10)}, modify.Value)
}

func TestGenerateRuleCondition(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float }

		rule on Damaged when Health.current > 0.0 { }
	`, nil)

	cond, ok := mod.Rules[0].Condition.(*ir.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "gt", cond.Op)
}

func TestGenerateFieldChainLowering(t *testing.T) {
	mod := generateSource(t, `
		rule on Tick {
			let a = entity.Health.current
			let b = event.amount
		}
	`, nil)

	actions := mod.Rules[0].Actions
	require.Len(t, actions, 2)

	// A full entity.component.field chain lowers to a field node.
	letA := actions[0].(*ir.LetAction)
	assert.Equal(t, &ir.FieldExpr{
		Entity:    "entity",
		Component: "Health",
		Field:     "current",
	}, letA.Value)

	// A one-level access falls back to a bare variable named after the field.
	letB := actions[1].(*ir.LetAction)
	assert.Equal(t, &ir.VarExpr{Name: "amount"}, letB.Value)
}

func TestGenerateConditionalNesting(t *testing.T) {
	mod := generateSource(t, `
		rule on Tick {
			if 1 > 0 {
				let a = 1
			} else if 2 > 0 {
				let b = 2
			} else {
				let c = 3
			}
		}
	`, nil)

	cond := mod.Rules[0].Actions[0].(*ir.ConditionalAction)
	require.Len(t, cond.ThenActions, 1)

	// An else-if chain lowers to a single nested conditional.
	require.Len(t, cond.ElseActions, 1)

	nested := cond.ElseActions[0].(*ir.ConditionalAction)
	require.Len(t, nested.ThenActions, 1)
	require.Len(t, nested.ElseActions, 1)
	assert.IsType(t, &ir.LetAction{}, nested.ElseActions[0])
}

func TestGenerateLoopAction(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float }

		rule on Tick {
			for e in entities having Health {
				delete e
			}
		}
	`, nil)

	loop := mod.Rules[0].Actions[0].(*ir.LoopAction)
	assert.Equal(t, "e", loop.Variable)
	require.Len(t, loop.Body, 1)
	assert.IsType(t, &ir.DespawnAction{}, loop.Body[0])

	// `entities having` has no expression lowering and degrades to null.
	assert.Equal(t, &ir.LiteralExpr{Value: ir.NullValue{}}, loop.Iterable)
}

func TestGenerateScheduleAction(t *testing.T) {
	mod := generateSource(t, `
		rule on PoisonApplied {
			schedule [delay: 2.0] PoisonTick { amount: 5 }
		}
	`, nil)

	sched := mod.Rules[0].Actions[0].(*ir.ScheduleAction)
	assert.Equal(t, "PoisonTick", sched.Event)
	assert.Equal(t, &ir.LiteralExpr{Value: ir.NumberValue(2)}, sched.Delay)

	require.NotNil(t, sched.Fields)
	amount, ok := sched.Fields.Get("amount")
	require.True(t, ok)
	assert.Equal(t, &ir.LiteralExpr{Value: ir.NumberValue(5)}, amount)
}

func TestGenerateCancelAndSpawn(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float }

		rule on Spawn {
			create entity { Health { current: 10.0 } }
			cancel entity
		}
	`, nil)

	actions := mod.Rules[0].Actions
	require.Len(t, actions, 2)

	spawn := actions[0].(*ir.SpawnAction)
	require.Len(t, spawn.Components, 1)
	assert.Equal(t, "Health", spawn.Components[0].Name)

	cancel := actions[1].(*ir.CancelAction)
	assert.Equal(t, &ir.VarExpr{Name: "entity"}, cancel.Target)
}

func TestGenerateWhileAndExprStmtDropped(t *testing.T) {
	mod := generateSource(t, `
		rule on Tick {
			while 1 > 0 {
				let a = 1
			}
			floor(1.0)
			let b = 2
		}
	`, nil)

	// Only the trailing let survives lowering.
	actions := mod.Rules[0].Actions
	require.Len(t, actions, 1)
	assert.IsType(t, &ir.LetAction{}, actions[0])
}

func TestGenerateFunctionBody(t *testing.T) {
	mod := generateSource(t, `
		fn damage_bonus(base: float): float {
			let scaled = base * 1.5
			return scaled
		}

		fn no_return(x: float) {
			let y = x
		}
	`, nil)

	require.Len(t, mod.Functions, 2)

	bonus := mod.Functions[0]
	assert.Equal(t, "damage_bonus", bonus.Name)
	assert.Equal(t, ir.NumberType{}, bonus.ReturnType)
	assert.Equal(t, &ir.VarExpr{Name: "scaled"}, bonus.Body)

	// A body without a valued return lowers to the literal 0.
	assert.Equal(t, &ir.LiteralExpr{Value: ir.NumberValue(0)}, mod.Functions[1].Body)
}

func TestGenerateTracker(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float }
		tracker Health on HealthChanged
	`, nil)

	require.Len(t, mod.Trackers, 1)
	assert.Equal(t, uint32(0), mod.Trackers[0].ID)
	assert.Equal(t, "Health", mod.Trackers[0].Component)
	assert.Equal(t, "HealthChanged", mod.Trackers[0].Event)
}

func TestGenerateInitialState(t *testing.T) {
	mod := generateSource(t, `
		component Health { current: float max: float }

		goblin = new entity {
			Health { current: 20.0 max: 20.0 }
		}
	`, nil)

	require.NotNil(t, mod.InitialState)
	require.Len(t, mod.InitialState.Entities, 1)

	entity := mod.InitialState.Entities[0]
	assert.Equal(t, uint32(0), entity.ID)
	assert.Equal(t, "goblin", entity.Name)

	health, ok := entity.Components.Get("Health")
	require.True(t, ok)

	current, ok := health.Get("current")
	require.True(t, ok)
	assert.Equal(t, ir.NumberValue(20), current)

	assert.Nil(t, entity.BoundFunctions)
}

func TestGenerateNoEntitiesNoInitialState(t *testing.T) {
	mod := generateSource(t, `component Health { current: float }`, nil)
	assert.Nil(t, mod.InitialState)
}

func TestGenerateMetadata(t *testing.T) {
	mod := generateSource(t, `component Health { current: float }`, nil)

	require.NotNil(t, mod.Metadata)
	assert.Equal(t, "0.1.0", mod.Metadata.CompilerVersion)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), mod.Metadata.CompiledAt)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), mod.Metadata.SourceHash)
}

func TestGenerateModuleNameDefaults(t *testing.T) {
	mod := generateSource(t, `component Health { current: float }`, &Options{})
	assert.Equal(t, "unnamed", mod.ModuleName)
}

func TestGenerateSourceMap(t *testing.T) {
	src := `component Health { current: float }`

	mod := generateSource(t, src, &Options{ModuleName: "m", IncludeSourceMap: true})
	require.NotNil(t, mod.SourceMap)
	require.Len(t, mod.SourceMap.Files, 1)

	file := mod.SourceMap.Files[0]
	assert.Equal(t, "test.brl", file.Path)
	assert.Equal(t, src, file.Content)
	assert.Equal(t, "brl", file.Language)

	mod = generateSource(t, src, &Options{ModuleName: "m"})
	assert.Nil(t, mod.SourceMap)
}

func TestGenerateSourceMapWithExtraSources(t *testing.T) {
	src := `component Health { current: float }`

	tokens, err := syntax.Tokenize(src)
	require.NoError(t, err)

	parsed, err := syntax.Parse(tokens)
	require.NoError(t, err)

	typed, semErrs := sem.Analyze(parsed)
	require.Empty(t, semErrs)

	extras := []*ir.SourceFile{
		{Path: "choices.bcl", Content: "choice body", Language: "bcl"},
		{Path: "world.bdl", Content: "entity data", Language: "bdl"},
	}

	mod, err := New().Generate(typed, &Options{ModuleName: "m", IncludeSourceMap: true}, src, "rules.brl", extras)
	require.NoError(t, err)

	require.NotNil(t, mod.SourceMap)
	require.Len(t, mod.SourceMap.Files, 3)

	// The primary source comes first, followed by the extras in order.
	assert.Equal(t, "rules.brl", mod.SourceMap.Files[0].Path)
	assert.Equal(t, "brl", mod.SourceMap.Files[0].Language)
	assert.Equal(t, "choices.bcl", mod.SourceMap.Files[1].Path)
	assert.Equal(t, "world.bdl", mod.SourceMap.Files[2].Path)
}

func TestGenerateDeterministic(t *testing.T) {
	src := `
		component Health { current: float }

		rule on Damaged when Health.current > 0.0 {
			entity.Health.current -= 10
		}

		goblin = new entity {
			Health { current: 20.0 }
		}
	`

	first := generateSource(t, src, nil)
	second := generateSource(t, src, nil)

	// Everything except the compilation timestamp is reproducible.
	first.Metadata = nil
	second.Metadata = nil

	diff := cmp.Diff(first, second, cmp.AllowUnexported(ir.OrderedMap[ir.Value]{}, ir.OrderedMap[*ir.OrderedMap[ir.Value]]{}))
	assert.Empty(t, diff)
}

func TestGenerateEmptyListsNotNil(t *testing.T) {
	mod := generateSource(t, ``, nil)

	assert.NotNil(t, mod.Components)
	assert.NotNil(t, mod.Rules)
	assert.NotNil(t, mod.Functions)
	assert.NotNil(t, mod.Trackers)
}

func TestLanguageOf(t *testing.T) {
	assert.Equal(t, "brl", LanguageOf("rules.brl"))
	assert.Equal(t, "bcl", LanguageOf("choices.bcl"))
	assert.Equal(t, "bdl", LanguageOf("data.bdl"))
	assert.Equal(t, "brl", LanguageOf("whatever.txt"))
}

func TestSourceHashStable(t *testing.T) {
	a := sourceHash("component Health { current: float }")
	b := sourceHash("component Health { current: float }")
	c := sourceHash("component Mana { current: float }")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}
