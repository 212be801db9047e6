package sem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinkc/syntax"
	"blinkc/typing"
)

func analyzeSource(t *testing.T, src string) (*TypedModule, []Error) {
	t.Helper()

	tokens, err := syntax.Tokenize(src)
	require.NoError(t, err)

	mod, err := syntax.Parse(tokens)
	require.NoError(t, err)

	return Analyze(mod)
}

func TestAnalyzeValidModule(t *testing.T) {
	typed, errs := analyzeSource(t, `
		component Health {
			current: float
			max: float
		}

		rule on Damaged when Health.current > 0.0 {
			entity.Health.current -= event.amount
		}
	`)

	assert.Empty(t, errs)
	require.Len(t, typed.Items, 2)

	comp, ok := typed.Items[0].(*TypedComponent)
	require.True(t, ok)
	assert.Equal(t, "Health", comp.Name)
	require.Len(t, comp.Fields, 2)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), comp.Fields[0].Type)

	info, ok := typed.Symbols.GetComponent("Health")
	require.True(t, ok)
	assert.Len(t, info.Fields, 2)
}

func TestAnalyzeRuleScopeBindings(t *testing.T) {
	typed, errs := analyzeSource(t, `
		component Health { current: float }

		rule on Tick when entity == event {
			let e = entity
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[1].(*TypedRule)
	let := rule.Body.Statements[0].(*TypedLet)

	// `entity` and `event` are bound as entity ids in rule scope.
	assert.Equal(t, typing.PrimType(typing.PrimEntityID), let.VarType)
	assert.Equal(t, typing.PrimType(typing.PrimBoolean), rule.Condition.Type)
}

func TestAnalyzeComponentFieldResolution(t *testing.T) {
	typed, errs := analyzeSource(t, `
		component Health { current: float }

		rule on Tick {
			let x = Health.current
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[1].(*TypedRule)
	let := rule.Body.Statements[0].(*TypedLet)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), let.VarType)
}

func TestAnalyzeUndefinedComponent(t *testing.T) {
	_, errs := analyzeSource(t, `
		rule on Tick {
			for e in entities having Character { }
		}
	`)

	require.Len(t, errs, 1)
	assert.IsType(t, &UndefinedComponentError{}, errs[0])
	assert.Equal(t, "Undefined component 'Character'", errs[0].Error())
}

func TestAnalyzeAccumulatesErrors(t *testing.T) {
	_, errs := analyzeSource(t, `
		rule on Tick {
			let a = missing_var
			let b = missing_fn(1)
			let c = entity.has(Ghost)
		}
	`)

	require.Len(t, errs, 3)
	assert.IsType(t, &UndefinedVariableError{}, errs[0])
	assert.IsType(t, &UndefinedFunctionError{}, errs[1])
	assert.IsType(t, &UndefinedComponentError{}, errs[2])
}

func TestAnalyzeAlwaysReturnsTypedModule(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Tick {
			let a = missing_var
		}
	`)

	require.NotEmpty(t, errs)
	require.NotNil(t, typed)
	assert.Len(t, typed.Items, 1)
}

func TestAnalyzeArithmeticTypePreference(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Tick {
			let i = 1 + 2
			let f = 1 + 2.0
			let d = 1 + 2.5d
			let m = 2.5d * 2.0
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[0].(*TypedRule)
	types := make([]typing.Type, 4)
	for i, stmt := range rule.Body.Statements {
		types[i] = stmt.(*TypedLet).VarType
	}

	assert.Equal(t, typing.PrimType(typing.PrimInteger), types[0])
	assert.Equal(t, typing.PrimType(typing.PrimFloat), types[1])
	assert.Equal(t, typing.PrimType(typing.PrimDecimal), types[2])

	// Float beats decimal when both appear.
	assert.Equal(t, typing.PrimType(typing.PrimFloat), types[3])
}

func TestAnalyzeBuiltins(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Tick {
			let f = floor(1.9)
			let r = random()
			let n = len([1, 2, 3])
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[0].(*TypedRule)
	assert.Equal(t, typing.PrimType(typing.PrimInteger), rule.Body.Statements[0].(*TypedLet).VarType)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), rule.Body.Statements[1].(*TypedLet).VarType)
	assert.Equal(t, typing.PrimType(typing.PrimInteger), rule.Body.Statements[2].(*TypedLet).VarType)
}

func TestAnalyzeNullAndList(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Tick {
			let n = null
			let xs = [1, 2.0]
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[0].(*TypedRule)

	nullType := rule.Body.Statements[0].(*TypedLet).VarType
	opt, ok := nullType.(*typing.OptionalType)
	require.True(t, ok)
	assert.Equal(t, typing.PrimType(typing.PrimUnknown), opt.Elem)

	// The list element type comes from the first element; later elements of
	// other types are accepted.
	listType := rule.Body.Statements[1].(*TypedLet).VarType
	lt, ok := listType.(*typing.ListType)
	require.True(t, ok)
	assert.Equal(t, typing.PrimType(typing.PrimInteger), lt.Elem)
}

func TestAnalyzeLetAnnotationWins(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Tick {
			let x: float = 1
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[0].(*TypedRule)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), rule.Body.Statements[0].(*TypedLet).VarType)
}

func TestAnalyzeForLoopVariable(t *testing.T) {
	typed, errs := analyzeSource(t, `
		component Health { current: float }

		rule on Tick {
			for e in entities having Health {
				let x = e
			}
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[1].(*TypedRule)
	forStmt := rule.Body.Statements[0].(*TypedFor)

	// Iterating a list of entity ids binds the loop variable as an entity id.
	lt, ok := forStmt.Iterable.Type.(*typing.ListType)
	require.True(t, ok)
	assert.Equal(t, typing.PrimType(typing.PrimEntityID), lt.Elem)

	let := forStmt.Body.Statements[0].(*TypedLet)
	assert.Equal(t, typing.PrimType(typing.PrimEntityID), let.VarType)
}

func TestAnalyzeTrackerValidation(t *testing.T) {
	_, errs := analyzeSource(t, `tracker Ghost on Tick`)

	require.Len(t, errs, 1)
	assert.Equal(t, "Undefined component 'Ghost'", errs[0].Error())

	typed, errs := analyzeSource(t, `
		component Health { current: float }
		tracker Health on HealthChanged
	`)

	assert.Empty(t, errs)
	require.Len(t, typed.Symbols.Trackers(), 1)
	assert.Equal(t, "HealthChanged", typed.Symbols.Trackers()[0].Event)
}

func TestAnalyzeFunctionSignature(t *testing.T) {
	typed, errs := analyzeSource(t, `
		fn heal_amount(base: float): float {
			return base * 1.5
		}

		rule on Heal {
			let h = heal_amount(10.0)
		}
	`)

	assert.Empty(t, errs)

	info, ok := typed.Symbols.GetFunction("heal_amount")
	require.True(t, ok)
	require.Len(t, info.Params, 1)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), info.Return)

	rule := typed.Items[1].(*TypedRule)
	assert.Equal(t, typing.PrimType(typing.PrimFloat), rule.Body.Statements[0].(*TypedLet).VarType)
}

func TestAnalyzeCastAndClone(t *testing.T) {
	typed, errs := analyzeSource(t, `
		rule on Spawn {
			let i = 2.5 as integer
			let c = clone @goblin
		}
	`)

	assert.Empty(t, errs)

	rule := typed.Items[0].(*TypedRule)
	assert.Equal(t, typing.PrimType(typing.PrimInteger), rule.Body.Statements[0].(*TypedLet).VarType)
	assert.Equal(t, typing.PrimType(typing.PrimEntityID), rule.Body.Statements[1].(*TypedLet).VarType)
}

func TestAnalyzeEntityInits(t *testing.T) {
	_, errs := analyzeSource(t, `
		component Health { current: float }

		goblin = new entity {
			Health { current: 20.0 }
			Ghost { x: 1 }
		}
	`)

	require.Len(t, errs, 1)
	assert.Equal(t, "Undefined component 'Ghost'", errs[0].Error())
}

func TestAnalyzeImportsDropped(t *testing.T) {
	typed, errs := analyzeSource(t, `
		import core.combat

		component Health { current: float }
	`)

	assert.Empty(t, errs)

	// Imports do not survive analysis.
	require.Len(t, typed.Items, 1)
	assert.IsType(t, &TypedComponent{}, typed.Items[0])
}
