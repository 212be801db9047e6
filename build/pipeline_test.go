package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinkc/sem"
)

func TestCompileEndToEnd(t *testing.T) {
	mod, err := Compile(`
		component Health {
			current: float
			max: float
		}

		rule on Damaged when Health.current > 0.0 {
			entity.Health.current -= event.amount
		}
	`, &Options{ModuleName: "combat"})
	require.NoError(t, err)

	assert.Equal(t, "1.0", mod.Version)
	assert.Equal(t, "combat", mod.ModuleName)
	assert.Len(t, mod.Components, 1)
	assert.Len(t, mod.Rules, 1)
}

func TestCompileLexError(t *testing.T) {
	_, err := Compile(`component # {}`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character")
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile(`component Health current: float }`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected token")
}

func TestCompileSemanticErrorsBlockGeneration(t *testing.T) {
	_, err := Compile(`
		rule on Tick {
			for e in entities having Character { }
		}
	`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined component 'Character'")
}

func TestCompileReportsAllSemanticErrors(t *testing.T) {
	_, err := Compile(`
		rule on Tick {
			let a = missing_var
			let b = missing_fn(1)
			let c = entity.has(Ghost)
		}
	`, nil)
	require.Error(t, err)

	// Errors are accumulated, not fail-fast, and listed one per line.
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Undefined variable 'missing_var'", lines[0])
	assert.Equal(t, "Undefined function 'missing_fn'", lines[1])
	assert.Equal(t, "Undefined component 'Ghost'", lines[2])
}

func TestCheckReturnsTypedModuleWithErrors(t *testing.T) {
	typed, semErrs, err := Check(`
		rule on Tick {
			let a = missing_var
		}
	`)
	require.NoError(t, err)
	require.NotNil(t, typed)

	require.Len(t, semErrs, 1)
	assert.IsType(t, &sem.UndefinedVariableError{}, semErrs[0])

	// Analysis still yields the full typed module alongside its errors.
	assert.Len(t, typed.Items, 1)
}

func TestCompileToJSONPrettyAndCompact(t *testing.T) {
	src := `component Health { current: float }`

	pretty, err := CompileToJSON(src, &Options{ModuleName: "m", PrettyPrint: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pretty), "{\n"))

	compact, err := CompileToJSON(src, &Options{ModuleName: "m"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(compact), "\n"))

	// Both render the same module.
	var a, b map[string]any
	require.NoError(t, json.Unmarshal(pretty, &a))
	require.NoError(t, json.Unmarshal(compact, &b))
	assert.Equal(t, a["components"], b["components"])
}

func TestCompileToJSONShape(t *testing.T) {
	data, err := CompileToJSON(`
		component Health { current: float }

		goblin = new entity {
			Health { current: 20.0 }
		}
	`, &Options{ModuleName: "demo"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "1.0", decoded["version"])
	assert.Equal(t, "demo", decoded["module"])

	metadata := decoded["metadata"].(map[string]any)
	assert.Equal(t, "0.1.0", metadata["compiler_version"])

	initial := decoded["initial_state"].(map[string]any)
	entities := initial["entities"].([]any)
	require.Len(t, entities, 1)

	entity := entities[0].(map[string]any)
	assert.Equal(t, "goblin", entity["name"])

	components := entity["components"].(map[string]any)
	health := components["Health"].(map[string]any)
	assert.Equal(t, 20.0, health["current"])
}

func TestLoadExtraSources(t *testing.T) {
	dir := t.TempDir()

	bclPath := filepath.Join(dir, "choices.bcl")
	bdlPath := filepath.Join(dir, "world.bdl")
	require.NoError(t, os.WriteFile(bclPath, []byte("choice body"), 0o644))
	require.NoError(t, os.WriteFile(bdlPath, []byte("entity data"), 0o644))

	files, err := LoadExtraSources([]string{bclPath, bdlPath})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "choice body", files[0].Content)
	assert.Equal(t, "bcl", files[0].Language)
	assert.Equal(t, "bdl", files[1].Language)

	_, err = LoadExtraSources([]string{filepath.Join(dir, "missing.bcl")})
	require.Error(t, err)
}

func TestCompileToJSONWithExtraSources(t *testing.T) {
	dir := t.TempDir()
	bdlPath := filepath.Join(dir, "world.bdl")
	require.NoError(t, os.WriteFile(bdlPath, []byte("goblin = new entity { }"), 0o644))

	extras, err := LoadExtraSources([]string{bdlPath})
	require.NoError(t, err)

	data, err := CompileToJSONWithSources(
		`component Health { current: float }`,
		"rules.brl",
		&Options{ModuleName: "m", IncludeSourceMap: true},
		extras,
	)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	sourceMap := decoded["source_map"].(map[string]any)
	files := sourceMap["files"].([]any)
	require.Len(t, files, 2)

	first := files[0].(map[string]any)
	assert.Equal(t, "rules.brl", first["path"])
	assert.Equal(t, "brl", first["language"])

	second := files[1].(map[string]any)
	assert.Equal(t, bdlPath, second["path"])
	assert.Equal(t, "bdl", second["language"])
}

func TestCompileNilOptionsUseDefaults(t *testing.T) {
	mod, err := Compile(`component Health { current: float }`, nil)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", mod.ModuleName)
}
