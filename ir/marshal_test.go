package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[Value]()
	m.Set("zebra", NumberValue(1))
	m.Set("apple", NumberValue(2))
	m.Set("mango", NumberValue(3))

	assert.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, marshal(t, m))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
}

func TestOrderedMapSetOverwrites(t *testing.T) {
	m := NewOrderedMap[Value]()
	m.Set("a", NumberValue(1))
	m.Set("b", NumberValue(2))
	m.Set("a", NumberValue(9))

	require.Equal(t, 2, m.Len())

	// Overwriting keeps the original position.
	assert.Equal(t, `{"a":9,"b":2}`, marshal(t, m))
}

func TestValueMarshalUntagged(t *testing.T) {
	assert.Equal(t, `null`, marshal(t, NullValue{}))
	assert.Equal(t, `true`, marshal(t, BoolValue(true)))
	assert.Equal(t, `42.5`, marshal(t, NumberValue(42.5)))
	assert.Equal(t, `"hi"`, marshal(t, StringValue("hi")))
	assert.Equal(t, `[1,"two"]`, marshal(t, ListValue{NumberValue(1), StringValue("two")}))
}

func TestTypeMarshalTagged(t *testing.T) {
	assert.Equal(t, `{"type":"number"}`, marshal(t, NumberType{}))
	assert.Equal(t, `{"type":"string"}`, marshal(t, StringType{}))
	assert.Equal(t, `{"type":"boolean"}`, marshal(t, BooleanType{}))
	assert.Equal(t, `{"type":"entity"}`, marshal(t, EntityType{}))
	assert.Equal(t,
		`{"type":"list","element":{"type":"number"}}`,
		marshal(t, &ListType{Element: NumberType{}}))
	assert.Equal(t,
		`{"type":"map","key":{"type":"string"},"value":{"type":"entity"}}`,
		marshal(t, &MapType{Key: StringType{}, Value: EntityType{}}))
}

func TestExpressionMarshalTagged(t *testing.T) {
	assert.Equal(t,
		`{"type":"literal","value":10}`,
		marshal(t, &LiteralExpr{Value: NumberValue(10)}))

	assert.Equal(t,
		`{"type":"var","name":"entity"}`,
		marshal(t, &VarExpr{Name: "entity"}))

	assert.Equal(t,
		`{"type":"field","entity":"entity","component":"Health","field":"current"}`,
		marshal(t, &FieldExpr{Entity: "entity", Component: "Health", Field: "current"}))

	assert.Equal(t,
		`{"type":"binary","op":"gt","left":{"type":"var","name":"x"},"right":{"type":"literal","value":0}}`,
		marshal(t, &BinaryExpr{
			Op:    "gt",
			Left:  &VarExpr{Name: "x"},
			Right: &LiteralExpr{Value: NumberValue(0)},
		}))

	assert.Equal(t,
		`{"type":"call","function":"floor","args":[{"type":"var","name":"x"}]}`,
		marshal(t, &CallExpr{Function: "floor", Args: []Expression{&VarExpr{Name: "x"}}}))
}

func TestActionMarshalTagged(t *testing.T) {
	modify := &ModifyAction{
		Entity:    &VarExpr{Name: "entity"},
		Component: "Health",
		Field:     "current",
		Op:        "subtract",
		Value:     &LiteralExpr{Value: NumberValue(10)},
	}

	assert.Equal(t,
		`{"type":"modify","entity":{"type":"var","name":"entity"},`+
			`"component":"Health","field":"current","op":"subtract",`+
			`"value":{"type":"literal","value":10}}`,
		marshal(t, modify))
}

func TestScheduleActionOmitsEmptyFields(t *testing.T) {
	assert.Equal(t,
		`{"type":"schedule","event":"Tick"}`,
		marshal(t, &ScheduleAction{Event: "Tick"}))
}

func TestConditionalActionOmitsEmptyElse(t *testing.T) {
	cond := &ConditionalAction{
		Condition:   &VarExpr{Name: "ok"},
		ThenActions: []Action{},
	}

	assert.Equal(t,
		`{"type":"conditional","condition":{"type":"var","name":"ok"},"then_actions":[]}`,
		marshal(t, cond))
}

func TestModuleMarshalSkeleton(t *testing.T) {
	mod := &Module{
		Version:    Version,
		ModuleName: "demo",
		Components: []*Component{},
		Rules:      []*Rule{},
		Functions:  []*Function{},
		Trackers:   []*Tracker{},
	}

	// Empty definition lists serialize as [], and optional sections are
	// omitted entirely.
	assert.Equal(t,
		`{"version":"1.0","module":"demo","components":[],"rules":[],"functions":[],"trackers":[]}`,
		marshal(t, mod))
}

func TestModuleMarshalRoundTripsThroughStdJSON(t *testing.T) {
	mod := &Module{
		Version:    Version,
		ModuleName: "demo",
		Components: []*Component{
			{ID: 0, Name: "Health", Fields: []*Field{
				{Name: "current", Type: NumberType{}},
			}},
		},
		Rules:     []*Rule{},
		Functions: []*Function{},
		Trackers:  []*Tracker{},
	}

	data := marshal(t, mod)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))

	components := decoded["components"].([]any)
	require.Len(t, components, 1)

	comp := components[0].(map[string]any)
	assert.Equal(t, "Health", comp["name"])
	assert.Equal(t, float64(0), comp["id"])
}
