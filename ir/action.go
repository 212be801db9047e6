package ir

import "encoding/json"

// Action is a lowered rule action.  Actions serialize with a string tag
// discriminating the variant.  The action vocabulary is a closed set shared
// with downstream engines; emit, add_component, and remove_component are
// schema-only and never generated from source today.
type Action interface {
	irAction()
}

// ModifyAction modifies one component field of an entity.  Op is one of:
// set, add, subtract, multiply, divide.
type ModifyAction struct {
	Entity    Expression `json:"entity"`
	Component string     `json:"component"`
	Field     string     `json:"field"`
	Op        string     `json:"op"`
	Value     Expression `json:"value"`
}

func (*ModifyAction) irAction() {}

func (a *ModifyAction) MarshalJSON() ([]byte, error) {
	type alias ModifyAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"modify", (*alias)(a)})
}

// ScheduleAction schedules a future event.
type ScheduleAction struct {
	Event  string                  `json:"event"`
	Source Expression              `json:"source,omitempty"`
	Delay  Expression              `json:"delay,omitempty"`
	Fields *OrderedMap[Expression] `json:"fields,omitempty"`
}

func (*ScheduleAction) irAction() {}

func (a *ScheduleAction) MarshalJSON() ([]byte, error) {
	type alias ScheduleAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"schedule", (*alias)(a)})
}

// EmitAction emits an immediate event.
type EmitAction struct {
	Event  string                  `json:"event"`
	Fields *OrderedMap[Expression] `json:"fields,omitempty"`
}

func (*EmitAction) irAction() {}

func (a *EmitAction) MarshalJSON() ([]byte, error) {
	type alias EmitAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"emit", (*alias)(a)})
}

// SpawnAction creates a new entity.
type SpawnAction struct {
	Components []*ComponentInit `json:"components"`
}

func (*SpawnAction) irAction() {}

func (a *SpawnAction) MarshalJSON() ([]byte, error) {
	type alias SpawnAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"spawn", (*alias)(a)})
}

// DespawnAction destroys an entity.
type DespawnAction struct {
	Entity Expression `json:"entity"`
}

func (*DespawnAction) irAction() {}

func (a *DespawnAction) MarshalJSON() ([]byte, error) {
	type alias DespawnAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"despawn", (*alias)(a)})
}

// AddComponentAction attaches a component to an entity.
type AddComponentAction struct {
	Entity    Expression     `json:"entity"`
	Component *ComponentInit `json:"component"`
}

func (*AddComponentAction) irAction() {}

func (a *AddComponentAction) MarshalJSON() ([]byte, error) {
	type alias AddComponentAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"add_component", (*alias)(a)})
}

// RemoveComponentAction detaches a component from an entity.
type RemoveComponentAction struct {
	Entity    Expression `json:"entity"`
	Component string     `json:"component"`
}

func (*RemoveComponentAction) irAction() {}

func (a *RemoveComponentAction) MarshalJSON() ([]byte, error) {
	type alias RemoveComponentAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"remove_component", (*alias)(a)})
}

// ConditionalAction guards nested actions with a condition.
type ConditionalAction struct {
	Condition   Expression `json:"condition"`
	ThenActions []Action   `json:"then_actions"`
	ElseActions []Action   `json:"else_actions,omitempty"`
}

func (*ConditionalAction) irAction() {}

func (a *ConditionalAction) MarshalJSON() ([]byte, error) {
	type alias ConditionalAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"conditional", (*alias)(a)})
}

// LoopAction iterates nested actions over a collection.
type LoopAction struct {
	Variable string     `json:"variable"`
	Iterable Expression `json:"iterable"`
	Body     []Action   `json:"body"`
}

func (*LoopAction) irAction() {}

func (a *LoopAction) MarshalJSON() ([]byte, error) {
	type alias LoopAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"loop", (*alias)(a)})
}

// LetAction binds a rule-local variable for the following actions.
type LetAction struct {
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func (*LetAction) irAction() {}

func (a *LetAction) MarshalJSON() ([]byte, error) {
	type alias LetAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"let", (*alias)(a)})
}

// CancelAction cancels a previously scheduled event.
type CancelAction struct {
	Target Expression `json:"target"`
}

func (*CancelAction) irAction() {}

func (a *CancelAction) MarshalJSON() ([]byte, error) {
	type alias CancelAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"cancel", (*alias)(a)})
}

// ComponentInit is a component initializer within spawn and add_component
// actions.  Field order is preserved from the source.
type ComponentInit struct {
	Name   string                  `json:"name"`
	Fields *OrderedMap[Expression] `json:"fields"`
}
