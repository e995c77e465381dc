package form

import "fmt"

// State is the live value/error mapping for one in-progress form session. It
// is owned by exactly one session and is not safe for concurrent writers.
type State struct {
	schema *Schema
	values map[string]interface{}
	errors map[string]string
}

// NewState seeds a state from the schema defaults.
func NewState(schema *Schema) *State {
	state := &State{
		schema: schema,
		values: make(map[string]interface{}),
		errors: make(map[string]string),
	}
	for _, field := range schema.Fields() {
		if field.Default != nil {
			state.values[field.Name] = field.Default
		}
	}
	return state
}

func (s *State) Schema() *Schema {
	return s.schema
}

// Bind returns the value/onChange handle for one named field. Every name a
// renderer is called with must exist in the schema bound to this state.
func (s *State) Bind(name string) (Binding, error) {
	if _, ok := s.schema.Field(name); !ok {
		return Binding{}, fmt.Errorf("form state: unknown field %s", name)
	}
	return Binding{name: name, state: s}, nil
}

func (s *State) Value(name string) interface{} {
	return s.values[name]
}

func (s *State) Error(name string) string {
	return s.errors[name]
}

// Values returns a copy of the current value snapshot.
func (s *State) Values() map[string]interface{} {
	snapshot := make(map[string]interface{}, len(s.values))
	for name, value := range s.values {
		snapshot[name] = value
	}
	return snapshot
}

func (s *State) set(name string, value interface{}) {
	s.values[name] = value
}

// Binding wires one named slot of a State to a rendered control.
type Binding struct {
	name  string
	state *State
}

func (b Binding) Name() string {
	return b.name
}

func (b Binding) Value() interface{} {
	return b.state.Value(b.name)
}

func (b Binding) StringValue() string {
	value := b.state.Value(b.name)
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func (b Binding) BoolValue() bool {
	value, _ := b.state.Value(b.name).(bool)
	return value
}

// Set is the onChange path: it writes the new value into the state and
// re-validates that one field.
func (b Binding) Set(value interface{}) {
	b.state.set(b.name, value)
	b.state.ValidateField(b.name)
}

func (b Binding) Error() string {
	return b.state.Error(b.name)
}
