package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSchema(t *testing.T) {
	t.Run("Valid schema", func(t *testing.T) {
		schema, err := NewSchema("intake",
			Section{
				Title: "Personal",
				Fields: []Field{
					{Name: "name", Kind: KindTextInput},
					{Name: "birthDate", Kind: KindDatePicker},
				},
			},
			Section{
				Title: "Consent",
				Fields: []Field{
					{Name: "privacyConsent", Kind: KindCheckbox},
				},
			},
		)

		assert.NoError(t, err)
		assert.Len(t, schema.Fields(), 3)

		field, ok := schema.Field("birthDate")
		assert.True(t, ok)
		assert.Equal(t, KindDatePicker, field.Kind)
		assert.Equal(t, DefaultDateFormat, field.DateFormat, "date pickers default their format")
	})

	t.Run("Duplicate field names rejected", func(t *testing.T) {
		_, err := NewSchema("intake",
			Section{Fields: []Field{{Name: "email", Kind: KindTextInput}}},
			Section{Fields: []Field{{Name: "email", Kind: KindTextInput}}},
		)

		assert.Error(t, err)
	})

	t.Run("Empty field name rejected", func(t *testing.T) {
		_, err := NewSchema("intake",
			Section{Fields: []Field{{Name: "", Kind: KindTextInput}}},
		)

		assert.Error(t, err)
	})

	t.Run("Unknown field lookup", func(t *testing.T) {
		schema := MustSchema("intake",
			Section{Fields: []Field{{Name: "name", Kind: KindTextInput}}},
		)

		_, ok := schema.Field("missing")
		assert.False(t, ok)
	})
}

func TestStateBindingRoundTrip(t *testing.T) {
	schema := MustSchema("intake",
		Section{Fields: []Field{
			{Name: "name", Kind: KindTextInput, Default: "John"},
			{Name: "privacyConsent", Kind: KindCheckbox},
		}},
	)
	state := NewState(schema)

	t.Run("Defaults seeded", func(t *testing.T) {
		assert.Equal(t, "John", state.Value("name"))
	})

	t.Run("Set writes back to state", func(t *testing.T) {
		binding, err := state.Bind("name")
		assert.NoError(t, err)

		binding.Set("Jane")
		assert.Equal(t, "Jane", state.Value("name"))
		assert.Equal(t, "Jane", binding.StringValue())
	})

	t.Run("Bool value on checkbox", func(t *testing.T) {
		binding, err := state.Bind("privacyConsent")
		assert.NoError(t, err)

		assert.False(t, binding.BoolValue())
		binding.Set(true)
		assert.True(t, binding.BoolValue())
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		_, err := state.Bind("missing")
		assert.Error(t, err)
	})

	t.Run("Values returns a snapshot copy", func(t *testing.T) {
		snapshot := state.Values()
		snapshot["name"] = "mutated"
		assert.NotEqual(t, "mutated", state.Value("name"))
	})
}
