package form

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bindField(t *testing.T, field Field, value interface{}) Binding {
	t.Helper()
	schema := MustSchema("test", Section{Fields: []Field{field}})
	state := NewState(schema)
	if value != nil {
		state.values[field.Name] = value
	}
	binding, err := state.Bind(field.Name)
	assert.NoError(t, err)
	return binding
}

func TestRenderDispatch(t *testing.T) {
	t.Run("Unknown kind renders nothing", func(t *testing.T) {
		binding := bindField(t, Field{Name: "x", Kind: KindTextInput}, nil)

		markup := Render(Kind("radioGroup"), binding, Config{})
		assert.Equal(t, template.HTML(""), markup)
	})

	t.Run("Text input", func(t *testing.T) {
		field := Field{Name: "name", Kind: KindTextInput, Placeholder: "John Doe"}
		binding := bindField(t, field, "Jane")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `name="name"`)
		assert.Contains(t, markup, `value="Jane"`)
		assert.Contains(t, markup, `placeholder="John Doe"`)
	})

	t.Run("Text input with icon", func(t *testing.T) {
		field := Field{Name: "email", Kind: KindTextInput, IconRef: "/assets/icons/email.svg"}
		binding := bindField(t, field, nil)

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `src="/assets/icons/email.svg"`)
	})

	t.Run("Textarea", func(t *testing.T) {
		field := Field{Name: "allergies", Kind: KindTextarea}
		binding := bindField(t, field, "Peanuts")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, "<textarea")
		assert.Contains(t, markup, "Peanuts")
	})

	t.Run("Phone renders tel input", func(t *testing.T) {
		field := Field{Name: "phone", Kind: KindPhone}
		binding := bindField(t, field, "+15551234567")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `type="tel"`)
		assert.Contains(t, markup, `value="+15551234567"`)
	})

	t.Run("Checkbox reflects checked state", func(t *testing.T) {
		field := Field{Name: "privacyConsent", Kind: KindCheckbox, Label: "I agree"}
		binding := bindField(t, field, true)

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `type="checkbox"`)
		assert.Contains(t, markup, "checked")
		assert.Contains(t, markup, "I agree")
	})

	t.Run("Select marks current option", func(t *testing.T) {
		field := Field{
			Name:        "gender",
			Kind:        KindSelect,
			Placeholder: "Select gender",
			Options: []Option{
				{Value: "Male", Label: "Male"},
				{Value: "Female", Label: "Female"},
			},
		}
		binding := bindField(t, field, "Female")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `<option value="Female" selected>`)
		assert.NotContains(t, markup, `<option value="Male" selected>`)
		assert.Contains(t, markup, "Select gender")
	})

	t.Run("Custom renderer output passes through", func(t *testing.T) {
		field := Field{
			Name: "upload",
			Kind: KindCustom,
			Custom: func(binding Binding) template.HTML {
				return template.HTML(`<input type="file" name="` + binding.Name() + `"/>`)
			},
		}
		binding := bindField(t, field, nil)

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `type="file"`)
		assert.Contains(t, markup, `name="upload"`)
	})

	t.Run("Custom kind without renderer renders nothing", func(t *testing.T) {
		field := Field{Name: "upload", Kind: KindCustom}
		binding := bindField(t, field, nil)

		markup := Render(field.Kind, binding, field.config())
		assert.Equal(t, template.HTML(""), markup)
	})
}

func TestRenderDatePicker(t *testing.T) {
	t.Run("ISO value shown in display format", func(t *testing.T) {
		field := Field{Name: "birthDate", Kind: KindDatePicker, DateFormat: DefaultDateFormat}
		binding := bindField(t, field, "1990-04-12")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `value="04/12/1990"`)
		assert.Contains(t, markup, `data-date-format="MM/dd/yyyy"`)
	})

	t.Run("Unparseable value rendered as-is", func(t *testing.T) {
		field := Field{Name: "birthDate", Kind: KindDatePicker, DateFormat: DefaultDateFormat}
		binding := bindField(t, field, "not-a-date")

		markup := string(Render(field.Kind, binding, field.config()))
		assert.Contains(t, markup, `value="not-a-date"`)
	})
}

func TestRenderField(t *testing.T) {
	t.Run("Label above control", func(t *testing.T) {
		field := Field{Name: "name", Kind: KindTextInput, Label: "Full name"}
		binding := bindField(t, field, nil)

		markup := string(RenderField(field, binding))
		labelIndex := strings.Index(markup, "Full name")
		inputIndex := strings.Index(markup, "<input")
		assert.True(t, labelIndex >= 0)
		assert.True(t, inputIndex >= 0)
		assert.Less(t, labelIndex, inputIndex)
	})

	t.Run("Checkbox label stays beside the control", func(t *testing.T) {
		field := Field{Name: "privacyConsent", Kind: KindCheckbox, Label: "I agree"}
		binding := bindField(t, field, nil)

		markup := string(RenderField(field, binding))
		labelIndex := strings.Index(markup, "I agree")
		inputIndex := strings.Index(markup, "<input")
		assert.True(t, labelIndex >= 0)
		assert.True(t, inputIndex >= 0)
		assert.Less(t, inputIndex, labelIndex, "checkbox control precedes its label")
	})

	t.Run("Error slot filled after failed validation", func(t *testing.T) {
		field := Field{Name: "email", Kind: KindTextInput, Rules: "required,email"}
		schema := MustSchema("test", Section{Fields: []Field{field}})
		state := NewState(schema)
		state.values["email"] = "broken"
		state.Validate()

		binding, err := state.Bind("email")
		assert.NoError(t, err)

		markup := string(RenderField(field, binding))
		assert.Contains(t, markup, "email must be a valid email address")
	})
}

func TestRenderForm(t *testing.T) {
	schema := MustSchema("patient-intake",
		Section{
			Title: "Personal Information",
			Fields: []Field{
				{Name: "name", Kind: KindTextInput, Label: "Full name"},
			},
		},
		Section{
			Title: "Consent",
			Fields: []Field{
				{Name: "privacyConsent", Kind: KindCheckbox, Label: "I agree"},
			},
		},
	)
	state := NewState(schema)

	markup, err := RenderForm(schema, state, "/api/v1/patients/abc/register")
	assert.NoError(t, err)

	text := string(markup)
	assert.Contains(t, text, `action="/api/v1/patients/abc/register"`)
	assert.Contains(t, text, "Personal Information")
	assert.Contains(t, text, "Consent")
	assert.Contains(t, text, `enctype="multipart/form-data"`)
	assert.Contains(t, text, "<button type=\"submit\"")
}
