package form

import (
	"strings"

	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Validate runs every field's rules against the full value snapshot, fills the
// per-field error map and reports overall pass/fail. It is synchronous; no
// remote call happens before it passes.
func (s *State) Validate() bool {
	valid := true
	for _, field := range s.schema.Fields() {
		if !s.ValidateField(field.Name) {
			valid = false
		}
	}
	return valid
}

// ValidateField validates a single field and updates its error slot. Unknown
// names report invalid without touching the error map.
func (s *State) ValidateField(name string) bool {
	field, ok := s.schema.Field(name)
	if !ok {
		return false
	}

	if message := s.fieldError(field); message != "" {
		s.errors[name] = message
		return false
	}
	delete(s.errors, name)
	return true
}

func (s *State) fieldError(field Field) string {
	value := s.values[field.Name]
	// Untouched fields have no stored value; validate the zero value of the
	// kind instead of a nil interface.
	if value == nil {
		if field.Kind == KindCheckbox {
			value = false
		} else {
			value = ""
		}
	}

	// Select fields constrain values to their option list even without an
	// explicit oneof rule; options may be loaded at runtime.
	if field.Kind == KindSelect && len(field.Options) > 0 {
		if text, ok := value.(string); ok && text != "" && !optionValue(field.Options, text) {
			return field.Name + " is not one of the available options"
		}
	}

	if field.Rules == "" {
		return ""
	}
	err := utils.ValidateVar(value, field.Rules)
	if err == nil {
		return ""
	}
	return formatFieldError(field, err)
}

func optionValue(options []Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// formatFieldError turns the first validator failure into the inline message
// shown under the control. Var-level validation loses struct field names, so
// the schema name fills in.
func formatFieldError(field Field, err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return field.Name + " is invalid"
	}

	first := validationErrors[0]
	tag := first.Tag()
	message, known := constvars.CustomValidationErrorMessages[tag]
	if !known {
		message = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			message = strings.Replace(message, "%s", strings.Join(strings.Fields(first.Param()), ", "), 1)
		} else {
			message = strings.Replace(message, "%s", first.Param(), 1)
		}
	}
	return field.Name + " " + message
}
