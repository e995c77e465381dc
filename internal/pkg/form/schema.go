package form

import (
	"fmt"
	"html/template"
)

// Kind is the closed set of renderable field variants. Anything outside this
// enumeration renders nothing.
type Kind string

const (
	KindTextInput  Kind = "textInput"
	KindTextarea   Kind = "textarea"
	KindCheckbox   Kind = "checkbox"
	KindPhone      Kind = "phone"
	KindDatePicker Kind = "datePicker"
	KindSelect     Kind = "select"
	KindCustom     Kind = "custom"
)

const DefaultDateFormat = "MM/dd/yyyy"

// Option is one selectable entry of a select field, supplied entirely by the
// schema author.
type Option struct {
	Value string
	Label string
}

// CustomRenderer supplies the markup for a KindCustom field. The renderer
// itself contributes nothing for this kind.
type CustomRenderer func(binding Binding) template.HTML

// Field is one named, typed, validated entry of a schema.
type Field struct {
	Name           string
	Kind           Kind
	Label          string
	Placeholder    string
	IconRef        string
	Disabled       bool
	DateFormat     string
	ShowTimeSelect bool
	Options        []Option
	Custom         CustomRenderer
	// Rules is a validator tag expression evaluated against the field value
	// at submit time (and incrementally on change).
	Rules   string
	Default interface{}
}

// Config is the per-render configuration bundle accepted by Render. It mirrors
// the renderable subset of Field so callers can render ad-hoc bindings too.
type Config struct {
	Label          string
	Placeholder    string
	IconRef        string
	Disabled       bool
	DateFormat     string
	ShowTimeSelect bool
	Options        []Option
	Custom         CustomRenderer
}

func (f Field) config() Config {
	return Config{
		Label:          f.Label,
		Placeholder:    f.Placeholder,
		IconRef:        f.IconRef,
		Disabled:       f.Disabled,
		DateFormat:     f.DateFormat,
		ShowTimeSelect: f.ShowTimeSelect,
		Options:        f.Options,
		Custom:         f.Custom,
	}
}

// Section groups fields for presentation. Grouping carries no validation
// semantics.
type Section struct {
	Title  string
	Fields []Field
}

// Schema is the declarative description of one form. Field names are unique
// across all sections.
type Schema struct {
	Name     string
	Sections []Section

	byName map[string]Field
	order  []string
}

// NewSchema builds a schema and rejects duplicate field names.
func NewSchema(name string, sections ...Section) (*Schema, error) {
	schema := &Schema{
		Name:     name,
		Sections: sections,
		byName:   make(map[string]Field),
	}
	for _, section := range sections {
		for _, field := range section.Fields {
			if field.Name == "" {
				return nil, fmt.Errorf("schema %s: field with empty name", name)
			}
			if _, exists := schema.byName[field.Name]; exists {
				return nil, fmt.Errorf("schema %s: duplicate field name %s", name, field.Name)
			}
			if field.DateFormat == "" {
				field.DateFormat = DefaultDateFormat
			}
			schema.byName[field.Name] = field
			schema.order = append(schema.order, field.Name)
		}
	}
	return schema, nil
}

// MustSchema is for fixed schemas defined in code, where a duplicate name is a
// programming error.
func MustSchema(name string, sections ...Section) *Schema {
	schema, err := NewSchema(name, sections...)
	if err != nil {
		panic(err)
	}
	return schema
}

func (s *Schema) Field(name string) (Field, bool) {
	field, ok := s.byName[name]
	return field, ok
}

// Fields returns every field in declaration order.
func (s *Schema) Fields() []Field {
	fields := make([]Field, 0, len(s.order))
	for _, name := range s.order {
		fields = append(fields, s.byName[name])
	}
	return fields
}
