package form

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"carepulse-service/internal/pkg/constvars"
)

// strategy produces the on-screen control for one field kind. Strategies are
// stateless beyond the bound value; dispatch is a pure mapping.
type strategy func(binding Binding, cfg Config) template.HTML

var strategies = map[Kind]strategy{
	KindTextInput:  renderTextInput,
	KindTextarea:   renderTextarea,
	KindCheckbox:   renderCheckbox,
	KindPhone:      renderPhone,
	KindDatePicker: renderDatePicker,
	KindSelect:     renderSelect,
	KindCustom:     renderCustom,
}

// Render dispatches a field kind to its rendering strategy. Kinds outside the
// enumeration render nothing; that fallback is deliberate, not an error.
func Render(kind Kind, binding Binding, cfg Config) template.HTML {
	render, ok := strategies[kind]
	if !ok {
		return ""
	}
	return render(binding, cfg)
}

// RenderField wraps the control with the shared chrome: a label above it
// (suppressed for checkboxes, which embed their own) and the error slot for
// the bound name.
func RenderField(field Field, binding Binding) template.HTML {
	control := Render(field.Kind, binding, field.config())
	return execTemplate("fieldWrapper", wrapperData{
		Name:      binding.Name(),
		Label:     field.Label,
		ShowLabel: field.Kind != KindCheckbox && field.Label != "",
		Control:   control,
		Error:     binding.Error(),
	})
}

// RenderForm renders the whole schema against the state, section by section.
func RenderForm(schema *Schema, state *State, action string) (template.HTML, error) {
	var sections []sectionData
	for _, section := range schema.Sections {
		data := sectionData{Title: section.Title}
		for _, field := range section.Fields {
			binding, err := state.Bind(field.Name)
			if err != nil {
				return "", err
			}
			data.Fields = append(data.Fields, RenderField(field, binding))
		}
		sections = append(sections, data)
	}
	return execTemplate("formShell", formData{
		Name:     schema.Name,
		Action:   action,
		Sections: sections,
	}), nil
}

type wrapperData struct {
	Name      string
	Label     string
	ShowLabel bool
	Control   template.HTML
	Error     string
}

type controlData struct {
	Name        string
	Value       string
	Label       string
	Placeholder string
	IconRef     string
	Disabled    bool
	Checked     bool
	DateFormat  string
	ShowTime    bool
	Options     []optionData
}

type optionData struct {
	Value    string
	Label    string
	Selected bool
}

type sectionData struct {
	Title  string
	Fields []template.HTML
}

type formData struct {
	Name     string
	Action   string
	Sections []sectionData
}

func renderTextInput(binding Binding, cfg Config) template.HTML {
	return execTemplate("textInput", controlData{
		Name:        binding.Name(),
		Value:       binding.StringValue(),
		Placeholder: cfg.Placeholder,
		IconRef:     cfg.IconRef,
		Disabled:    cfg.Disabled,
	})
}

func renderTextarea(binding Binding, cfg Config) template.HTML {
	return execTemplate("textarea", controlData{
		Name:        binding.Name(),
		Value:       binding.StringValue(),
		Placeholder: cfg.Placeholder,
		Disabled:    cfg.Disabled,
	})
}

func renderCheckbox(binding Binding, cfg Config) template.HTML {
	return execTemplate("checkbox", controlData{
		Name:    binding.Name(),
		Label:   cfg.Label,
		Checked: binding.BoolValue(),
	})
}

func renderPhone(binding Binding, cfg Config) template.HTML {
	return execTemplate("phone", controlData{
		Name:        binding.Name(),
		Value:       binding.StringValue(),
		Placeholder: cfg.Placeholder,
	})
}

func renderDatePicker(binding Binding, cfg Config) template.HTML {
	format := cfg.DateFormat
	if format == "" {
		format = DefaultDateFormat
	}
	return execTemplate("datePicker", controlData{
		Name:       binding.Name(),
		Value:      displayDate(binding.StringValue(), format, cfg.ShowTimeSelect),
		DateFormat: format,
		ShowTime:   cfg.ShowTimeSelect,
	})
}

func renderSelect(binding Binding, cfg Config) template.HTML {
	current := binding.StringValue()
	options := make([]optionData, 0, len(cfg.Options))
	for _, option := range cfg.Options {
		options = append(options, optionData{
			Value:    option.Value,
			Label:    option.Label,
			Selected: option.Value == current && current != "",
		})
	}
	return execTemplate("select", controlData{
		Name:        binding.Name(),
		Placeholder: cfg.Placeholder,
		Options:     options,
	})
}

func renderCustom(binding Binding, cfg Config) template.HTML {
	if cfg.Custom == nil {
		return ""
	}
	return cfg.Custom(binding)
}

// displayDate turns the stored ISO value into the declared display format.
// Storage stays ISO; only the rendered text changes.
func displayDate(value, format string, withTime bool) string {
	if value == "" {
		return ""
	}
	layout := constvars.DateLayoutISO
	if withTime {
		layout = time.RFC3339
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return value
	}
	display := dateLayout(format)
	if withTime && !strings.Contains(format, "HH") {
		display += " 15:04"
	}
	return parsed.Format(display)
}

// dateLayout maps the picker-style format tokens to a Go time layout.
func dateLayout(format string) string {
	replacer := strings.NewReplacer(
		"yyyy", "2006",
		"MM", "01",
		"dd", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	)
	return replacer.Replace(format)
}

func execTemplate(name string, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := fieldTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
