package form

import "html/template"

var fieldTemplates = template.Must(template.New("fields").Funcs(template.FuncMap{
	"anySelected": func(options []optionData) bool {
		for _, option := range options {
			if option.Selected {
				return true
			}
		}
		return false
	},
}).Parse(fieldTemplateText))

const fieldTemplateText = `
{{define "fieldWrapper"}}<div class="form-item" data-field="{{.Name}}">{{if .ShowLabel}}<label class="form-label" for="{{.Name}}">{{.Label}}</label>{{end}}{{.Control}}{{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}</div>{{end}}

{{define "textInput"}}<div class="field-control">{{if .IconRef}}<img class="field-icon" src="{{.IconRef}}" alt="">{{end}}<input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}" placeholder="{{.Placeholder}}"{{if .Disabled}} disabled{{end}}></div>{{end}}

{{define "textarea"}}<textarea id="{{.Name}}" name="{{.Name}}" placeholder="{{.Placeholder}}"{{if .Disabled}} disabled{{end}}>{{.Value}}</textarea>{{end}}

{{define "checkbox"}}<div class="checkbox-row"><input type="checkbox" id="{{.Name}}" name="{{.Name}}" value="true"{{if .Checked}} checked{{end}}><label class="checkbox-label" for="{{.Name}}">{{.Label}}</label></div>{{end}}

{{define "phone"}}<input type="tel" id="{{.Name}}" name="{{.Name}}" class="input-phone" value="{{.Value}}" placeholder="{{.Placeholder}}" inputmode="tel">{{end}}

{{define "datePicker"}}<div class="field-control"><img class="field-icon" src="/assets/icons/calendar.svg" alt="calendar"><input type="text" id="{{.Name}}" name="{{.Name}}" class="date-picker" value="{{.Value}}" data-date-format="{{.DateFormat}}" data-show-time-select="{{.ShowTime}}"></div>{{end}}

{{define "select"}}<select id="{{.Name}}" name="{{.Name}}">{{if .Placeholder}}<option value="" disabled{{if not (anySelected .Options)}} selected{{end}}>{{.Placeholder}}</option>{{end}}{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>{{end}}

{{define "formShell"}}<form class="intake-form" method="POST" action="{{.Action}}" enctype="multipart/form-data" data-form="{{.Name}}">{{range .Sections}}<section class="form-section">{{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}{{range .Fields}}{{.}}{{end}}</section>{{end}}<button type="submit" class="submit-button">Submit and Continue</button></form>{{end}}
`
