package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/triageagent/triage-cli/playbook"
)

var GeneralTriage = []string{
	"Reproduce and capture exact error text",
	"Define scope (single user/device vs widespread)",
	"Isolate layer (device, network, account, app, service)",
	"Apply least-risk fix first; document changes",
	"Verify resolution and implement prevention",
}

var NextDetails = []string{
	"Timestamp of last success and first failure",
	"Network name/VPN/proxy status",
	"Screenshots/log snippets",
	"Any recent updates/changes",
}

const mdTemplate = `# {{ .Title }}

| | |
|---|---|
| Category | {{ cell .In.Category }} |
| Device/OS | {{ cell .In.Device }} |
| Context | {{ cell .In.Context }} |

**Problem Description:** {{ .Description }}
{{ if .Record }}
## Best Match Playbook: {{ .Record.Name }}

_score {{ .Score }}_

### Clarifying Questions
{{ range $i, $q := .Record.Questions }}
{{ add $i 1 }}. {{ $q }}
{{- else }}
_(none)_
{{- end }}

### Recommended Steps
{{ range $i, $s := .Record.Steps }}
{{ add $i 1 }}. {{ $s }}
{{- else }}
_(none)_
{{- end }}

### Suggested Commands ({{ .In.Device }})
{{ if .Commands }}
~~~sh
{{ range .Commands }}{{ . }}
{{ end }}~~~
{{- else }}
_(none)_
{{- end }}
{{ else }}
> No strong playbook match yet. Add more details: exact error text, what changed, scope, and last known good.

### General Triage Flow
{{ range $i, $s := .GeneralTriage }}
{{ add $i 1 }}. {{ $s }}
{{- end }}

### Next Details to Collect
{{ range $i, $s := .NextDetails }}
{{ add $i 1 }}. {{ $s }}
{{- end }}
{{ end }}`

var markdownTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"cell": cell,
}).Parse(mdTemplate))

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// cell keeps a value on one markdown table row.
func cell(s string) string {
	return cellReplacer.Replace(s)
}

// Markdown renders the report for terminal display. Unlike Build it includes
// the match score and, without a match, the general triage checklists.
func Markdown(in Input) (string, error) {
	data := struct {
		Title         string
		In            Input
		Description   string
		Record        *playbook.Record
		Score         int
		Commands      []string
		GeneralTriage []string
		NextDetails   []string
	}{
		Title:         Title,
		In:            in,
		Description:   in.description(),
		GeneralTriage: GeneralTriage,
		NextDetails:   NextDetails,
	}
	if in.Match.Matched() {
		data.Record = in.Match.Record
		data.Score = in.Match.Score
		data.Commands = in.Match.Record.CommandsFor(in.Device)
	}

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing report template: %w", err)
	}
	return buf.String(), nil
}

// Glamour style names accepted by Render.
const (
	StyleAuto  = "auto"
	StyleNoTTY = "notty"
)

// Render returns the markdown report styled for the terminal using the named
// glamour style.
func Render(in Input, style string) (string, error) {
	md, err := Markdown(in)
	if err != nil {
		return "", err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create report renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
