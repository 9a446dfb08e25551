package report

import (
	"html/template"
	"io"

	"riskeval/internal/risk"
)

// tableHTML renders one row per record. html/template's contextual
// auto-escaping guarantees user-controlled text cannot inject markup.
const tableHTML = `<table class="risks-table">
<thead>
<tr><th>Risk</th><th>Area</th><th>ND x NE x NC</th><th>NR</th><th>Tier</th></tr>
</thead>
<tbody>
{{- range . }}
<tr><td>{{ .Name }}</td><td>{{ .Area }}</td><td>{{ .Deficiency }} x {{ .Exposure }} x {{ .Consequence }}</td><td>{{ .Score }}</td><td>{{ .Tier }}</td></tr>
{{- end }}
</tbody>
</table>
`

var tableTemplate = template.Must(template.New("table").Parse(tableHTML))

// WriteHTMLTable renders the record table as an HTML fragment with every
// free-text field escaped.
func WriteHTMLTable(w io.Writer, records []risk.Record) error {
	return tableTemplate.Execute(w, records)
}
