package render

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("notes").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Notes</title>
</head>
<body>
<h1>Notes <span class="notes-count">({{.Count}})</span></h1>
{{- if .Empty}}
<p class="empty-state">No notes yet. Create your first note above!</p>
{{- else}}
<div class="notes-list">
{{- range .Cards}}
<div class="note-card" data-id="{{.Note.ID}}">
<h3 class="note-title">{{.Title}}</h3>
<p class="note-content">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
<div class="note-footer"><span class="note-timestamp">{{.Timestamp}}</span> <span class="note-id">#{{.Note.ID}}</span></div>
</div>
{{- end}}
</div>
{{- end}}
</body>
</html>
`))

// WriteHTML renders the tree as an HTML page. Text is HTML-escaped and
// content line breaks become <br>.
func WriteHTML(w io.Writer, t Tree) error {
	return pageTemplate.Execute(w, t)
}
