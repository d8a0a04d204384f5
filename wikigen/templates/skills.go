package templates

// SkillTable renders the armor skill list as a MediaWiki table. Text that
// may hold CRLF line breaks goes through OneLine, since a row cell ends at
// the first newline.
const SkillTable = `
{{.Navigation}}
{| class="wikitable sortable wide"
! colspan=3 | '''{{.Title}}'''
|-
! Name
! Description
! Effects/levels
{{range .Skills -}}
|-
| rowspan="1" | {{.Name}}
|{{OneLine .Explain}}
|
{{range .Levels -}}
# {{OneLine .Text}}
{{end -}}
{{end -}}
|-
|}
`
