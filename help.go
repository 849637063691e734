package argparse

import (
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/huandu/xstrings"
)

var usageTemplateString = `
{{- if .Description -}}
{{.Description}}

{{end -}}
USAGE:
    {{.Name}}{{if .Options}} [OPTIONS]{{end}}{{range .Positionals}} <{{.}}>{{end}}

{{- if .Options}}

OPTIONS:
{{- range .Options}}
\t    \t{{.Name}}{{if .Placeholder}} <{{.Placeholder}}>{{end}}\t
{{- end}}

{{- end}}

{{- if .Positionals}}

ARGUMENTS:
{{- range .Positionals}}
\t    \t{{.}}\t
{{- end}}

{{- end}}

`

var usageTemplate = template.Must(
	template.New("usage").Parse(usageTemplateString),
)

type usageEntry struct {
	Name        string
	Placeholder string // empty for flags, which take no value
}

// UsageString renders the usage text as a string.
func (p *Parser) UsageString() string {
	sb := strings.Builder{}
	p.WriteUsage(&sb)
	return sb.String()
}

// WriteUsage renders usage text for the parser's registered arguments, in
// registration order: flags first, then options, then positionals.
func (p *Parser) WriteUsage(w io.Writer) {
	options := []usageEntry{}
	for _, name := range p.flagNames {
		options = append(options, usageEntry{Name: name})
	}
	for _, name := range p.optionNames {
		options = append(options, usageEntry{
			Name:        name,
			Placeholder: placeholder(name),
		})
	}
	positionals := []string{}
	for _, b := range p.positionals {
		positionals = append(positionals, b.name)
	}

	data := struct {
		Name        string
		Description string
		Options     []usageEntry
		Positionals []string
	}{
		Name:        p.Name,
		Description: p.Description,
		Options:     options,
		Positionals: positionals,
	}

	tw := newEscapedTabWriter(w)
	if err := usageTemplate.Execute(tw, data); err != nil {
		panic(err)
	}
	tw.Flush()
}

// placeholder derives the value placeholder shown next to an option name,
// e.g. "--dry-run" becomes "DRY_RUN".
func placeholder(name string) string {
	return strings.ToUpper(xstrings.ToSnakeCase(strings.TrimLeft(name, "-")))
}

// escapedTabWriter lets the template express literal tab stops as \t so the
// template itself stays readable.
type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}
