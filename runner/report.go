package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/ghodss/yaml"

	"github.com/jeffrom/gitj/config"
	"github.com/jeffrom/gitj/model"
)

const defaultJournalTemplate = `{{ with .Name }}{{ heading . }}

{{ end -}}
{{ range $e := .Entries -}}
{{ sha $e.ShortID }} {{ $e.Date }} {{ $e.Author }}
{{- with $e.Status }} [{{ status . }}]{{ end }}
{{- if $e.Duration }} {{ minutes $e.Duration }}{{ end }}
    {{ $e.Name }}
{{- with $e.Description }}
{{ indent 4 . }}
{{- end }}

{{ end -}}
{{ heading "Total" }}: {{ minutes .Minutes }} over {{ len .Entries }} commit(s)
`

type journalData struct {
	Name    string
	Entries []*model.Entry
	Minutes int
}

// WriteJournal writes entries to w in the configured output format.
func (r *Runner) WriteJournal(w io.Writer, entries []*model.Entry) error {
	switch r.cfg.Output {
	case config.OutputJSON:
		b, err := json.MarshalIndent(nonNil(entries), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case config.OutputYAML:
		b, err := yaml.Marshal(nonNil(entries))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return r.writeJournalText(w, entries)
}

func (r *Runner) writeJournalText(w io.Writer, entries []*model.Entry) error {
	tmpl := defaultJournalTemplate
	if p := r.cfg.TemplatePath; p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		tmpl = string(b)
	}
	t, err := template.New("journal").Funcs(r.funcMap()).Parse(tmpl)
	if err != nil {
		return err
	}

	total := 0
	for _, e := range entries {
		total += e.Duration
	}
	return t.Execute(w, journalData{Name: r.cfg.Name, Entries: entries, Minutes: total})
}

func (r *Runner) funcMap() template.FuncMap {
	colorize := r.cfg.Term.StdoutIsTerminal()
	sprint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	sha := sprint(color.FgYellow)
	status := sprint(color.FgGreen)
	heading := sprint(color.Bold)

	return template.FuncMap{
		"minutes": FormatMinutes,
		"indent":  indent,
		"sha":     func(s string) string { return sha(s) },
		"status":  func(s string) string { return status(s) },
		"heading": func(s string) string { return heading(s) },
	}
}

func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// nonNil keeps empty journals rendering as [] rather than null.
func nonNil(entries []*model.Entry) []*model.Entry {
	if entries == nil {
		return []*model.Entry{}
	}
	return entries
}
