// Package report renders probe results as HTML or Markdown documents.
package report

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fumiama/imgprobe/internal/payload"
	"github.com/fumiama/imgprobe/internal/probe"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// entry is the view of a probe.Result used by the templates.
type entry struct {
	Name   string
	Path   string
	Format string
	Width  uint32
	Height uint32
	Bytes  string
	Src    template.URL
	Err    string
}

var printer = message.NewPrinter(language.English)

func newEntry(r *probe.Result, inline bool) entry {
	e := entry{
		Name:  norm.NFC.String(filepath.Base(r.Path)),
		Path:  norm.NFC.String(r.Path),
		Bytes: printer.Sprintf("%d bytes", r.Bytes),
	}
	if r.Err != nil {
		e.Err = r.Err.Error()
		return e
	}
	e.Format = r.Image.Format.String()
	e.Width = r.Image.Width
	e.Height = r.Image.Height
	if inline {
		// DataURI only emits image media types with a base64 payload.
		e.Src = template.URL(payload.DataURI(r.Image))
	}
	return e
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
figure { display: inline-block; margin: 1em; vertical-align: top; }
img { max-width: 256px; max-height: 256px; }
.err { color: #b00; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Entries -}}
<figure title="{{.Path}}">
{{- if .Err}}
<figcaption class="err">{{.Name}}: {{.Err}}</figcaption>
{{- else}}
<img src="{{.Src}}" alt="{{.Name}}">
<figcaption>{{.Name}}: {{.Format}} {{.Width}}&times;{{.Height}}, {{.Bytes}}</figcaption>
{{- end}}
</figure>
{{end -}}
</body>
</html>
`))

// HTML writes a standalone HTML document to w that shows every successfully
// decoded image inline, along with its format and size.
func HTML(w io.Writer, title string, results []probe.Result) error {
	data := struct {
		Title   string
		Entries []entry
	}{Title: title}
	for i := range results {
		data.Entries = append(data.Entries, newEntry(&results[i], true))
	}
	return errors.Wrap(htmlTmpl.Execute(w, data), "rendering html")
}

// Markdown returns a Markdown document containing a table of results.
// Images are not embedded.
func Markdown(title string, results []probe.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	sb.WriteString("| File | Format | Width | Height | Size |\n")
	sb.WriteString("|---|---|---:|---:|---:|\n")
	for i := range results {
		e := newEntry(&results[i], false)
		if e.Err != "" {
			fmt.Fprintf(&sb, "| %s | error: %s | | | %s |\n", escapeCell(e.Name), escapeCell(e.Err), e.Bytes)
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %d | %d | %s |\n", escapeCell(e.Name), e.Format, e.Width, e.Height, e.Bytes)
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

// Terminal renders Markdown md for display in a terminal. style is a glamour
// style name such as "dark" or "notty"; an empty style selects one based on
// the terminal background.
func Terminal(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.Wrap(err, "creating renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "rendering markdown")
	}
	return out, nil
}
