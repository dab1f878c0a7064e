// Package templates embeds the text templates contrack renders.
package templates

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/example/contrack/internal/core/commit"
)

//go:embed document/*.tmpl agent/*.tmpl
var embedded embed.FS

// GetDocumentTemplate returns the contributions markdown template.
func GetDocumentTemplate() (string, error) {
	content, err := embedded.ReadFile("document/contributions.md.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetAgentTemplate returns the agent guide template printed by `contrack ai`.
func GetAgentTemplate() (string, error) {
	content, err := embedded.ReadFile("agent/guide.md.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RenderDocument executes the contributions template with data into w.
func RenderDocument(w io.Writer, data any) error {
	return render(w, "contributions", GetDocumentTemplate, data)
}

// RenderAgentGuide executes the agent guide template with data into w.
func RenderAgentGuide(w io.Writer, data any) error {
	return render(w, "agent-guide", GetAgentTemplate, data)
}

func render(w io.Writer, name string, load func() (string, error), data any) error {
	content, err := load()
	if err != nil {
		return err
	}

	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return nil
}

// TemplateFuncs returns the function map shared by all templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"short":    commit.Short,
		"date":     formatDate,
		"priority": formatPriority,
		"cell":     tableCell,
		"code":     codeCell,
		"join":     strings.Join,
		"default":  orDefault,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func formatPriority(p int) string {
	if p == 0 {
		return "unset"
	}
	return strconv.Itoa(p)
}

// tableCell makes s safe inside a single markdown table cell.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// codeCell renders s as inline code inside a markdown table cell.
// Backticks in s get a longer fence so they cannot close the span early.
func codeCell(s string) string {
	s = tableCell(s)
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}

// orDefault returns value, or fallback when value is empty.
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
