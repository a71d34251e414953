package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"docgen/config"
	"docgen/content"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Subtitle   string
	Authors    []string
	Date       string
	Version    string
	Language   string
	SourceFile string
}

func buildValues(m *content.Model, lang string) Values {
	src := m.Source
	if src == content.EmbeddedSource {
		src = "srd"
	}
	return Values{
		Title:      m.Meta.Title,
		Subtitle:   m.Meta.Subtitle,
		Authors:    m.Meta.Authors,
		Date:       m.Meta.Date,
		Version:    m.Meta.Version,
		Language:   lang,
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
