package convert

import (
	"strings"
	"testing"

	"docgen/config"
	"docgen/content"
)

func testValues() Values {
	return Values{
		Title:      "Software Requirements Document",
		Subtitle:   "Color Clash",
		Authors:    []string{"Ann Smith", "Bob Stone"},
		Date:       "February 2026",
		Version:    "5",
		Language:   "en-US",
		SourceFile: "srd",
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"simple text", "simple-text", "simple-text"},
		{"title", "{{ .Title }}", "Software Requirements Document"},
		{"authors joined", `{{ .Authors | join ", " }}`, "Ann Smith, Bob Stone"},
		{"first author", "{{ index .Authors 0 }}", "Ann Smith"},
		{"version and date", "{{ .Title }} v{{ .Version }} ({{ .Date }})", "Software Requirements Document v5 (February 2026)"},
		{"sprig function", "{{ .Title | upper | replace \" \" \"-\" }}", "SOFTWARE-REQUIREMENTS-DOCUMENT"},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName)},
		{"trimmed", "  {{ .SourceFile }}\n", "srd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(config.OutputNameTemplateFieldName, tt.template, testValues())
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	_, err := expandTemplate(config.MetaTitleTemplateFieldName, "{{ .Title", testValues())
	if err == nil || !strings.Contains(err.Error(), "title_template") {
		t.Errorf("parse error = %v, want it to name the field", err)
	}

	if _, err := expandTemplate(config.MetaTitleTemplateFieldName, "{{ .Missing }}", testValues()); err == nil {
		t.Error("expected execution error for unknown field")
	}
}

func TestBuildValues(t *testing.T) {
	m := &content.Model{
		Source: "/some/dir/team-srd.yaml",
		Meta:   content.Meta{Title: "T", Authors: []string{"A"}, Version: "2"},
	}
	v := buildValues(m, "tr-TR")
	if v.SourceFile != "team-srd" || v.Title != "T" || v.Version != "2" || v.Language != "tr-TR" {
		t.Errorf("buildValues() = %+v", v)
	}

	m.Source = content.EmbeddedSource
	if v := buildValues(m, "en"); v.SourceFile != "srd" {
		t.Errorf("SourceFile for embedded content = %q", v.SourceFile)
	}
}
