package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"docgen/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	doc := cfg.Document
	if doc.OutputPath != "ColorClash-Software-Requirements-Document-v5.docx" {
		t.Errorf("OutputPath = %q", doc.OutputPath)
	}
	if doc.Language != "en-US" {
		t.Errorf("Language = %q, want en-US", doc.Language)
	}
	if doc.PageSize != common.PageSizeLetter {
		t.Errorf("PageSize = %s, want letter", doc.PageSize)
	}
	if doc.Table.Style != "LightGridAccent1" || !doc.Table.Centered {
		t.Errorf("Table = %+v", doc.Table)
	}
	if doc.FixZip {
		t.Error("FixZip should be off by default")
	}
	if len(doc.Styles) != 3 {
		t.Errorf("Styles = %d overrides, want 3", len(doc.Styles))
	}
}

func TestLoadConfiguration_TemplatesNotExpanded(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Document.Metainformation.TitleTemplate != "{{ .Title }}" {
		t.Errorf("TitleTemplate = %q", cfg.Document.Metainformation.TitleTemplate)
	}
	if !strings.Contains(cfg.Document.Metainformation.CreatorTemplate, ".Authors") {
		t.Errorf("CreatorTemplate = %q", cfg.Document.Metainformation.CreatorTemplate)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  output_path: out/srd.docx
  fix_zip: true
  language: de-DE
  page_size: a4
  table:
    style: PlainTable
    centered: false
  styles:
    Heading1:
      font: Georgia
      size: 18
      weight: normal
      align: center
    Quote:
      italic: true
      space_after: 12
logging:
  console:
    level: debug
  file:
    level: normal
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.OutputPath != filepath.Clean("out/srd.docx") {
		t.Errorf("OutputPath = %q", doc.OutputPath)
	}
	if !doc.FixZip {
		t.Error("Expected FixZip to be true")
	}
	if doc.Language != "de-DE" || doc.PageSize != common.PageSizeA4 {
		t.Errorf("Language = %q PageSize = %s", doc.Language, doc.PageSize)
	}
	if doc.Table.Style != "PlainTable" || doc.Table.Centered {
		t.Errorf("Table = %+v", doc.Table)
	}

	h1, ok := doc.Styles["Heading1"]
	if !ok {
		t.Fatal("Heading1 override missing")
	}
	if h1.Font != "Georgia" || h1.Size != 18 {
		t.Errorf("Heading1 = %+v", h1)
	}
	if h1.Weight == nil || *h1.Weight != common.WeightNormal {
		t.Errorf("Heading1 weight = %v", h1.Weight)
	}
	if h1.Align == nil || *h1.Align != common.AlignmentCenter {
		t.Errorf("Heading1 align = %v", h1.Align)
	}
	// color comes from defaults, file only adds to the map
	if h1.Color != "" && h1.Color != "1A1A2E" {
		t.Errorf("Heading1 color = %q", h1.Color)
	}

	quote := doc.Styles["Quote"]
	if quote.Italic == nil || !*quote.Italic {
		t.Error("Quote is not italic")
	}
	if quote.SpaceAfter == nil || *quote.SpaceAfter != 12 {
		t.Errorf("Quote space_after = %v", quote.SpaceAfter)
	}

	if cfg.Logging.ConsoleLogger.Level != "debug" || cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			content: "version: [1",
			wantErr: "failed to process configuration file",
		},
		{
			name:    "unknown field",
			content: "version: 1\ndocument:\n  images: {}\n",
			wantErr: "field images not found",
		},
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: "validation failed",
		},
		{
			name:    "bad language",
			content: "version: 1\ndocument:\n  language: \"not a language\"\n",
			wantErr: "validation failed",
		},
		{
			name:    "bad page size",
			content: "version: 1\ndocument:\n  page_size: legal\n",
			wantErr: "legal is not a valid",
		},
		{
			name:    "bad color",
			content: "version: 1\ndocument:\n  styles:\n    Normal:\n      color: red\n",
			wantErr: "validation failed",
		},
		{
			name:    "bad identifier",
			content: "version: 1\ndocument:\n  metainformation:\n    identifier: 12345\n",
			wantErr: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfiguration() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("LoadConfiguration() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	cfg, err := LoadConfiguration("", gencfg.WithDoNotExpandField("destination"))
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "output_path:") {
		t.Errorf("Prepare() output has no document section:\n%s", data)
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	dumped, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	// dump must be loadable as configuration file
	again, err := unmarshalConfig(dumped, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if again.Document.PageSize != cfg.Document.PageSize || again.Document.Language != cfg.Document.Language {
		t.Errorf("dump/load mismatch: %+v vs %+v", again.Document, cfg.Document)
	}
}
