package main

import (
	"bytes"
	"strings"
	"testing"

	"docgen/config"
)

func TestWriteConfiguration(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.OutputPath = "custom.docx"

	tests := []struct {
		name     string
		defaults bool
		wantKind string
		want     string
		notWant  string
	}{
		{"active", false, "active", "custom.docx", "ColorClash-Software-Requirements-Document-v5.docx"},
		{"default", true, "default", "ColorClash-Software-Requirements-Document-v5.docx", "custom.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			kind, err := writeConfiguration(&buf, cfg, tt.defaults)
			if err != nil {
				t.Fatalf("writeConfiguration() error = %v", err)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", kind, tt.wantKind)
			}
			if !strings.Contains(buf.String(), tt.want) || strings.Contains(buf.String(), tt.notWant) {
				t.Errorf("unexpected configuration:\n%s", buf.String())
			}
		})
	}
}

func TestDumpConfigHelp(t *testing.T) {
	app := newApp()
	var dump string
	for _, c := range app.Commands {
		if c.Name == "dumpconfig" {
			dump = c.Usage + "\n" + c.CustomHelpTemplate
		}
	}
	if dump == "" {
		t.Fatal("dumpconfig command is missing")
	}
	for _, typo := range []string{"wich", "Outputing", "deffered"} {
		if strings.Contains(dump, typo) {
			t.Errorf("help text contains %q", typo)
		}
	}
	if !strings.Contains(dump, "--default") {
		t.Errorf("help text does not mention --default:\n%s", dump)
	}
}
