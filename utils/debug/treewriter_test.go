package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "test", want: "test\n"},
		{name: "depth 1", depth: 1, format: "indented", want: "  indented\n"},
		{name: "depth 2", depth: 2, format: "double indent", want: "    double indent\n"},
		{name: "with formatting", depth: 1, format: "value: %d", args: []any{42}, want: "  value: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Attr(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{name: "empty value skipped", depth: 0, label: "field", value: "", want: ""},
		{name: "plain", depth: 0, label: "text", value: "hello world", want: "text: \"hello world\"\n"},
		{name: "nested", depth: 2, label: "run", value: "data", want: "    run: \"data\"\n"},
		{name: "newline escaped", depth: 1, label: "run", value: "line1\nline2", want: "  run: \"line1\\nline2\"\n"},
		{name: "tab escaped", depth: 0, label: "cell", value: "a\tb", want: "cell: \"a\\tb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Attr(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Attr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Inline(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Root")
	tw.Inline("size=%d", 11)
	tw.Inline(" italic")

	want := "Root\nsize=11 italic"
	if got := tw.String(); got != want {
		t.Errorf("Inline() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Document (%d blocks)", 2)
	tw.Line(1, "[0] heading level=%d", 1)
	tw.Attr(2, "text", "Introduction")
	tw.Line(1, "[1] page break")

	want := "Document (2 blocks)\n  [0] heading level=1\n    text: \"Introduction\"\n  [1] page break\n"
	if got := tw.String(); got != want {
		t.Errorf("tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
