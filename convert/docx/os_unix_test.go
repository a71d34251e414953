//go:build !windows

package docx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/sys/unix"

	"docgen/common"
	"docgen/config"
)

func withUmask(t *testing.T, mask int) {
	t.Helper()
	old := unix.Umask(mask)
	t.Cleanup(func() { unix.Umask(old) })
}

func TestGenerate_FileMode(t *testing.T) {
	tests := []struct {
		name  string
		umask int
		fix   bool
		want  os.FileMode
	}{
		{"common umask", 0o022, false, 0o644},
		{"group writable umask", 0o002, false, 0o644},
		{"strict umask", 0o077, false, 0o600},
		{"rewritten package", 0o022, true, 0o644},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withUmask(t, tt.umask)
			out := generate(t, newDocument(t), &config.DocumentConfig{PageSize: common.PageSizeLetter, FixZip: tt.fix})
			fi, err := os.Stat(out)
			if err != nil {
				t.Fatal(err)
			}
			if got := fi.Mode().Perm(); got != tt.want {
				t.Errorf("mode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerate_KeepsExistingMode(t *testing.T) {
	withUmask(t, 0o022)
	out := filepath.Join(t.TempDir(), "srd.docx")
	if err := os.WriteFile(out, []byte("old content"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := Generate(context.Background(), newDocument(t), out, &config.DocumentConfig{PageSize: common.PageSizeLetter}, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := fi.Mode().Perm(); got != 0o640 {
		t.Errorf("mode = %v, want 0640 of replaced file", got)
	}
}
