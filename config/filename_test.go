package config

import (
	"os"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "srd", "srd"},
		{"spaces kept", "Team Notes", "Team Notes"},
		{"reserved", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"control", "a\x00b\tc\n", "abc"},
		{"leading dots", "..hidden", "hidden"},
		{"trailing dots and spaces", "name. . ", "name"},
		{"unicode", "Gözütok", "Gözütok"},
		{"empty", "", "_bad_file_name_"},
		{"nothing left", "../..", "_bad_file_name_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFileName(tt.in); got != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnableColorOutput_Disabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	t.Setenv("NO_COLOR", "1")
	if EnableColorOutput(f) {
		t.Error("EnableColorOutput() = true with NO_COLOR set")
	}
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")
	if EnableColorOutput(f) {
		t.Error("EnableColorOutput() = true for regular file")
	}
}
