package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resetCrashOutput(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { debug.SetCrashOutput(nil, debug.CrashOptions{}) })
}

func TestLoggingConfig_Prepare_FileLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"none", "none", false, false},
		{"normal", "normal", false, true},
		{"debug", "debug", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCrashOutput(t)
			dest := filepath.Join(t.TempDir(), "docgen.log")
			conf := LoggingConfig{
				ConsoleLogger: LoggerConfig{Level: "none"},
				FileLogger:    LoggerConfig{Level: tt.level, Destination: dest, Mode: "overwrite"},
			}
			log, err := conf.Prepare(nil)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			log.Debug("debug line")
			log.Info("info line")
			_ = log.Sync()

			data, err := os.ReadFile(dest)
			if tt.level == "none" {
				if err == nil {
					t.Errorf("log file must not be created, got %q", data)
				}
				return
			}
			if err != nil {
				t.Fatalf("unable to read log: %v", err)
			}
			if got := strings.Contains(string(data), "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(string(data), "info line"); got != tt.wantInfo {
				t.Errorf("info line present = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestLoggingConfig_Prepare_Append(t *testing.T) {
	resetCrashOutput(t)
	dest := filepath.Join(t.TempDir(), "docgen.log")
	if err := os.WriteFile(dest, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "append"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("this run")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "previous run\n") || !strings.Contains(string(data), "this run") {
		t.Errorf("log was not appended:\n%s", data)
	}
}

func TestLoggingConfig_Prepare_Report(t *testing.T) {
	resetCrashOutput(t)
	dir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	// file logging is off in configuration, report forces it
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "docgen.log"), Mode: "append"},
	}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("assembled", zap.Int("blocks", 3))
	_ = log.Sync()

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	files := readArchive(t, filepath.Join(dir, "report.zip"))
	if !strings.Contains(files["final.log"], "assembled") {
		t.Errorf("final.log does not contain debug output: %q", files["final.log"])
	}
	if !strings.Contains(files["MANIFEST"], "panic.log") {
		t.Errorf("MANIFEST does not list panic.log:\n%s", files["MANIFEST"])
	}
}

type verboseError struct{}

func (verboseError) Error() string { return "short" }

func TestConsoleEncoder_PlainErrors(t *testing.T) {
	enc := newEncoder(zap.NewDevelopmentEncoderConfig())
	buf, err := enc.EncodeEntry(zapcore.Entry{Message: "failed"}, []zapcore.Field{
		zap.Error(errors.Join(verboseError{}, errors.New("second"))),
	})
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	defer buf.Free()

	out := buf.String()
	if strings.Contains(out, "errorVerbose") || strings.Contains(out, "errorCauses") {
		t.Errorf("console output carries verbose error details: %s", out)
	}
	if !strings.Contains(out, "short") || !strings.Contains(out, "second") {
		t.Errorf("console output lost error text: %s", out)
	}
}
