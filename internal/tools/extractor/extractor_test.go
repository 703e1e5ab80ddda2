package extractor

import (
	"flag"
	"runtime"
	"testing"
)

func parse(t *testing.T, args []string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("extractor", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

func TestParseConfigDebug(t *testing.T) {
	cfg, err := parse(t, []string{"debug", "sheet.jpg"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Mode != ModeDebug {
		t.Errorf("Mode = %q, want debug", cfg.Mode)
	}
	if cfg.InputFile != "sheet.jpg" {
		t.Errorf("InputFile = %q", cfg.InputFile)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU", cfg.Workers)
	}
}

func TestParseConfigExtract(t *testing.T) {
	cfg, err := parse(t, []string{"-workers", "2", "extract", "in", "out"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Mode != ModeExtract {
		t.Errorf("Mode = %q, want extract", cfg.Mode)
	}
	if cfg.SourceDir != "in" || cfg.TargetDir != "out" {
		t.Errorf("dirs = %q, %q", cfg.SourceDir, cfg.TargetDir)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: nil},
		{name: "unknown subcommand", args: []string{"resize", "x"}},
		{name: "debug without file", args: []string{"debug"}},
		{name: "extract missing target", args: []string{"extract", "in"}},
		{name: "extract extra args", args: []string{"extract", "in", "out", "extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse(t, tc.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseConfigClampsWorkers(t *testing.T) {
	cfg, err := parse(t, []string{"-workers", "0", "debug", "sheet.jpg"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want clamp to 1", cfg.Workers)
	}
}
