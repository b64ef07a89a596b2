package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, input := range []string{"", "\n"} {
		cfg, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if *cfg != *Default() {
			t.Errorf("%q: expected defaults, got %+v", input, cfg)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	input := `
fail_fast: true
echo: true
color: never
dump_ast: true
`
	cfg, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Config{
		FailFast: true,
		Echo:     true,
		Color:    ColorNever,
		Prompt:   DefaultPrompt,
		DumpAST:  true,
	}
	if *cfg != expected {
		t.Errorf("expected %+v, got %+v", expected, *cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		errPart string
	}{
		{"colour: never\n", "field colour not found"},
		{"color: purple\n", `invalid color mode "purple"`},
		{"echo: [1, 2]\n", "parse:"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		if err == nil {
			t.Fatalf("%q: expected an error", tt.input)
		}
		if !strings.Contains(err.Error(), tt.errPart) {
			t.Errorf("%q: expected error containing %q, got %q", tt.input, tt.errPart, err.Error())
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ldi.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"ldi> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "ldi> " {
		t.Errorf("expected prompt %q, got %q", "ldi> ", cfg.Prompt)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
