package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"saveedit/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Editor.MaskChar != "*" || cfg.Editor.MinEncodedRun != 64 {
		t.Fatalf("unexpected editor defaults: %+v", cfg.Editor)
	}
	if cfg.Export.DeclSuffix != "_edited" || cfg.Export.WaveSuffix != "_env_edited" {
		t.Fatalf("unexpected export defaults: %+v", cfg.Export)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("reported a file that does not exist")
	}
	if resolved == "" {
		t.Fatal("expected resolved path even when missing")
	}
	if cfg.Editor.MaskChar != "*" {
		t.Fatalf("defaults not applied: %+v", cfg.Editor)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[editor]
mask_char = "|"
min_encoded_run = 32
default_mode = "WAVES"

[export]
extension = "txt"

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("file not detected")
	}
	if cfg.Editor.MaskChar != "|" || cfg.Editor.MinEncodedRun != 32 {
		t.Fatalf("editor overrides lost: %+v", cfg.Editor)
	}
	if cfg.Editor.DefaultMode != "waves" {
		t.Fatalf("default_mode not normalized: %q", cfg.Editor.DefaultMode)
	}
	if cfg.Export.Extension != ".txt" {
		t.Fatalf("extension not normalized with leading dot: %q", cfg.Export.Extension)
	}
	if cfg.History.Enabled {
		t.Fatal("history override lost")
	}
	if cfg.Export.DeclSuffix != "_edited" {
		t.Fatalf("unset sections should keep defaults: %+v", cfg.Export)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "mask char in base64 alphabet",
			content: "[editor]\nmask_char = \"A\"\n",
			wantErr: "mask_char",
		},
		{
			name:    "multi-char mask",
			content: "[editor]\nmask_char = \"**\"\n",
			wantErr: "mask_char",
		},
		{
			name:    "zero run floor",
			content: "[editor]\nmin_encoded_run = 0\n",
			wantErr: "min_encoded_run",
		},
		{
			name:    "bad mode",
			content: "[editor]\ndefault_mode = \"turbo\"\n",
			wantErr: "default_mode",
		},
		{
			name:    "empty suffix",
			content: "[export]\ndecl_suffix = \"\"\n",
			wantErr: "suffix",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := config.ExpandPath("~/saves/level.as")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "saves", "level.as") {
		t.Fatalf("tilde not expanded: %q", got)
	}

	got, err = config.ExpandPath("")
	if err != nil || got != "" {
		t.Fatalf("empty path should stay empty, got %q, %v", got, err)
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("sample file not detected")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
