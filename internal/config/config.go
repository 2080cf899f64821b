package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Editor contains codec and scanning configuration.
type Editor struct {
	// MaskChar is the decorative character interleaved into encoded
	// payload text. Must be a single character outside the base64 alphabet.
	MaskChar string `toml:"mask_char"`
	// MinEncodedRun is the stripped-length floor for a quoted literal to
	// count as a payload block.
	MinEncodedRun int `toml:"min_encoded_run"`
	// DefaultMode selects the grammar when a command gives none:
	// "auto", "decl", or "waves".
	DefaultMode string `toml:"default_mode"`
}

// Export contains output naming configuration. Exports never reuse the
// input name; a suffix is always inserted before the extension.
type Export struct {
	DeclSuffix string `toml:"decl_suffix"`
	WaveSuffix string `toml:"wave_suffix"`
	Extension  string `toml:"extension"`
}

// Hints contains the keyword vocabularies used to classify decoded payload
// text per editor mode. Empty slices fall back to the built-in defaults.
type Hints struct {
	Declarations []string `toml:"declarations"`
	Waves        []string `toml:"waves"`
}

// Logging contains configuration for log output.
type Logging struct {
	// Format is "console", "json", or empty to pick by TTY.
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the session journal.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for saveedit.
type Config struct {
	Editor  Editor  `toml:"editor"`
	Export  Export  `toml:"export"`
	Hints   Hints   `toml:"hints"`
	Logging Logging `toml:"logging"`
	History History `toml:"history"`
}

// Default returns the repository default configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			MaskChar:      "*",
			MinEncodedRun: 64,
			DefaultMode:   "auto",
		},
		Export: Export{
			DeclSuffix: "_edited",
			WaveSuffix: "_env_edited",
			Extension:  ".as",
		},
		Hints: Hints{
			Declarations: []string{"var ", "const ", "this."},
			Waves:        []string{"AddWave", "CreateTrain", "StartWave", "AddBloon"},
		},
		Logging: Logging{
			Format: "",
			Level:  "info",
		},
		History: History{
			Enabled: true,
			Path:    "~/.local/share/saveedit/history.db",
		},
	}
}

// SampleConfig returns the embedded annotated sample configuration file.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the absolute path of the default config file.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/saveedit/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether a file existed there. A missing
// file is not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.History.Path, err = ExpandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}

	c.Editor.DefaultMode = strings.ToLower(strings.TrimSpace(c.Editor.DefaultMode))
	if c.Editor.DefaultMode == "" {
		c.Editor.DefaultMode = "auto"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if !strings.HasPrefix(c.Export.Extension, ".") && c.Export.Extension != "" {
		c.Export.Extension = "." + c.Export.Extension
	}
	return nil
}

// EnsureDirectories creates the directories backing configured paths.
func (c *Config) EnsureDirectories() error {
	if !c.History.Enabled || c.History.Path == "" {
		return nil
	}
	dir := filepath.Dir(c.History.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure history directory: %w", err)
	}
	return nil
}

// MaskByte returns the configured mask character as a single byte.
// Validate guarantees the representation fits.
func (c *Config) MaskByte() byte {
	return c.Editor.MaskChar[0]
}

// ExpandPath expands a leading tilde to the user home directory and makes
// the result absolute.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	return abs, nil
}
