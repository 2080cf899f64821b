package config

import (
	"fmt"

	"saveedit/internal/codec"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEditor(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEditor() error {
	if len(c.Editor.MaskChar) != 1 {
		return fmt.Errorf("editor.mask_char: must be exactly one character, got %q", c.Editor.MaskChar)
	}
	if codec.IsBase64Char(c.Editor.MaskChar[0]) {
		return fmt.Errorf("editor.mask_char: %q collides with the base64 alphabet", c.Editor.MaskChar)
	}
	if c.Editor.MinEncodedRun < 1 {
		return fmt.Errorf("editor.min_encoded_run: must be positive, got %d", c.Editor.MinEncodedRun)
	}
	switch c.Editor.DefaultMode {
	case "auto", "decl", "waves":
	default:
		return fmt.Errorf("editor.default_mode: unsupported value %q", c.Editor.DefaultMode)
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.DeclSuffix == "" || c.Export.WaveSuffix == "" {
		return fmt.Errorf("export suffixes must be non-empty; exports never reuse the input name")
	}
	if c.Export.Extension == "" {
		return fmt.Errorf("export.extension: must be non-empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
