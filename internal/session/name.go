package session

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExportName derives the output path for an export. The mode-specific
// suffix is inserted before the configured extension, so the result never
// equals the input path even when the content is unchanged. A source
// without the expected extension keeps its base name but gains both the
// suffix and the extension.
func (s *Session) ExportName(inputPath string) string {
	suffix := s.cfg.Export.DeclSuffix
	if s.active == ModeWaves {
		suffix = s.cfg.Export.WaveSuffix
	}
	ext := s.cfg.Export.Extension

	base := inputPath
	if strings.EqualFold(filepath.Ext(inputPath), ext) {
		base = inputPath[:len(inputPath)-len(filepath.Ext(inputPath))]
	} else if other := filepath.Ext(inputPath); other != "" {
		base = inputPath[:len(inputPath)-len(other)]
	}
	return base + suffix + ext
}

// DeriveTitle produces a human-readable label for a source path, used by
// the history journal and log output.
func DeriveTitle(sourcePath string) string {
	if sourcePath == "" {
		return "Untitled Save"
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var cleaned strings.Builder
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled Save"
	}
	return cases.Title(language.Und).String(title)
}
