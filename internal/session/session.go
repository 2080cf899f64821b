package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"saveedit/internal/block"
	"saveedit/internal/codec"
	"saveedit/internal/config"
	"saveedit/internal/decls"
	"saveedit/internal/deflate"
	"saveedit/internal/mask"
	"saveedit/internal/waves"
)

// ErrNoActiveBlock reports an export attempted before any block was
// successfully decoded and selected. A user error, not a crash.
var ErrNoActiveBlock = errors.New("no active payload block; open and decode a file first")

// ErrNotOpen reports an operation against a session with no opened file.
var ErrNotOpen = errors.New("no file opened in this session")

// Mode selects which domain grammar interprets decoded payload text.
type Mode string

const (
	ModeAuto         Mode = "auto"
	ModeDeclarations Mode = "decl"
	ModeWaves        Mode = "waves"
)

// ParseMode validates a mode string from a flag or config value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeDeclarations, ModeWaves:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unsupported mode %q (want auto, decl, or waves)", s)
	}
}

// Session is the transient editing state for one opened host file.
type Session struct {
	cfg *config.Config
	log *slog.Logger

	id         string
	mode       Mode // as requested, possibly auto
	active     Mode // resolved grammar, never auto once a block is selected
	sourcePath string
	hostText   string

	blocks   []*block.Block
	selected *block.Block

	declRecords []*decls.Declaration
	waveRecords []*waves.Wave
}

// OpenResult summarizes a completed open operation for the caller.
type OpenResult struct {
	SessionID string
	Blocks    []*block.Block
	// SelectedOrdinal is -1 when no block decoded; that outcome is
	// informational, not an error.
	SelectedOrdinal int
	Mode            Mode
	Declarations    int
	Waves           int
	Events          int
	FailedBlocks    int
}

// New constructs an empty session. A nil logger discards logs.
func New(cfg *config.Config, log *slog.Logger, mode Mode) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	return &Session{
		cfg:  cfg,
		log:  log.With(slog.String("session", id)),
		id:   id,
		mode: mode,
	}
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Open scans hostText, decodes every candidate block eagerly, auto-selects
// the best block, and parses its records. Prior session state is discarded
// wholesale. Zero candidate spans surface block.ErrNoBlocks; per-block
// decode failures stay attached to their block and never abort the scan.
func (s *Session) Open(sourcePath, hostText string) (*OpenResult, error) {
	s.sourcePath = sourcePath
	s.hostText = hostText
	s.blocks = nil
	s.selected = nil
	s.declRecords = nil
	s.waveRecords = nil

	scanner := block.NewScanner(s.cfg.MaskByte(), s.cfg.Editor.MinEncodedRun, s.scanClassifier())
	s.blocks = scanner.Scan(hostText)
	if len(s.blocks) == 0 {
		return nil, fmt.Errorf("%w: %s", block.ErrNoBlocks, sourcePath)
	}

	failed := 0
	for _, b := range s.blocks {
		if !b.Decodable() {
			failed++
			s.log.Debug("block failed to decode",
				slog.Int("ordinal", b.Ordinal),
				slog.String("error", b.Err.Error()))
		}
	}

	result := &OpenResult{
		SessionID:       s.id,
		Blocks:          s.blocks,
		SelectedOrdinal: -1,
		FailedBlocks:    failed,
	}

	chosen := block.Select(s.blocks)
	if chosen == nil {
		s.log.Info("no decodable payload block", slog.String("file", sourcePath))
		result.Mode = s.mode
		return result, nil
	}

	s.adopt(chosen)
	result.SelectedOrdinal = chosen.Ordinal
	result.Mode = s.active
	result.Declarations = len(s.declRecords)
	result.Waves = len(s.waveRecords)
	for _, w := range s.waveRecords {
		result.Events += len(w.Events)
	}

	s.log.Info("opened host file",
		slog.String("file", sourcePath),
		slog.Int("blocks", len(s.blocks)),
		slog.Int("selected", chosen.Ordinal),
		slog.String("framing", string(chosen.Framing)),
		slog.String("mode", string(s.active)))
	return result, nil
}

// SelectBlock re-targets the session at another scanned block and reparses.
// Acting on a block that failed to decode surfaces that block's error.
func (s *Session) SelectBlock(ordinal int) error {
	if s.hostText == "" && len(s.blocks) == 0 {
		return ErrNotOpen
	}
	if ordinal < 0 || ordinal >= len(s.blocks) {
		return fmt.Errorf("block ordinal %d out of range (%d blocks)", ordinal, len(s.blocks))
	}
	b := s.blocks[ordinal]
	if !b.Decodable() {
		return fmt.Errorf("block %d is not decodable: %w", ordinal, b.Err)
	}
	s.adopt(b)
	return nil
}

// adopt makes b the active block: the grammar is resolved and records are
// rebuilt in full from the decoded text.
func (s *Session) adopt(b *block.Block) {
	s.selected = b
	s.active = s.resolveMode(b.DecodedText)
	s.declRecords = nil
	s.waveRecords = nil
	switch s.active {
	case ModeWaves:
		s.waveRecords = waves.Parse(b.DecodedText)
	default:
		s.declRecords = decls.Parse(b.DecodedText)
	}
}

// resolveMode turns an auto mode request into a concrete grammar by probing
// the decoded text against both keyword vocabularies. Wave hints win ties:
// the declaration hints are generic enough to appear in wave scripts.
func (s *Session) resolveMode(decoded string) Mode {
	if s.mode != ModeAuto {
		return s.mode
	}
	if block.KeywordClassifier(s.waveHints()).Classify(decoded) {
		return ModeWaves
	}
	return ModeDeclarations
}

// scanClassifier builds the block classifier for the requested mode. Auto
// mode classifies against the union of both vocabularies.
func (s *Session) scanClassifier() block.Classifier {
	switch s.mode {
	case ModeDeclarations:
		return block.KeywordClassifier(s.declHints())
	case ModeWaves:
		return block.KeywordClassifier(s.waveHints())
	default:
		return block.KeywordClassifier(append(s.declHints(), s.waveHints()...))
	}
}

func (s *Session) declHints() []string {
	if len(s.cfg.Hints.Declarations) > 0 {
		return s.cfg.Hints.Declarations
	}
	return config.Default().Hints.Declarations
}

func (s *Session) waveHints() []string {
	if len(s.cfg.Hints.Waves) > 0 {
		return s.cfg.Hints.Waves
	}
	return config.Default().Hints.Waves
}

// Blocks returns the scanned blocks in text order.
func (s *Session) Blocks() []*block.Block { return s.blocks }

// Selected returns the active block, or nil.
func (s *Session) Selected() *block.Block { return s.selected }

// ActiveMode returns the resolved grammar for the selected block.
func (s *Session) ActiveMode() Mode { return s.active }

// Declarations returns the current declaration records.
func (s *Session) Declarations() []*decls.Declaration { return s.declRecords }

// Waves returns the current wave records.
func (s *Session) Waves() []*waves.Wave { return s.waveRecords }

// SourcePath returns the path the host text was read from.
func (s *Session) SourcePath() string { return s.sourcePath }

// Export serializes the current records, compresses them into the canonical
// framing, re-encodes, reapplies the obfuscation mask, and splices the
// result back into the original host text. Everything outside the edited
// span is reproduced byte for byte.
func (s *Session) Export() (string, error) {
	if s.selected == nil {
		return "", ErrNoActiveBlock
	}

	var plain string
	switch s.active {
	case ModeWaves:
		plain = waves.Serialize(s.waveRecords)
	default:
		plain = decls.Serialize(s.declRecords)
	}

	compressed, err := deflate.Compress(plain)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	encoded := codec.EncodeBase64(compressed)
	inner := mask.Reinsert(encoded, s.selected.MaskPositions, s.cfg.MaskByte())

	s.log.Info("exported payload",
		slog.Int("block", s.selected.Ordinal),
		slog.Int("plain_bytes", len(plain)),
		slog.Int("encoded_chars", len(encoded)))
	return block.Splice(s.hostText, s.selected, inner), nil
}
