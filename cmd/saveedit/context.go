package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"saveedit/internal/config"
	"saveedit/internal/history"
	"saveedit/internal/logging"
	"saveedit/internal/session"
)

type commandContext struct {
	configFlag *string
	modeFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, modeFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, modeFlag: modeFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// mode resolves the requested grammar from the --mode flag, falling back to
// the configured default.
func (c *commandContext) mode() (session.Mode, error) {
	if c.modeFlag != nil && strings.TrimSpace(*c.modeFlag) != "" {
		return session.ParseMode(strings.TrimSpace(*c.modeFlag))
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return session.ParseMode(cfg.Editor.DefaultMode)
}

// openSession reads a host file and opens a session on it. The informational
// no-decodable-block outcome is returned as a result, not an error.
func (c *commandContext) openSession(path string) (*session.Session, *session.OpenResult, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	mode, err := c.mode()
	if err != nil {
		return nil, nil, err
	}

	hostBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read host file: %w", err)
	}

	sess := session.New(cfg, c.ensureLogger(), mode)
	result, err := sess.Open(path, string(hostBytes))
	if err != nil {
		return nil, nil, err
	}
	c.journalOpen(sess, result)
	return sess, result, nil
}

// journalOpen records the session in the history journal. Journal failures
// are logged and swallowed; the edit pipeline never depends on it.
func (c *commandContext) journalOpen(sess *session.Session, result *session.OpenResult) {
	cfg, _ := c.ensureConfig()
	store, err := history.Open(context.Background(), cfg)
	if err != nil {
		if !errors.Is(err, history.ErrDisabled) {
			c.ensureLogger().Debug("history journal unavailable", slog.String("error", err.Error()))
		}
		return
	}
	defer store.Close()

	entry := history.Entry{
		ID:              result.SessionID,
		Title:           session.DeriveTitle(sess.SourcePath()),
		SourcePath:      sess.SourcePath(),
		Mode:            string(result.Mode),
		BlockCount:      len(result.Blocks),
		SelectedOrdinal: result.SelectedOrdinal,
	}
	if err := store.RecordOpen(context.Background(), entry); err != nil {
		c.ensureLogger().Debug("history journal write failed", slog.String("error", err.Error()))
	}
}

// journalExport marks the session's journal row as exported.
func (c *commandContext) journalExport(sessionID, exportPath string) {
	cfg, _ := c.ensureConfig()
	store, err := history.Open(context.Background(), cfg)
	if err != nil {
		return
	}
	defer store.Close()
	if err := store.RecordExport(context.Background(), sessionID, exportPath); err != nil {
		c.ensureLogger().Debug("history journal update failed", slog.String("error", err.Error()))
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
