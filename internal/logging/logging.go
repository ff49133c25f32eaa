// Package logging configures the process-wide logrus logger: level, color
// mode, and an optional plain-text file sink alongside the console.
package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/EldynC/ShadowCrawler/internal/config"
	"github.com/EldynC/ShadowCrawler/internal/term"
)

// Setup configures the logrus standard logger from cfg and returns it.
// When cfg.LogFile is set, a hook mirrors every entry (colorless) to the
// file in append mode; the caller owns the returned closer.
func Setup(cfg *config.Config) (*logrus.Logger, func() error, error) {
	term.Configure(cfg.ColorMode)

	log := logrus.StandardLogger()
	log.ReplaceHooks(make(logrus.LevelHooks))
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     term.Enabled(),
		DisableColors:   !term.Enabled(),
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	closer := func() error { return nil }
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		log.AddHook(&fileHook{file: f, formatter: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}})
		closer = f.Close
	}
	return log, closer, nil
}

// fileHook mirrors every log entry to a file without ANSI colors, so the
// console can stay colored while the file stays grep-able.
type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(line)
	return err
}
