// Package check provides system diagnostics (the check command) and
// pre-crawl dependency validation for the ffprobe binary.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/EldynC/ShadowCrawler/internal/config"
)

// ErrFFprobeNotFound is returned by CheckDeps when the configured ffprobe
// binary cannot be found on PATH.
var ErrFFprobeNotFound = errors.New("ffprobe not found on PATH")

// CheckDeps verifies the crawl can actually run: the configured ffprobe
// binary must be resolvable. Called before a crawl to fail fast instead of
// logging one probe failure per file.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFprobeBinary); err != nil {
		if cfg.FFprobeBinary != "ffprobe" {
			return fmt.Errorf("%q: %w", cfg.FFprobeBinary, ErrFFprobeNotFound)
		}
		return ErrFFprobeNotFound
	}
	return nil
}

// RunCheck runs the interactive check flow: prints ffprobe availability and
// version. Informational only, it does not stop on failure.
func RunCheck(cfg *config.Config, log *logrus.Logger) {
	log.Info("=== System Check ===")

	path, err := exec.LookPath(cfg.FFprobeBinary)
	if err != nil {
		log.Errorf("%s: not found on PATH", cfg.FFprobeBinary)
		return
	}
	log.Infof("%s: %s", cfg.FFprobeBinary, path)

	out, err := exec.Command(cfg.FFprobeBinary, "-version").Output()
	if err != nil {
		log.Warnf("%s found but -version failed: %v", cfg.FFprobeBinary, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Infof("version: %s", firstLine)
}
