// Command shadowcrawler is the CLI entrypoint for the video gallery core:
// it crawls directories for video metadata, probes single files, serves
// chunked reads, and reports tool availability.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/EldynC/ShadowCrawler/internal/config"
	"github.com/EldynC/ShadowCrawler/internal/logging"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

var (
	cfg       = config.Default()
	colorMode string
	log       *logrus.Logger
	logCloser = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "shadowcrawler",
	Short: "Discover video files and extract their metadata",
	Long: `ShadowCrawler is the filesystem core behind the video gallery app.
It crawls directory trees for video files, extracts per-file metadata with
ffprobe, and serves file content in bounded chunks for playback.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.ApplyColorMode(&cfg, colorMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
		var err error
		log, logCloser, err = logging.Setup(&cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logCloser()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shadowcrawler v%s (%s)\n", version, commit)
	},
}

func init() {
	config.RegisterGlobal(rootCmd.PersistentFlags(), &cfg, &colorMode)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shadowcrawler: %v\n", err)
		os.Exit(1)
	}
}
