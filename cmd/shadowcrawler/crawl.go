package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/EldynC/ShadowCrawler/internal/check"
	"github.com/EldynC/ShadowCrawler/internal/config"
	"github.com/EldynC/ShadowCrawler/internal/crawl"
	"github.com/EldynC/ShadowCrawler/internal/display"
	"github.com/EldynC/ShadowCrawler/internal/probe"
	"github.com/EldynC/ShadowCrawler/internal/term"
)

var crawlOut string

var crawlCmd = &cobra.Command{
	Use:   "crawl DIR",
	Short: "Recursively index the video files under a directory",
	Long: `Walk DIR, probe every recognized video file with ffprobe, and emit one
JSON record per file (the shape the gallery front-end consumes). Files that
cannot be read or probed are logged and skipped; the crawl itself only
fails when DIR cannot be traversed at all.

Point it at a subdirectory to re-index just that part of the library.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := check.CheckDeps(&cfg); err != nil {
			return err
		}

		// Keep stdout pure JSON when piped; the banner is interactive only.
		if term.IsTerminal(os.Stdout) || crawlOut != "" {
			display.PrintBanner()
		}
		log.Infof("Crawling %s", root)

		c := crawl.New(&probe.FFprobe{Binary: cfg.FFprobeBinary})
		c.Extensions = cfg.ExtensionSet()

		// Progress bar on stderr when interactive; stdout stays pure JSON.
		var bar *progressbar.ProgressBar
		if term.IsTerminal(os.Stderr) {
			c.Progress = func(path string, done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionSetDescription("probing"),
						progressbar.OptionClearOnFinish(),
					)
				}
				_ = bar.Add(1)
			}
		}

		videos, err := c.Crawl(cmd.Context(), root)
		if err != nil {
			return err
		}

		var totalBytes int64
		var totalSeconds float64
		for _, v := range videos {
			totalBytes += int64(v.FileSize)
			if v.Duration != nil {
				totalSeconds += *v.Duration
			}
		}
		log.Infof("Indexed %d videos, %s, %s of footage",
			len(videos), display.FormatBytes(totalBytes), display.FormatDuration(totalSeconds))

		out := os.Stdout
		if crawlOut != "" {
			f, err := os.Create(crawlOut)
			if err != nil {
				return fmt.Errorf("create %q: %w", crawlOut, err)
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(videos)
	},
}

func init() {
	rootCmd.AddCommand(crawlCmd)
	config.RegisterCrawl(crawlCmd.Flags(), &cfg)
	crawlCmd.Flags().StringVarP(&crawlOut, "out", "o", "", "Write the JSON records to this file instead of stdout")
}
