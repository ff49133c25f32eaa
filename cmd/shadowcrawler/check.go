package main

import (
	"github.com/spf13/cobra"

	"github.com/EldynC/ShadowCrawler/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report availability and version of the ffprobe binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		check.RunCheck(&cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&cfg.FFprobeBinary, "ffprobe", cfg.FFprobeBinary, "ffprobe executable to check")
}
