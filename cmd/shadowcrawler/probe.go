package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/EldynC/ShadowCrawler/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe FILE",
	Short: "Probe a single media file and print its video facts as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &probe.FFprobe{Binary: cfg.FFprobeBinary}
		info, err := p.Probe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Duration *float64 `json:"duration,omitempty"`
			Width    *int     `json:"width,omitempty"`
			Height   *int     `json:"height,omitempty"`
			FPS      *float64 `json:"fps,omitempty"`
			Codec    *string  `json:"codec,omitempty"`
		}{info.Duration, info.Width, info.Height, info.FPS, info.Codec})
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVar(&cfg.FFprobeBinary, "ffprobe", cfg.FFprobeBinary, "ffprobe executable to invoke")
}
