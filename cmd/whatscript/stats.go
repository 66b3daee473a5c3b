package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whatscript/internal/detect"
	"whatscript/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] [text]",
	Short: "Show the full per-script character tally",
	Long:  `Stats counts every script-bearing character in the input (no early exit) and prints the tally per writing system`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("file", "", "read input from a file instead of arguments or stdin")
	statsCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	statsCmd.Flags().Bool("nfc", false, "NFC-normalize the input before counting")
}

func runStats(cmd *cobra.Command, args []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	nfc, err := cmd.Flags().GetBool("nfc")
	if err != nil {
		return fmt.Errorf("failed to get nfc flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format := resolveOutput(formatFlag, cfg.Output.Format)
	colorMode := resolveOutput(colorFlag, cfg.Output.Color)

	text, err := readInput(args, filePath)
	if err != nil {
		return err
	}
	if nfc {
		text = normalizeNFC(text)
	}

	out := report.NewStatsOutput(detect.Tally(text))

	switch format {
	case "pretty":
		return report.StatsPretty(os.Stdout, out, useColor(colorMode, os.Stdout))
	case "json":
		return report.JSON(os.Stdout, out)
	case "msgpack":
		return report.Msgpack(os.Stdout, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
