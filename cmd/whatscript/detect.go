package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whatscript/internal/detect"
	"whatscript/internal/report"
)

var detectCmd = &cobra.Command{
	Use:   "detect [flags] [text]",
	Short: "Detect the dominant script of a text",
	Long:  `Detect classifies text (from arguments, --file, or stdin) by the writing system that dominates it`,
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().String("file", "", "read input from a file instead of arguments or stdin")
	detectCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	detectCmd.Flags().Int("shards", 0, "number of parallel chunks (0 = automatic, 1 = sequential)")
	detectCmd.Flags().Bool("nfc", false, "NFC-normalize the input before detection")
}

func runDetect(cmd *cobra.Command, args []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	shards, err := cmd.Flags().GetInt("shards")
	if err != nil {
		return fmt.Errorf("failed to get shards flag: %w", err)
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
	if !cmd.Flags().Changed("shards") {
		shards = cfg.Shards()
	}

	text, err := readInput(args, filePath)
	if err != nil {
		return err
	}
	if nfc {
		text = normalizeNFC(text)
	}

	detector := detect.New(detect.Options{Shards: shards})
	s, ok := detector.Detect(text)
	out := report.NewDetectOutput(s, ok)

	switch format {
	case "pretty":
		return report.DetectPretty(os.Stdout, out, useColor(colorMode, os.Stdout))
	case "json":
		return report.JSON(os.Stdout, out)
	case "msgpack":
		return report.Msgpack(os.Stdout, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
