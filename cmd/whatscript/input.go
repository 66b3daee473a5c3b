package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"whatscript/internal/config"
)

// readInput returns the text to classify: positional args joined with
// spaces, the contents of filePath, or stdin, in that priority order.
// Decoding is the caller's concern: anything that is not valid UTF-8 is
// rejected here, before the detector sees it.
func readInput(args []string, filePath string) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = strings.Join(args, " ")
	case filePath != "":
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		text = string(raw)
	default:
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	return text, nil
}

// normalizeNFC applies NFC normalization. The detector itself never
// normalizes; this happens only at the CLI boundary when asked for.
func normalizeNFC(text string) string {
	return norm.NFC.String(text)
}

// resolveOutput merges a flag value with the config default. An empty
// flag means "not set on the command line".
func resolveOutput(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// useColor decides whether w gets colored output for the given mode.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// loadConfig reads whatscript.toml defaults from the working directory
// upward. Errors in an existing file are reported; absence is not.
func loadConfig() (config.Config, error) {
	cfg, _, err := config.Load(".")
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}
