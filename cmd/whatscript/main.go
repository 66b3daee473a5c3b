package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"whatscript/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "whatscript",
	Short: "Writing-system detector",
	Long:  `whatscript tells you which script (Latin, Cyrillic, Arabic, ...) dominates a piece of text`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
