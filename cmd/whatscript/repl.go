package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"whatscript/internal/detect"
	"whatscript/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Classify text interactively as you type",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().Int("shards", 0, "number of parallel chunks (0 = automatic, 1 = sequential)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	shards, err := cmd.Flags().GetInt("shards")
	if err != nil {
		return fmt.Errorf("failed to get shards flag: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("shards") {
		shards = cfg.Shards()
	}

	model := ui.NewReplModel(detect.New(detect.Options{Shards: shards}))
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}
