// Package report renders detection results for the CLI: a pretty
// human-readable form plus JSON and msgpack for machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"whatscript/internal/detect"
	"whatscript/internal/script"
)

// DetectOutput is the serializable result of a single detection.
type DetectOutput struct {
	Detected bool   `json:"detected" msgpack:"detected"`
	Script   string `json:"script,omitempty" msgpack:"script,omitempty"`
	Ordinal  int    `json:"ordinal" msgpack:"ordinal"`
}

// ScriptCount is one row of a tally.
type ScriptCount struct {
	Script string `json:"script" msgpack:"script"`
	Count  uint32 `json:"count" msgpack:"count"`
}

// StatsOutput is the serializable form of a full tally.
type StatsOutput struct {
	Total  uint64        `json:"total" msgpack:"total"`
	Counts []ScriptCount `json:"counts" msgpack:"counts"`
}

// NewDetectOutput builds the output payload for a detection result.
func NewDetectOutput(s script.Script, ok bool) DetectOutput {
	out := DetectOutput{Detected: ok, Ordinal: -1}
	if ok {
		out.Script = s.Name()
		out.Ordinal = int(s)
	}
	return out
}

// NewStatsOutput builds the output payload for a tally, rows sorted by
// count descending; equal counts keep table order. Zero rows are omitted.
func NewStatsOutput(counts detect.Counts) StatsOutput {
	out := StatsOutput{Total: counts.Total()}
	for i, c := range script.Checkers {
		n := counts[i]
		if n == 0 {
			continue
		}
		out.Counts = append(out.Counts, ScriptCount{Script: c.Script.Name(), Count: n})
	}
	sort.SliceStable(out.Counts, func(i, j int) bool {
		return out.Counts[i].Count > out.Counts[j].Count
	})
	return out
}

var (
	winnerColor = color.New(color.FgGreen, color.Bold)
	noneColor   = color.New(color.FgYellow)
)

// DetectPretty writes a one-line human-readable detection result.
func DetectPretty(w io.Writer, out DetectOutput, useColor bool) error {
	if !out.Detected {
		msg := "no dominant script"
		if useColor {
			msg = noneColor.Sprint(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	name := out.Script
	if useColor {
		name = winnerColor.Sprint(name)
	}
	_, err := fmt.Fprintln(w, name)
	return err
}

// StatsPretty writes the tally as aligned "name count" rows.
func StatsPretty(w io.Writer, out StatsOutput, useColor bool) error {
	if len(out.Counts) == 0 {
		msg := "no script-bearing characters"
		if useColor {
			msg = noneColor.Sprint(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	nameWidth := 0
	for _, row := range out.Counts {
		if w := runewidth.StringWidth(row.Script); w > nameWidth {
			nameWidth = w
		}
	}
	for i, row := range out.Counts {
		name := runewidth.FillRight(row.Script, nameWidth)
		if useColor && i == 0 {
			name = winnerColor.Sprint(name)
		}
		if _, err := fmt.Fprintf(w, "%s %6d\n", name, row.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s %6d\n", runewidth.FillRight("total", nameWidth), out.Total)
	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Msgpack writes v as a msgpack stream.
func Msgpack(w io.Writer, v any) error {
	return msgpack.NewEncoder(w).Encode(v)
}
