package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"whatscript/internal/detect"
	"whatscript/internal/report"
	"whatscript/internal/script"
)

func TestNewDetectOutput(t *testing.T) {
	out := report.NewDetectOutput(script.Cyrillic, true)
	if !out.Detected || out.Script != "Cyrillic" || out.Ordinal != int(script.Cyrillic) {
		t.Errorf("unexpected output: %+v", out)
	}

	out = report.NewDetectOutput(0, false)
	if out.Detected || out.Script != "" || out.Ordinal != -1 {
		t.Errorf("unexpected no-script output: %+v", out)
	}
}

func TestNewStatsOutputSorted(t *testing.T) {
	counts := detect.Tally("любовь means love")
	out := report.NewStatsOutput(counts)
	if out.Total != 15 {
		t.Fatalf("Total = %d, want 15", out.Total)
	}
	if len(out.Counts) != 2 {
		t.Fatalf("rows = %d, want 2", len(out.Counts))
	}
	if out.Counts[0].Script != "Latin" || out.Counts[0].Count != 9 {
		t.Errorf("row 0 = %+v, want Latin 9", out.Counts[0])
	}
	if out.Counts[1].Script != "Cyrillic" || out.Counts[1].Count != 6 {
		t.Errorf("row 1 = %+v, want Cyrillic 6", out.Counts[1])
	}
}

func TestDetectPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.DetectPretty(&buf, report.NewDetectOutput(script.Latin, true), false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Latin\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	if err := report.DetectPretty(&buf, report.NewDetectOutput(0, false), false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "no dominant script\n" {
		t.Errorf("got %q", got)
	}
}

func TestStatsPretty(t *testing.T) {
	var buf bytes.Buffer
	out := report.NewStatsOutput(detect.Tally("любовь means love"))
	if err := report.StatsPretty(&buf, out, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Latin") || !strings.HasSuffix(lines[0], "9") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "total") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := report.NewDetectOutput(script.Greek, true)
	if err := report.JSON(&buf, in); err != nil {
		t.Fatal(err)
	}
	var out report.DetectOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip changed payload: %+v != %+v", out, in)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := report.NewStatsOutput(detect.Tally("Привет"))
	if err := report.Msgpack(&buf, in); err != nil {
		t.Fatal(err)
	}
	var out report.StatsOutput
	if err := msgpack.NewDecoder(&buf).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Total != in.Total || len(out.Counts) != len(in.Counts) {
		t.Errorf("round trip changed payload: %+v != %+v", out, in)
	}
}
