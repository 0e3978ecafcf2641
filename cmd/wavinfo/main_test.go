package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1,2,3", want: []int{1, 2, 3}},
		{in: " 4 , ,2,4", want: []int{4, 2}},
		{in: "-1", want: []int{-1}},
		{in: "", wantErr: true},
		{in: "1,x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseIntList(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIntList(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIntList(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseIntList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestRunPrintsTable(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(&buf, logger, config{
		signal:     "ramp",
		rows:       8,
		cols:       8,
		seed:       1,
		levels:     []int{1, 5},
		thresholds: []int{0, 3},
		dct:        true,
		workers:    2,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header, separator, 4 haar rows, 2 dct rows
	if len(lines) != 8 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "haar") || !strings.Contains(lines[2], "1/1") {
		t.Fatalf("unexpected first row %q", lines[2])
	}
	if !strings.Contains(lines[4], "3/5") {
		t.Fatalf("8x8 grid should stop after 3 levels: %q", lines[4])
	}
	if !strings.HasPrefix(lines[6], "dct") {
		t.Fatalf("unexpected dct row %q", lines[6])
	}
}

func TestRunUnknownSignal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(io.Discard, logger, config{signal: "sawtooth", rows: 4, cols: 4, levels: []int{1}, thresholds: []int{0}})
	if err == nil || !strings.Contains(err.Error(), "unknown signal") {
		t.Fatalf("err = %v, want unknown signal", err)
	}
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf)
	if !strings.Contains(buf.String(), "Haar kernel:") {
		t.Fatalf("info output missing kernel line:\n%s", buf.String())
	}
}
