// Package report serializes sweep records into the JSON artifact and
// a human-readable summary table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/balajisukumaran/probabilistic-data-structures/sweep"
)

// WriteJSON writes records as an indented JSON array to w, preserving
// enumeration order. A nil slice still produces an empty array.
func WriteJSON(w io.Writer, records []sweep.Record) error {
	if records == nil {
		records = []sweep.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// WriteFile persists the report artifact to path, replacing any prior
// content. This is the sweep's sole output file, written once at
// completion.
func WriteFile(path string, records []sweep.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}

	if err := WriteJSON(f, records); err != nil {
		f.Close()

		return fmt.Errorf("write report: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}

	return nil
}

// Generate writes a markdown summary table for the given records.
// The slowdown column is relative to the fastest measured point.
func Generate(w io.Writer, records []sweep.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to report")
	}

	fastestMs := findFastest(records)

	fmt.Fprintln(w, "## Sweep Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Query Size | Structure | Operation | Time "+
		"| Memory | CPU | Slowdown |")
	fmt.Fprintln(w, "|------------|-----------|-----------|------"+
		"|--------|-----|----------|")

	for _, r := range records {
		slowdown := "-"
		if fastestMs > 0 && r.ExecutionTimeMs != nil && *r.ExecutionTimeMs > 0 {
			slowdown = fmt.Sprintf("%.2fx",
				float64(*r.ExecutionTimeMs)/float64(fastestMs))
		}

		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %.1f%% | %s |\n",
			r.QuerySize,
			r.Structure,
			r.Operation,
			formatMs(r.ExecutionTimeMs),
			formatMb(r.MemoryUsedMb),
			r.CPUUsagePercent,
			slowdown,
		)
	}

	return nil
}

func findFastest(records []sweep.Record) int64 {
	fastest := int64(math.MaxInt64)
	for _, r := range records {
		if r.ExecutionTimeMs != nil && *r.ExecutionTimeMs > 0 &&
			*r.ExecutionTimeMs < fastest {
			fastest = *r.ExecutionTimeMs
		}
	}

	if fastest == math.MaxInt64 {
		return 0
	}

	return fastest
}

func formatMs(ms *int64) string {
	if ms == nil {
		return "-"
	}

	if *ms < 1000 {
		return fmt.Sprintf("%dms", *ms)
	}

	return fmt.Sprintf("%.2fs", float64(*ms)/1000)
}

func formatMb(mb *int64) string {
	if mb == nil {
		return "-"
	}

	return fmt.Sprintf("%d MB", *mb)
}
