package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balajisukumaran/probabilistic-data-structures/sweep"
)

func ptr(v int64) *int64 { return &v }

func sampleRecords() []sweep.Record {
	return []sweep.Record{
		{
			QuerySize:       1_000_000,
			Operation:       sweep.Insert,
			Structure:       sweep.ConcurrentSkipList,
			ExecutionTimeMs: ptr(1000),
			MemoryUsedMb:    ptr(56),
			CPUUsagePercent: 20.5,
		},
		{
			QuerySize:       1_000_000,
			Operation:       sweep.Search,
			Structure:       sweep.BloomFilter,
			ExecutionTimeMs: ptr(2000),
			MemoryUsedMb:    nil,
			CPUUsagePercent: 31,
		},
		{
			QuerySize:       1_100_000,
			Operation:       sweep.Delete,
			Structure:       sweep.CuckooFilter,
			ExecutionTimeMs: nil,
			MemoryUsedMb:    nil,
			CPUUsagePercent: 0,
		},
	}
}

func TestWriteJSONKeysAndNulls(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	out := buf.String()

	// Key order within a record is fixed.
	keys := []string{
		`"querySize"`,
		`"operation"`,
		`"datastructures_type"`,
		`"execution_time_ms"`,
		`"memory_used_mb"`,
		`"cpu_usage_percent"`,
	}

	last := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		if idx < 0 {
			t.Fatalf("key %s missing from output:\n%s", k, out)
		}
		if idx < last {
			t.Errorf("key %s out of order", k)
		}
		last = idx
	}

	if !strings.Contains(out, `"execution_time_ms": null`) {
		t.Error("missing measurement not serialized as null")
	}

	var parsed []sweep.Record
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 3 {
		t.Fatalf("parsed %d records, want 3", len(parsed))
	}

	if parsed[1].MemoryUsedMb != nil {
		t.Error("null memory field did not round-trip to nil")
	}
}

func TestWriteJSONPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var parsed []sweep.Record
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	wantStructures := []sweep.Structure{
		sweep.ConcurrentSkipList, sweep.BloomFilter, sweep.CuckooFilter,
	}
	for i, want := range wantStructures {
		if parsed[i].Structure != want {
			t.Errorf("record %d structure = %s, want %s",
				i, parsed[i].Structure, want)
		}
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty report = %q, want []", buf.String())
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")

	stale := strings.Repeat("x", 4096)
	if err := os.WriteFile(path, []byte(stale), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	if err := WriteFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var parsed []sweep.Record
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("report is not valid JSON (stale content left?): %v", err)
	}

	if len(parsed) != 3 {
		t.Errorf("parsed %d records, want 3", len(parsed))
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleRecords()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"ConcurrentSkipList", "BloomFilter", "CuckooFilter",
		"1.00s", "56 MB", "2.00x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	// Unmeasured points render placeholders, not zeroes.
	if !strings.Contains(out, "| - | - |") {
		t.Errorf("summary missing placeholders for null fields:\n%s", out)
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, nil); err == nil {
		t.Error("expected error for empty records")
	}
}
