// Package config rewrites the worker's properties file between sweep
// runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Recognized property keys. Lines are matched on their trimmed
// prefix; everything else passes through untouched.
const (
	keyOperation = "operation"
	keyQuerySize = "querySize"
	keyStructure = "datastructures.type"
)

// Assignment holds the three recognized properties for one worker
// run.
type Assignment struct {
	Operation string
	QuerySize int
	Structure string
}

// Render returns text with each recognized property line replaced by
// the canonical assignment and every other line passed through
// byte-identical, in original order. No lines are added or removed:
// a file missing a recognized key simply does not receive that
// update.
func Render(text string, a Assignment) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, keyOperation):
			fmt.Fprintf(&b, "%s = %s\n", keyOperation, a.Operation)
		case strings.HasPrefix(trimmed, keyQuerySize):
			fmt.Fprintf(&b, "%s = %d\n", keyQuerySize, a.QuerySize)
		case strings.HasPrefix(trimmed, keyStructure):
			fmt.Fprintf(&b, "%s = %s\n", keyStructure, a.Structure)
		default:
			b.WriteString(line)
		}
	}

	return b.String()
}

// Apply reads the properties file at path, renders the assignment
// into it, and writes the result back in place. The write goes
// through a temp file in the same directory so a crash mid-write
// cannot leave a truncated config behind.
func Apply(path string, a Assignment) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read properties %s: %w", path, err)
	}

	rendered := Render(string(data), a)

	return writeFileAtomic(path, []byte(rendered))
}

func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), info.Mode()); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
