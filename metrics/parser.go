// Package metrics extracts measurements from worker output and
// samples host CPU utilization.
package metrics

import (
	"regexp"
	"strconv"
)

// Measurement holds the figures scraped from one worker run. A nil
// field means the worker's output did not contain that figure.
type Measurement struct {
	ExecutionTimeMs *int64
	MemoryUsedMb    *int64
}

// Parser extracts a Measurement from captured worker stdout. Parsing
// never fails: unmatched output just yields an empty Measurement.
type Parser interface {
	Parse(stdout string) Measurement
}

// TextParser scrapes the plain-text worker format:
//
//	Execution time: <N> ms
//	Memory used: <N> MB
//
// The first match of each pattern wins; the patterns are matched
// independently, so either figure may be present without the other.
type TextParser struct{}

var (
	execTimeRe = regexp.MustCompile(`Execution time: (\d+) ms`)
	memUsedRe  = regexp.MustCompile(`Memory used: (\d+) MB`)
)

// Parse implements Parser.
func (TextParser) Parse(stdout string) Measurement {
	var m Measurement

	if stdout == "" {
		return m
	}

	m.ExecutionTimeMs = firstInt(execTimeRe, stdout)
	m.MemoryUsedMb = firstInt(memUsedRe, stdout)

	return m
}

func firstInt(re *regexp.Regexp, s string) *int64 {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}

	v, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return nil
	}

	return &v
}
