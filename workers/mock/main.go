// Mock worker reads the sweep driver's properties file and emits the
// plain-text metric lines the driver scrapes, so the driver can be
// exercised end to end without the real benchmark jar.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	configPath := flag.String("config", "", "path to the properties file")
	flag.Parse()

	if *configPath == "" {
		fatal("--config flag is required")
	}

	props, err := loadProperties(*configPath)
	if err != nil {
		fatal(err.Error())
	}

	op := props["operation"]
	structure := props["datastructures.type"]

	querySize, err := strconv.Atoi(props["querySize"])
	if err != nil {
		fatal("invalid querySize: " + props["querySize"])
	}

	fmt.Fprintf(os.Stderr, "mock worker: %s %s querySize=%d\n",
		structure, op, querySize)

	// Fabricated figures that scale with the query size, so sweeps
	// produce a plausible-looking report.
	fmt.Printf("Execution time: %d ms\n", querySize/10_000)
	fmt.Printf("Memory used: %d MB\n", querySize/100_000)
}

func loadProperties(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open properties: %w", err)
	}
	defer f.Close()

	props := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	return props, nil
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "mock-worker: "+msg)
	os.Exit(1)
}
