// Package universe loads the symbol list a scan runs over.
package universe

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads one ticker per line. Blank lines and lines starting with
// '#' are skipped, symbols are uppercased, and duplicates keep their first
// position so the scan order matches the file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	var symbols []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		symbol := strings.ToUpper(line)
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		symbols = append(symbols, symbol)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ticker file: %w", err)
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("ticker file %s contains no symbols", path)
	}

	return symbols, nil
}

// Parse splits a comma-separated symbol argument, with the same
// normalization as LoadFile.
func Parse(arg string) []string {
	var symbols []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(arg, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(part))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		symbols = append(symbols, symbol)
	}
	return symbols
}
