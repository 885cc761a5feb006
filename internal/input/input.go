// Package input expands command arguments that use - (stdin) or @file syntax.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcus/daypick/internal/output"
)

// ExpandArgs expands - (read stdin) and @path (read file) arguments and
// returns all resulting lines in order. stdin is consumed at most once;
// further - arguments are skipped with a warning.
func ExpandArgs(args []string, stdin io.Reader) ([]string, error) {
	var result []string
	stdinUsed := false
	for _, v := range args {
		switch {
		case v == "-":
			if stdinUsed {
				output.Warning("stdin already used, ignoring additional -")
				continue
			}
			stdinUsed = true
			result = append(result, ReadLinesFromReader(stdin)...)
		case strings.HasPrefix(v, "@") && len(v) > 1:
			path := strings.TrimPrefix(v, "@")
			file, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			lines := ReadLinesFromReader(file)
			file.Close()
			result = append(result, lines...)
		default:
			result = append(result, v)
		}
	}
	return result, nil
}

// ReadLinesFromReader reads non-empty lines from a reader.
func ReadLinesFromReader(r io.Reader) []string {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
