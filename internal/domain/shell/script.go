package shell

import (
	"bufio"
	"io"
	"strings"
)

// RunScript feeds newline-separated command lines to the engine in file
// order, skipping blank lines. Execution stops after a line that ends
// the session. The results of every executed line are returned in
// order so callers can display or log them like interactive output.
func RunScript(e *Engine, r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result := e.Execute(line)
		results = append(results, result)
		if result.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return results, err
	}
	return results, nil
}
