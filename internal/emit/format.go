package emit

import (
	"fmt"

	"mvdan.cc/gofumpt/format"
)

// FormatGo formats generated Go source with gofumpt. Unlike hand-written
// files, generated output that does not format is a generator bug, so the
// error is returned rather than the original buffer.
func FormatGo(content []byte, filePath string) ([]byte, error) {
	formatted, err := format.Source(content, format.Options{})
	if err != nil {
		return nil, fmt.Errorf("gofumpt %s: %w", filePath, err)
	}
	return formatted, nil
}
