package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/flatmat/matrix"
)

// formatPretty is the stdout-only human-readable rendering.
const formatPretty = "pretty"

// formatForPath picks a codec format from a file extension.
func formatForPath(path string) (matrix.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return matrix.FormatJSON, nil
	case ".yaml", ".yml":
		return matrix.FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported matrix file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// readMatrix loads a float64 matrix document, picking the codec from the
// file extension.
func readMatrix(path string) (matrix.Matrix[float64], error) {
	f, err := formatForPath(path)
	if err != nil {
		return matrix.Empty[float64](), err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return matrix.Empty[float64](), err
	}
	m, err := matrix.Decode[float64](raw, f)
	if err != nil {
		return matrix.Empty[float64](), fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// writeMatrix emits m to the output path, or to stdout when path is empty.
// The format argument ("json", "yaml", "pretty") wins over the extension;
// "pretty" is only legal for stdout.
func writeMatrix(m matrix.Matrix[float64], path, format string) error {
	if path == "" {
		if format == formatPretty || format == "" {
			_, err := fmt.Println(matrix.Pretty(m))
			return err
		}
		raw, err := matrix.Encode(m, matrix.Format(format))
		if err != nil {
			return err
		}
		_, err = fmt.Println(strings.TrimRight(string(raw), "\n"))
		return err
	}

	f := matrix.Format(format)
	if format == "" {
		var err error
		if f, err = formatForPath(path); err != nil {
			return err
		}
	} else if format == formatPretty {
		return fmt.Errorf("pretty output is stdout-only; pick json or yaml for %q", path)
	}
	raw, err := matrix.Encode(m, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
