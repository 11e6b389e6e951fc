package main

import (
	"fmt"
	"strings"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var outputFormats = []string{outputText, outputYAML, outputJSON}

func validateOutputFormat(format string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, f := range outputFormats {
		if normalized == f {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q (expected one of %s)", format, strings.Join(outputFormats, ", "))
}
