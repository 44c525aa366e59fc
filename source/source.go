// Package source locates and loads scheme documents.
package source

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Document is one scheme file ready for parsing.
type Document struct {
	// Path is the file path as resolved.
	Path string

	// Text is the raw document text.
	Text string
}

// ResolvePaths expands glob patterns to scheme file paths. Patterns
// support both single-level (*) and recursive (**) wildcards; paths
// without glob metacharacters pass through untouched so a missing
// explicit file surfaces as a load error rather than silently matching
// nothing. The result is sorted and de-duplicated.
func ResolvePaths(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			add(match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load reads one scheme document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scheme file: %w", err)
	}
	return &Document{Path: path, Text: string(data)}, nil
}
