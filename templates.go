package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// resolveTemplate maps a template name to its file under the templates
// directory. The error names both the requested template and the path that
// was checked, so a typo is easy to spot.
func resolveTemplate(dir, name string) (string, error) {
	path := filepath.Join(dir, name+".txt")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("template %q not found (looked for %s)", name, path)
		}
		return "", fmt.Errorf("template %q: stat %s: %w", name, path, err)
	}
	return path, nil
}

// loadTemplate reads the outline text for the named template.
func loadTemplate(dir, name string) (string, error) {
	path, err := resolveTemplate(dir, name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(data), nil
}

// listTemplates returns the sorted template names (.txt files, extension
// stripped) available under dir.
func listTemplates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read templates directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names, nil
}
