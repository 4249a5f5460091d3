// Package prompts builds the remediation instruction blocks handed to a
// downstream text-generation collaborator. Templates are stored as JSON and
// embedded at compile time; no scoring logic lives here.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed remediation.json
var promptFiles embed.FS

var (
	loadOnce  sync.Once
	templates map[string]string
	loadErr   error
)

// load parses the embedded template file once.
func load() (map[string]string, error) {
	loadOnce.Do(func() {
		data, err := promptFiles.ReadFile("remediation.json")
		if err != nil {
			loadErr = fmt.Errorf("failed to read embedded prompt file: %w", err)
			return
		}
		if err := json.Unmarshal(data, &templates); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file: %w", err)
		}
	})
	return templates, loadErr
}

// Get retrieves a template by key, falling back to the "default" template
// for unknown section families.
func Get(key string) (string, error) {
	prompts, err := load()
	if err != nil {
		return "", err
	}
	if tmpl, ok := prompts[key]; ok {
		return tmpl, nil
	}
	tmpl, ok := prompts["default"]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found and no default template exists", key)
	}
	return tmpl, nil
}

// Format replaces placeholders of the form {{.Key}} with values from data.
// A simple substitution keeps the templates inspectable as plain text.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
