// Package prompts holds the text-generation prompt templates for the
// tailoring stage. The templates live in tailoring.json, embedded at build
// time and keyed by name.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed tailoring.json
var tailoringJSON []byte

var (
	once      sync.Once
	templates map[string]string
	loadErr   error
)

func load() (map[string]string, error) {
	once.Do(func() {
		loadErr = json.Unmarshal(tailoringJSON, &templates)
	})
	return templates, loadErr
}

// Get returns the prompt template stored under key.
func Get(key string) (string, error) {
	all, err := load()
	if err != nil {
		return "", fmt.Errorf("prompt templates are unreadable: %w", err)
	}
	template, ok := all[key]
	if !ok {
		return "", fmt.Errorf("no prompt template named %q", key)
	}
	return template, nil
}

// MustGet is Get for templates the binary embeds; a missing key is a
// programming error, so it panics.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(err)
	}
	return template
}

// Format substitutes {{.Key}} placeholders in a template with values
// from data.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}
