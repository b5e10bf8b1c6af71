package priceinput

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// HintLoader loads hint catalogs from JSON or YAML files on top of the embedded defaults
type HintLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewHintLoader creates a loader. An empty path loads only the embedded catalog.
func NewHintLoader(defaultPath string) *HintLoader {
	return &HintLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a file whose placeholder for currency replaces the loaded one
func (l *HintLoader) AddOverride(currency, path string) {
	l.overrides[currency] = path
}

// Load returns the embedded catalog merged with the configured files.
func (l *HintLoader) Load() (*HintCatalog, error) {
	catalog, err := DefaultHintCatalog()
	if err != nil {
		return nil, err
	}

	if l == nil {
		return catalog, nil
	}

	if l.defaultPath != "" {
		user, err := readHintFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("priceinput: load hints: %w", err)
		}
		catalog.merge(user)
	}

	// deterministic order so two overrides of the same code resolve the same way
	currencies := make([]string, 0, len(l.overrides))
	for currency := range l.overrides {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	for _, currency := range currencies {
		if err := l.loadOverride(catalog, currency, l.overrides[currency]); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// LoadFiles merges every path, in order, over the embedded catalog.
func (l *HintLoader) LoadFiles(paths ...string) (*HintCatalog, error) {
	if len(paths) == 0 {
		return nil, ErrNoHintPaths
	}

	catalog, err := DefaultHintCatalog()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		src, err := readHintFile(path)
		if err != nil {
			return nil, fmt.Errorf("priceinput: load hints: %w", err)
		}
		catalog.merge(src)
	}
	return catalog, nil
}

func (l *HintLoader) loadOverride(base *HintCatalog, currency, path string) error {
	override, err := readHintFile(path)
	if err != nil {
		return fmt.Errorf("priceinput: load hint override for %q: %w", currency, err)
	}

	code, ok := NormalizeCurrency(currency)
	if !ok {
		return fmt.Errorf("priceinput: hint override for unknown currency %q", currency)
	}

	hint := override.Placeholders[code]
	if hint == "" {
		hint = override.DefaultPlaceholder
	}
	if hint == "" {
		return fmt.Errorf("priceinput: hint override %s has no placeholder for %q", path, code)
	}

	base.merge(&HintCatalog{Placeholders: map[string]string{code: hint}})
	return nil
}

func readHintFile(path string) (*HintCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	catalog, err := decodeHintFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return catalog, nil
}

func decodeHintFile(path string, data []byte) (*HintCatalog, error) {
	var catalog HintCatalog

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return &catalog, nil
}
