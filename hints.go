package priceinput

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

//go:embed data/hints.yaml
var defaultHintsYAML []byte

// DefaultCurrency is used when no currency tag is configured
const DefaultCurrency = "IRR"

// HintCatalog holds the user facing strings of the field: placeholder hints per
// currency and the message shown for rejected input.
type HintCatalog struct {
	Placeholders       map[string]string `json:"placeholders" yaml:"placeholders"`
	DefaultPlaceholder string            `json:"default_placeholder" yaml:"default_placeholder"`
	ErrorMessage       string            `json:"error_message" yaml:"error_message"`
}

// DefaultHintCatalog decodes the catalog embedded in the package.
func DefaultHintCatalog() (*HintCatalog, error) {
	var catalog HintCatalog
	if err := yaml.Unmarshal(defaultHintsYAML, &catalog); err != nil {
		return nil, fmt.Errorf("priceinput: parse default hints: %w", err)
	}
	catalog.normalize()
	return &catalog, nil
}

// Placeholder returns the hint for the currency tag, or the currency agnostic
// default when the tag is unknown. Tags must match a catalog code exactly, so
// "irr" gets the default hint.
func (c *HintCatalog) Placeholder(tag string) string {
	if c == nil {
		return ""
	}
	if hint, exists := c.Placeholders[tag]; exists {
		return hint
	}
	return c.DefaultPlaceholder
}

// Clone returns a deep copy of the catalog.
func (c *HintCatalog) Clone() *HintCatalog {
	if c == nil {
		return nil
	}
	out := &HintCatalog{
		DefaultPlaceholder: c.DefaultPlaceholder,
		ErrorMessage:       c.ErrorMessage,
	}
	if len(c.Placeholders) > 0 {
		out.Placeholders = make(map[string]string, len(c.Placeholders))
		for code, hint := range c.Placeholders {
			out.Placeholders[code] = hint
		}
	}
	return out
}

// merge copies every non-empty value of source into c
func (c *HintCatalog) merge(source *HintCatalog) {
	if source == nil {
		return
	}
	if source.DefaultPlaceholder != "" {
		c.DefaultPlaceholder = source.DefaultPlaceholder
	}
	if source.ErrorMessage != "" {
		c.ErrorMessage = source.ErrorMessage
	}
	if len(source.Placeholders) > 0 {
		if c.Placeholders == nil {
			c.Placeholders = make(map[string]string, len(source.Placeholders))
		}
		for tag, hint := range source.Placeholders {
			code, ok := NormalizeCurrency(tag)
			if !ok {
				code = strings.TrimSpace(tag)
			}
			c.Placeholders[code] = hint
		}
	}
}

func (c *HintCatalog) normalize() {
	if len(c.Placeholders) == 0 {
		return
	}
	placeholders := c.Placeholders
	c.Placeholders = nil
	c.merge(&HintCatalog{Placeholders: placeholders})
}

// NormalizeCurrency returns the canonical ISO 4217 code for tag. It is applied
// to catalog keys read from files, never to the tag a field is configured with.
// Tags are matched case-insensitively; ok is false for anything that is not a known code.
func NormalizeCurrency(tag string) (string, bool) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", false
	}
	unit, err := currency.ParseISO(trimmed)
	if err != nil {
		return "", false
	}
	return unit.String(), true
}
