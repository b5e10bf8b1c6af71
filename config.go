package priceinput

import (
	"errors"

	"go.uber.org/zap"
)

// Config captures the recognized options of a price field
type Config struct {
	Currency     string
	Placeholder  string
	ErrorMessage string
	Attributes   map[string]any
	Hooks        []InputHook
	Logger       *zap.Logger

	hintCatalog   *HintCatalog
	hintDataPath  string
	hintOverrides map[string]string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.ensureHintCatalog(); err != nil {
		return nil, err
	}

	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}

	if cfg.ErrorMessage == "" {
		cfg.ErrorMessage = cfg.hintCatalog.ErrorMessage
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	cfg.Hooks = filterHooks(cfg.Hooks)

	return cfg, nil
}

// WithCurrency sets the currency tag used to pick the placeholder hint.
// The tag is compared with the catalog codes as given.
func WithCurrency(tag string) Option {
	return func(c *Config) error {
		c.Currency = tag
		return nil
	}
}

// WithPlaceholder overrides the catalog hint. Empty values keep the catalog hint.
func WithPlaceholder(placeholder string) Option {
	return func(c *Config) error {
		c.Placeholder = placeholder
		return nil
	}
}

func WithErrorMessage(message string) Option {
	return func(c *Config) error {
		c.ErrorMessage = message
		return nil
	}
}

// WithAttribute stores an opaque attribute handed to renderers untouched
func WithAttribute(key string, value any) Option {
	return func(c *Config) error {
		if key == "" {
			return errors.New("priceinput: empty attribute key")
		}
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
		return nil
	}
}

func WithAttributes(attrs map[string]any) Option {
	return func(c *Config) error {
		for key, value := range attrs {
			if err := WithAttribute(key, value)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithInputHooks(hooks ...InputHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithHintCatalog uses catalog as is, skipping file loading
func WithHintCatalog(catalog *HintCatalog) Option {
	return func(c *Config) error {
		c.hintCatalog = catalog.Clone()
		return nil
	}
}

// WithHintData loads a catalog file merged over the embedded hints
func WithHintData(path string) Option {
	return func(c *Config) error {
		c.hintDataPath = path
		c.hintCatalog = nil
		return nil
	}
}

// WithHintOverride replaces the hint of a single currency with the one found in path
func WithHintOverride(currency, path string) Option {
	return func(c *Config) error {
		if c.hintOverrides == nil {
			c.hintOverrides = make(map[string]string)
		}
		c.hintOverrides[currency] = path
		c.hintCatalog = nil
		return nil
	}
}

// HintCatalog returns a copy of the resolved catalog.
func (cfg *Config) HintCatalog() *HintCatalog {
	if cfg == nil {
		return nil
	}
	return cfg.hintCatalog.Clone()
}

// ResolvePlaceholder returns the override when set, otherwise the catalog hint for the currency.
func (cfg *Config) ResolvePlaceholder() string {
	if cfg == nil {
		return ""
	}
	if cfg.Placeholder != "" {
		return cfg.Placeholder
	}
	return cfg.hintCatalog.Placeholder(cfg.Currency)
}

// BuildField creates an empty field bound to cfg
func (cfg *Config) BuildField() (*Field, error) {
	if cfg == nil {
		return nil, errors.New("priceinput: nil config")
	}
	if cfg.hintCatalog == nil {
		if err := cfg.ensureHintCatalog(); err != nil {
			return nil, err
		}
	}
	return newField(cfg), nil
}

func (cfg *Config) ensureHintCatalog() error {
	if cfg.hintCatalog != nil {
		return nil
	}

	loader := NewHintLoader(cfg.hintDataPath)
	for currency, path := range cfg.hintOverrides {
		loader.AddOverride(currency, path)
	}

	catalog, err := loader.Load()
	if err != nil {
		return err
	}
	cfg.hintCatalog = catalog
	return nil
}
