package priceinput

import (
	"go.uber.org/zap"
)

// Field is the state behind an editable amount input: the text on screen,
// the amount it stands for and the error shown under it.
//
// A Field starts empty and changes only through OnInput and Reset. It is not
// safe for concurrent use; it belongs to the event loop driving its input.
type Field struct {
	cfg         *Config
	logger      *zap.Logger
	placeholder string

	display  string
	value    uint64
	hasValue bool
	errText  string
}

// NewField builds a Config from opts and returns an empty field.
func NewField(opts ...Option) (*Field, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildField()
}

func newField(cfg *Config) *Field {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Field{
		cfg:         cfg,
		logger:      logger.With(zap.String("currency", cfg.Currency)),
		placeholder: cfg.ResolvePlaceholder(),
	}
}

// OnInput replaces the field content with raw, as typed by the user.
//
// Persian and ASCII digits are kept, everything else is dropped. An input
// without digits clears the field. When the digits cannot be parsed the
// previous display and value stay in place, the configured error message is
// shown and an error wrapping ErrInvalidNumericInput is returned.
func (f *Field) OnInput(raw string) error {
	ctx := &InputHookContext{Currency: f.cfg.Currency, Raw: raw}

	for _, hook := range f.cfg.Hooks {
		hook.BeforeInput(ctx)
	}

	digits, err := f.apply(ctx.Raw)
	return f.afterInput(ctx, digits, err)
}

func (f *Field) apply(raw string) (string, error) {
	digits, value, ok, err := PersianDigits.parseDigits(raw)
	if err != nil {
		// keep the last committed amount on screen
		f.errText = f.cfg.ErrorMessage
		f.logger.Warn("amount rejected", zap.Int("digits", len(digits)), zap.Error(err))
		return digits, err
	}

	if !ok {
		f.clear()
		f.logger.Debug("amount cleared")
		return digits, nil
	}

	f.value = value
	f.hasValue = true
	f.display = FormatAmount(digits)
	f.errText = ""

	f.logger.Debug("amount committed", zap.Uint64("value", value), zap.String("display", f.display))
	return digits, nil
}

func (f *Field) afterInput(ctx *InputHookContext, digits string, err error) error {
	ctx.Digits = digits
	ctx.Value, ctx.HasValue = f.Value()
	ctx.Display = f.display
	ctx.Message = f.errText
	ctx.Error = err

	for _, hook := range f.cfg.Hooks {
		hook.AfterInput(ctx)
	}

	return ctx.Error
}

// Reset empties the field the way OnInput("") does. Hooks observe the reset
// but cannot stop it: a Raw rewritten by a before hook is ignored. An error
// set by an after hook is returned.
func (f *Field) Reset() error {
	ctx := &InputHookContext{Currency: f.cfg.Currency}

	for _, hook := range f.cfg.Hooks {
		hook.BeforeInput(ctx)
	}

	f.clear()
	f.logger.Debug("amount cleared")

	ctx.Raw = ""
	return f.afterInput(ctx, "", nil)
}

func (f *Field) clear() {
	f.display = ""
	f.value = 0
	f.hasValue = false
	f.errText = ""
}

// Display returns the grouped Persian rendering of the current amount.
func (f *Field) Display() string {
	return f.display
}

// Value returns the current amount; ok is false while the field is empty.
func (f *Field) Value() (value uint64, ok bool) {
	return f.value, f.hasValue
}

// Error returns the message for the last rejected input, or "".
func (f *Field) Error() string {
	return f.errText
}

func (f *Field) Placeholder() string {
	return f.placeholder
}

func (f *Field) Currency() string {
	return f.cfg.Currency
}

// Attributes returns a copy of the pass-through attributes. The field never
// reads them; renderers forward them to whatever draws the input (tui.Model
// exposes them through its Attributes method, FieldHelpers through amount_attr).
func (f *Field) Attributes() map[string]any {
	if len(f.cfg.Attributes) == 0 {
		return nil
	}
	out := make(map[string]any, len(f.cfg.Attributes))
	for key, value := range f.cfg.Attributes {
		out[key] = value
	}
	return out
}
