// Package tui renders a priceinput.Field as a Bubble Tea text input.
//
// The component owns a bubbles textinput. Every edit is routed through
// Field.OnInput and the field's display text is written back, so the input
// always shows grouped Persian digits.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	priceinput "github.com/goliatone/go-price-input"
)

// InputAttribute configures the underlying text input without being interpreted by the component.
type InputAttribute func(*textinput.Model)

// Option configures a Model
type Option func(*Model)

// WithFieldStyle styles the rendered input line
func WithFieldStyle(style lipgloss.Style) Option {
	return func(m *Model) {
		m.fieldStyle = style
	}
}

// WithErrorStyle styles the error line shown under the input
func WithErrorStyle(style lipgloss.Style) Option {
	return func(m *Model) {
		m.errorStyle = style
	}
}

// WithInputAttributes forwards attrs to the text input after the component's own setup
func WithInputAttributes(attrs ...InputAttribute) Option {
	return func(m *Model) {
		m.attrs = append(m.attrs, attrs...)
	}
}

// Width sets the visible width of the input.
func Width(width int) InputAttribute {
	return func(in *textinput.Model) {
		in.Width = width
	}
}

// CharLimit caps the number of runes the input accepts, separators included.
func CharLimit(limit int) InputAttribute {
	return func(in *textinput.Model) {
		in.CharLimit = limit
	}
}

func Prompt(prompt string) InputAttribute {
	return func(in *textinput.Model) {
		in.Prompt = prompt
	}
}

// Disabled blurs the input so it ignores key presses.
func Disabled() InputAttribute {
	return func(in *textinput.Model) {
		in.Blur()
	}
}

// Model is a Bubble Tea component bound to a priceinput.Field
type Model struct {
	field      *priceinput.Field
	input      textinput.Model
	fieldStyle lipgloss.Style
	errorStyle lipgloss.Style
	attrs      []InputAttribute
	metadata   map[string]any
}

// New returns a focused input showing the field's placeholder.
func New(field *priceinput.Field, opts ...Option) Model {
	m := Model{
		field:      field,
		metadata:   field.Attributes(),
		fieldStyle: lipgloss.NewStyle(),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&m)
	}

	in := textinput.New()
	in.Placeholder = field.Placeholder()
	in.SetValue(field.Display())
	in.Focus()

	for _, attr := range m.attrs {
		if attr == nil {
			continue
		}
		attr(&in)
	}

	m.input = in
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input and reformats its content when it changed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		// rejected input leaves the field untouched, which reverts the text below
		_ = m.field.OnInput(m.input.Value())
		m.input.SetValue(m.field.Display())
		m.input.CursorEnd()
	}

	return m, cmd
}

func (m Model) View() string {
	view := m.fieldStyle.Render(m.input.View())
	if msg := m.field.Error(); msg != "" {
		view += "\n" + m.errorStyle.Render(msg)
	}
	return view
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the text currently shown in the input.
func (m Model) Value() string {
	return m.input.Value()
}

func (m Model) Placeholder() string {
	return m.input.Placeholder
}

// Attributes returns the field's pass-through attributes as they were when the
// model was created, so hosts can read back ids or handlers they attached.
func (m Model) Attributes() map[string]any {
	if len(m.metadata) == 0 {
		return nil
	}
	out := make(map[string]any, len(m.metadata))
	for key, value := range m.metadata {
		out[key] = value
	}
	return out
}

func (m Model) Field() *priceinput.Field {
	return m.field
}
