package priceinput

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// GroupSeparator is inserted every three digits, counting from the right.
const GroupSeparator = ","

// FormatAmount renders text as a grouped amount in the local script.
// Separators are stripped and the leading run of digits, optionally signed
// with "+", is parsed; text without a leading digit, a negative number or a run
// too large for uint64 renders as "".
func (s DigitScript) FormatAmount(text string) string {
	cleaned := s.ToASCII(strings.ReplaceAll(text, GroupSeparator, ""))
	cleaned = strings.TrimLeftFunc(cleaned, unicode.IsSpace)
	digits := leadingDigits(strings.TrimPrefix(cleaned, "+"))
	if digits == "" {
		return ""
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return ""
	}

	return s.FormatValue(value)
}

// FormatValue renders value grouped by thousands in the local script.
func (s DigitScript) FormatValue(value uint64) string {
	return s.ToLocal(groupDigits(value))
}

// ParseAmount sanitizes raw and parses what remains.
// ok is false when raw holds no digits at all, which is not an error.
func (s DigitScript) ParseAmount(raw string) (value uint64, ok bool, err error) {
	_, value, ok, err = s.parseDigits(raw)
	return value, ok, err
}

// parseDigits is ParseAmount that also returns the sanitized digits.
func (s DigitScript) parseDigits(raw string) (digits string, value uint64, ok bool, err error) {
	digits = s.Sanitize(raw)
	if digits == "" {
		return digits, 0, false, nil
	}

	value, err = strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return digits, 0, false, fmt.Errorf("%w: %w", ErrInvalidNumericInput, err)
	}
	return digits, value, true, nil
}

// FormatAmount formats text with Persian digits and comma grouping.
func FormatAmount(text string) string {
	return PersianDigits.FormatAmount(text)
}

// ParseAmount extracts the amount typed in raw, accepting Persian and ASCII digits.
func ParseAmount(raw string) (uint64, bool, error) {
	return PersianDigits.ParseAmount(raw)
}

// groupDigits uses the English printer, which groups by three with a comma.
func groupDigits(value uint64) string {
	printer := message.NewPrinter(language.English)
	return printer.Sprintf("%v", number.Decimal(value))
}

func leadingDigits(input string) string {
	end := 0
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	return input[:end]
}
