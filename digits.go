package priceinput

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DigitScript maps the ten decimal digits to the glyphs of a local script.
// The glyph at index i stands for the ASCII digit i.
type DigitScript [10]rune

// PersianDigits holds the Extended Arabic-Indic digits used to display Persian amounts.
var PersianDigits = DigitScript{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// Glyph returns the local glyph for the ASCII digit r.
func (s DigitScript) Glyph(r rune) (rune, bool) {
	if r < '0' || r > '9' {
		return r, false
	}
	return s[r-'0'], true
}

// Digit returns the ASCII digit for the local glyph r.
func (s DigitScript) Digit(r rune) (rune, bool) {
	for i, glyph := range s {
		if glyph == r {
			return rune('0' + i), true
		}
	}
	return r, false
}

// LocalTransformer returns a transformer that rewrites ASCII digits into the local script.
// Every other byte, including bytes that are not valid UTF-8, is copied as is.
func (s DigitScript) LocalTransformer() transform.SpanningTransformer {
	return digitMapper{lookup: s.Glyph}
}

// ASCIITransformer returns a transformer that rewrites local glyphs into ASCII digits.
// Runes outside the mapping, including digits of other scripts, are left as they are.
func (s DigitScript) ASCIITransformer() transform.SpanningTransformer {
	return digitMapper{lookup: s.Digit}
}

// digitMapper rewrites the runes lookup reports as mapped and copies
// everything else byte for byte.
type digitMapper struct {
	transform.NopResetter
	lookup func(rune) (rune, bool)
}

// next decodes the rune at the start of src. mapped is false for invalid
// bytes, which are consumed one at a time.
func (m digitMapper) next(src []byte, atEOF bool) (out rune, size int, mapped bool, err error) {
	r, size := utf8.DecodeRune(src)
	if r == utf8.RuneError && size <= 1 {
		if !atEOF && !utf8.FullRune(src) {
			return 0, 0, false, transform.ErrShortSrc
		}
		return r, 1, false, nil
	}
	out, mapped = m.lookup(r)
	return out, size, mapped, nil
}

func (m digitMapper) Span(src []byte, atEOF bool) (n int, err error) {
	for n < len(src) {
		_, size, mapped, err := m.next(src[n:], atEOF)
		if err != nil {
			return n, err
		}
		if mapped {
			return n, transform.ErrEndOfSpan
		}
		n += size
	}
	return n, nil
}

func (m digitMapper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		out, size, mapped, err := m.next(src[nSrc:], atEOF)
		if err != nil {
			return nDst, nSrc, err
		}

		if !mapped {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		if nDst+utf8.RuneLen(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// ToLocal replaces every ASCII digit in text with its local glyph.
func (s DigitScript) ToLocal(text string) string {
	return applyTransformer(s.LocalTransformer(), text)
}

// ToASCII replaces every local glyph in text with its ASCII digit.
func (s DigitScript) ToASCII(text string) string {
	return applyTransformer(s.ASCIITransformer(), text)
}

// Sanitize converts local glyphs to ASCII and drops everything that is not an ASCII digit.
func (s DigitScript) Sanitize(raw string) string {
	return applyTransformer(transform.Chain(s.ASCIITransformer(), runes.Remove(nonASCIIDigit)), raw)
}

var nonASCIIDigit = runes.Predicate(func(r rune) bool {
	return r < '0' || r > '9'
})

func applyTransformer(t transform.Transformer, text string) string {
	if text == "" {
		return ""
	}
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// ToLocalScript converts ASCII digits in text to Persian digits.
func ToLocalScript(text string) string {
	return PersianDigits.ToLocal(text)
}

// ToASCIIScript converts Persian digits in text to ASCII digits.
func ToASCIIScript(text string) string {
	return PersianDigits.ToASCII(text)
}

// SanitizeDigits reduces raw keystrokes to the ASCII digits they contain, reading Persian digits as well.
func SanitizeDigits(raw string) string {
	return PersianDigits.Sanitize(raw)
}
