package priceinput

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestToLocalScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "all_digits", input: "0123456789", want: "۰۱۲۳۴۵۶۷۸۹"},
		{name: "grouped", input: "1,234", want: "۱,۲۳۴"},
		{name: "mixed_text", input: "price: 42 EUR", want: "price: ۴۲ EUR"},
		{name: "already_local", input: "۱۲", want: "۱۲"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLocalScript(tt.input); got != tt.want {
				t.Fatalf("ToLocalScript(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToASCIIScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "all_digits", input: "۰۱۲۳۴۵۶۷۸۹", want: "0123456789"},
		{name: "grouped", input: "۱,۲۳۴", want: "1,234"},
		{name: "mixed_scripts", input: "۱2۳", want: "123"},
		// Arabic-Indic digits are a different block and are not part of the mapping
		{name: "unmapped_glyphs", input: "٠١٢", want: "٠١٢"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToASCIIScript(tt.input); got != tt.want {
				t.Fatalf("ToASCIIScript(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDigitScriptRoundTrip(t *testing.T) {
	for i := 0; i < 2000; i += 7 {
		ascii := strconv.Itoa(i)
		if got := ToASCIIScript(ToLocalScript(ascii)); got != ascii {
			t.Fatalf("ascii round trip of %q = %q", ascii, got)
		}

		local := ToLocalScript(ascii)
		if got := ToLocalScript(ToASCIIScript(local)); got != local {
			t.Fatalf("local round trip of %q = %q", local, got)
		}
	}
}

func TestDigitScriptNonDigitsAreIdentity(t *testing.T) {
	inputs := []string{
		"abc",
		", . - _ +",
		"مبلغ مورد نظر تومان",
		"€ $ ﷼",
		"٠١٢٣",
		"\t\n",
		"a\xffb",
		"\xc3",
		"\xed\xa0\x80 \xfe\xff",
	}

	for _, input := range inputs {
		if got := ToLocalScript(input); got != input {
			t.Errorf("ToLocalScript(%q) = %q; want identity", input, got)
		}
		if got := ToASCIIScript(input); got != input {
			t.Errorf("ToASCIIScript(%q) = %q; want identity", input, got)
		}
	}
}

func TestDigitScriptLookups(t *testing.T) {
	for i := 0; i < 10; i++ {
		ascii := rune('0' + i)
		glyph, ok := PersianDigits.Glyph(ascii)
		if !ok {
			t.Fatalf("Glyph(%q) not found", ascii)
		}
		if glyph != PersianDigits[i] {
			t.Fatalf("Glyph(%q) = %q; want %q", ascii, glyph, PersianDigits[i])
		}

		digit, ok := PersianDigits.Digit(glyph)
		if !ok || digit != ascii {
			t.Fatalf("Digit(%q) = %q,%v; want %q", glyph, digit, ok, ascii)
		}
	}

	if r, ok := PersianDigits.Glyph('x'); ok || r != 'x' {
		t.Fatalf("Glyph('x') = %q,%v; want passthrough", r, ok)
	}
	if r, ok := PersianDigits.Digit('x'); ok || r != 'x' {
		t.Fatalf("Digit('x') = %q,%v; want passthrough", r, ok)
	}
}

func TestSanitizeDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "abc", want: ""},
		{input: "۱,۲۳۴", want: "1234"},
		{input: "1a2b۳ ۴!", want: "1234"},
		{input: "٠١٢", want: ""},
		{input: "-12.5", want: "125"},
	}

	for _, tt := range tests {
		if got := SanitizeDigits(tt.input); got != tt.want {
			t.Errorf("SanitizeDigits(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestLocalTransformerStreams(t *testing.T) {
	reader := transform.NewReader(strings.NewReader("total 1,500\n"), PersianDigits.LocalTransformer())
	out, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got := string(out); got != "total ۱,۵۰۰\n" {
		t.Fatalf("stream output = %q", got)
	}
}

func TestDigitScriptKeepsInvalidBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		local string
		ascii string
	}{
		{name: "between_digits", input: "1\xff۲", local: "۱\xff۲", ascii: "1\xff2"},
		{name: "truncated_rune_at_end", input: "12\xdb", local: "۱۲\xdb", ascii: "12\xdb"},
		{name: "escaped_glyph", input: "\xdb\xb1", local: "۱", ascii: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLocalScript(tt.input); got != tt.local {
				t.Fatalf("ToLocalScript(%q) = %q; want %q", tt.input, got, tt.local)
			}
			if got := ToASCIIScript(tt.input); got != tt.ascii {
				t.Fatalf("ToASCIIScript(%q) = %q; want %q", tt.input, got, tt.ascii)
			}
		})
	}

	if got := SanitizeDigits("1\xff2"); got != "12" {
		t.Fatalf("SanitizeDigits dropped digits around invalid bytes: %q", got)
	}
}

func TestASCIITransformerStreamsSplitGlyphs(t *testing.T) {
	// ۱۲ split across reads so the transformer sees a partial rune
	reader := transform.NewReader(&oneByteReader{data: []byte("x۱۲,۳")}, PersianDigits.ASCIITransformer())
	out, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got := string(out); got != "x12,3" {
		t.Fatalf("stream output = %q", got)
	}
}

type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}
