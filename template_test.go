package priceinput

import (
	"html/template"
	"strings"
	"testing"
)

func TestTemplateHelpers(t *testing.T) {
	tmpl := template.Must(template.New("amount").Funcs(TemplateHelpers()).Parse(
		`{{format_amount .Raw}}|{{local_digits "12"}}|{{ascii_digits "۳۴"}}`,
	))

	var out strings.Builder
	if err := tmpl.Execute(&out, map[string]any{"Raw": "1234567"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := out.String(); got != "۱,۲۳۴,۵۶۷|۱۲|34" {
		t.Fatalf("template output = %q", got)
	}
}

func TestFieldHelpers(t *testing.T) {
	field := newTestField(t, WithCurrency("EUR"), WithAttribute("name", "price"))
	if err := field.OnInput("2500"); err != nil {
		t.Fatalf("OnInput: %v", err)
	}

	tmpl := template.Must(template.New("field").Funcs(FieldHelpers(field)).Parse(
		`<input name="{{amount_attr "name"}}" placeholder="{{amount_placeholder}}" value="{{amount_display}}">{{with amount_error}}<p>{{.}}</p>{{end}}`,
	))

	var out strings.Builder
	if err := tmpl.Execute(&out, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := `<input name="price" placeholder="مبلغ مورد نظر €" value="۲,۵۰۰">`
	if got := out.String(); got != want {
		t.Fatalf("template output = %q; want %q", got, want)
	}
}

func TestFieldHelpersNilField(t *testing.T) {
	helpers := FieldHelpers(nil)
	if _, ok := helpers["amount_display"]; ok {
		t.Fatal("nil field should only expose stateless helpers")
	}
	if _, ok := helpers["format_amount"]; !ok {
		t.Fatal("expected format_amount helper")
	}
}
