package priceinput

// TemplateHelpers exposes the digit and amount conversions for go-template
func TemplateHelpers() map[string]any {
	return map[string]any{
		"format_amount": FormatAmount,
		"local_digits":  ToLocalScript,
		"ascii_digits":  ToASCIIScript,
	}
}

// FieldHelpers adds helpers bound to field on top of TemplateHelpers.
func FieldHelpers(field *Field) map[string]any {
	helpers := TemplateHelpers()
	if field == nil {
		return helpers
	}

	helpers["amount_placeholder"] = field.Placeholder
	helpers["amount_display"] = field.Display
	helpers["amount_error"] = field.Error
	helpers["amount_attr"] = func(key string) any {
		return field.Attributes()[key]
	}
	return helpers
}
