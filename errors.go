package priceinput

import "errors"

// ErrInvalidNumericInput indicates that sanitized input could not be parsed into an amount.
var ErrInvalidNumericInput = errors.New("priceinput: invalid numeric input")

// ErrNoHintPaths is returned by HintLoader.LoadFiles when no catalog files were configured
var ErrNoHintPaths = errors.New("priceinput: no hint catalog paths configured")
