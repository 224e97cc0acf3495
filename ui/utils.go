package ui

import (
	"fmt"
	"html/template"
	"strconv"

	"statclass/internal/errors"
)

// templateHTML marks already-rendered markup as safe for templates
func templateHTML(b []byte) template.HTML {
	return template.HTML(b)
}

// parseFloatParam parses a required numeric request parameter
func parseFloatParam(raw, key string) (float64, error) {
	if raw == "" {
		return 0, errors.InvalidInput(fmt.Sprintf("missing query parameter %q", key))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("query parameter %q is not a number", key))
	}
	return v, nil
}
