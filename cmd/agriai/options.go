package main

import (
	"fmt"
	"strings"
)

// The option lists mirror the choices the product offers; free text is not
// dispatched for these fields.

var seasons = []string{"Spring", "Summer", "Autumn", "Winter"}

var marketCrops = []string{"Corn", "Wheat", "Soy", "Cotton", "Rice"}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// normalizeOption matches input case-insensitively against an option list
// and returns the canonical spelling.
func normalizeOption(input, field string, options []string) (string, error) {
	trimmed := strings.TrimSpace(input)
	for _, opt := range options {
		if strings.EqualFold(trimmed, opt) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q (choose from: %s)", field, input, strings.Join(options, ", "))
}
