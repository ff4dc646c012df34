package advisor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencedJSON matches a markdown-fenced json block. Search-augmented requests
// cannot declare a response schema, so the model sometimes wraps its JSON in
// a fence despite being told not to.
var fencedJSON = regexp.MustCompile("```json\n([\\s\\S]*?)\n```")

// unwrapFencedJSON returns the fenced JSON content when present, otherwise
// the whole trimmed body.
func unwrapFencedJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := fencedJSON.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}

// validator is implemented by every structured result type.
type validator interface {
	Validate() error
}

// decodeStrict unmarshals strict JSON into out and validates the result.
// A shape violation is a decode failure, not a silently empty result.
func decodeStrict(text string, out validator) error {
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response JSON: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("response failed validation: %w", err)
	}
	return nil
}
