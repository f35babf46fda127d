package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// nextID implements the id assignment policy: max(existing ids) + 1, or 1
// for an empty collection. Ids are never reused after deletion.
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if id(r) > max {
			max = id(r)
		}
	}
	return max + 1
}

// mergePatch shallow-merges the supplied fields onto an existing record:
// fields present in patch win, omitted fields keep their stored value. The
// record goes through its JSON form so patch keys line up with the wire
// contract.
func mergePatch[T any](existing T, patch map[string]any) (T, error) {
	var merged T

	data, err := json.Marshal(existing)
	if err != nil {
		return merged, fmt.Errorf("error encoding record: %w", err)
	}

	base := map[string]any{}
	if err := json.Unmarshal(data, &base); err != nil {
		return merged, fmt.Errorf("error decoding record: %w", err)
	}

	if err := mergo.Map(&base, patch, mergo.WithOverride); err != nil {
		return merged, fmt.Errorf("error merging update: %w", err)
	}

	data, err = json.Marshal(base)
	if err != nil {
		return merged, fmt.Errorf("error encoding merged record: %w", err)
	}
	if err := json.Unmarshal(data, &merged); err != nil {
		return merged, fmt.Errorf("invalid field in update: %w", err)
	}
	return merged, nil
}

// ParseStringList normalizes a tags/tools value into trimmed, non-empty
// strings. Accepted forms: a JSON array string (leading "["), or a bare
// comma-separated string. Malformed JSON is a client error and propagates.
func ParseStringList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			return nil, fmt.Errorf("invalid list value %q: %w", raw, err)
		}
	} else {
		parts = strings.Split(raw, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// Slugify derives a URL-safe slug from a display name.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
