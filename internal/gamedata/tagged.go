package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Enumerations are stored externally tagged: a variant without data is the
// bare tag string, a variant with data is a single-key object {"Tag": data}.

// splitTagged returns the tag of an externally tagged value and its content.
// Content is nil for bare-string variants.
func splitTagged(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return "", nil, err
		}
		return tag, nil, nil
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return "", nil, err
		}
		if len(m) != 1 {
			return "", nil, fmt.Errorf("tagged value must have exactly one key, got %d", len(m))
		}
		for tag, content := range m {
			return tag, content, nil
		}
	}
	return "", nil, fmt.Errorf("expected string or object, got %s", truncate(data))
}

// tagged encodes a variant carrying content.
func tagged(tag string, content any) ([]byte, error) {
	inner, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{tag: inner})
}

// unit encodes a variant without content.
func unit(tag string) ([]byte, error) {
	return json.Marshal(tag)
}

// strict decodes content rejecting unknown fields.
func strict(content json.RawMessage, v any) error {
	if content == nil {
		return fmt.Errorf("missing content")
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// needContent and noContent check that a variant's shape matches its tag.
func needContent(what, tag string, content json.RawMessage) error {
	if content == nil {
		return fmt.Errorf("%s %q requires content", what, tag)
	}
	return nil
}

func noContent(what, tag string, content json.RawMessage) error {
	if content != nil {
		return fmt.Errorf("%s %q takes no content", what, tag)
	}
	return nil
}

func unknownVariant(what, tag string) error {
	return fmt.Errorf("unknown %s %q", what, tag)
}

func truncate(b []byte) string {
	if len(b) > 32 {
		return string(b[:32]) + "..."
	}
	return string(b)
}

// enumText and parseEnum implement text marshalling for plain enumerations
// stored as consecutive integers with a name table.
func enumText(names []string, what string, v int) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, fmt.Errorf("invalid %s %d", what, v)
	}
	return []byte(names[v]), nil
}

func parseEnum[T ~int](names []string, what string, b []byte, dst *T) error {
	for i, n := range names {
		if n == string(b) {
			*dst = T(i)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", what, b)
}

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "Unknown"
	}
	return names[v]
}
