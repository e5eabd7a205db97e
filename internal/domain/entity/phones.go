package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"contactdesk/internal/errors"
)

type rawPhonesKind int

const (
	rawPhonesAbsent rawPhonesKind = iota
	rawPhonesList
	rawPhonesText
)

// placeholderPhones are values left behind by clients that stringified empty inputs.
var placeholderPhones = map[string]struct{}{
	"":          {},
	"null":      {},
	"undefined": {},
}

// RawPhones holds a phones value in whatever shape it arrived: absent, a list,
// or a single string that may itself be a JSON-encoded list.
// Normalize is the only way to read it.
type RawPhones struct {
	kind rawPhonesKind
	list []string
	text string
}

// PhonesFromList wraps a list of phone numbers.
func PhonesFromList(list []string) RawPhones {
	return RawPhones{kind: rawPhonesList, list: list}
}

// PhonesFromText wraps a stored or submitted string value.
func PhonesFromText(text string) RawPhones {
	return RawPhones{kind: rawPhonesText, text: text}
}

// PhonesFromNullableText wraps a nullable column value.
func PhonesFromNullableText(text *string) RawPhones {
	if text == nil {
		return RawPhones{}
	}

	return PhonesFromText(*text)
}

// IsAbsent reports whether no phones value was supplied at all.
func (r RawPhones) IsAbsent() bool {
	return r.kind == rawPhonesAbsent
}

// Normalize returns the canonical list: trimmed, with blank and placeholder entries removed.
// The result is never nil.
func (r RawPhones) Normalize() []string {
	switch r.kind {
	case rawPhonesList:
		return cleanPhones(r.list)
	case rawPhonesText:
		if list, ok := decodePhoneList([]byte(r.text)); ok {
			return cleanPhones(list)
		}

		return cleanPhones([]string{r.text})
	default:
		return []string{}
	}
}

// UnmarshalJSON accepts null, a string, or an array of scalars.
func (r *RawPhones) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*r = RawPhones{}
	case trimmed[0] == '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return errors.Wrap(err, "decode phones string")
		}
		*r = PhonesFromText(text)
	case trimmed[0] == '[':
		list, ok := decodePhoneList(trimmed)
		if !ok {
			return errors.New("phones must be a string or an array of strings")
		}
		*r = PhonesFromList(list)
	default:
		return errors.New("phones must be a string or an array of strings")
	}

	return nil
}

// decodePhoneList decodes a JSON array. Null elements are dropped and other
// non-string scalars keep their literal text, so [123] yields ["123"].
func decodePhoneList(data []byte) ([]string, bool) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, false
	}

	list := make([]string, 0, len(elements))
	for _, element := range elements {
		element = bytes.TrimSpace(element)
		if bytes.Equal(element, []byte("null")) {
			continue
		}

		var text string
		if err := json.Unmarshal(element, &text); err == nil {
			list = append(list, text)

			continue
		}
		list = append(list, string(element))
	}

	return list, true
}

func cleanPhones(list []string) []string {
	cleaned := make([]string, 0, len(list))
	for _, phone := range list {
		phone = strings.TrimSpace(phone)
		if _, placeholder := placeholderPhones[phone]; placeholder {
			continue
		}
		cleaned = append(cleaned, phone)
	}

	return cleaned
}
