// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package notion

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertyType identifies a Notion database property kind.
type PropertyType string

const (
	TypeTitle       PropertyType = "title"
	TypeRichText    PropertyType = "rich_text"
	TypeSelect      PropertyType = "select"
	TypeMultiSelect PropertyType = "multi_select"
	TypeNumber      PropertyType = "number"
	TypeCheckbox    PropertyType = "checkbox"
	TypeEmail       PropertyType = "email"
	TypeDate        PropertyType = "date"
	TypeURL         PropertyType = "url"
)

// Properties is a page property set keyed by property name, in the shape the
// pages endpoint expects.
type Properties map[string]any

// ConversionError reports a CSV cell that could not be converted to the
// declared property type.
type ConversionError struct {
	Type  PropertyType
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// textValue wraps plain text into a single Notion text run.
func textValue(value string) []map[string]any {
	return []map[string]any{
		{"text": map[string]any{"content": value}},
	}
}

// BuildValue converts one raw CSV cell into the Notion property value for the
// given type. The cell is trimmed first; a blank cell yields nil so the caller
// can omit the property from the create payload entirely.
//
// Dates are passed through unparsed; a malformed date is rejected by the API,
// not here. Checkbox is true only when the trimmed, uppercased cell is the
// literal word TRUE.
func BuildValue(propType PropertyType, value string) (map[string]any, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return nil, nil
	}

	switch propType {
	case TypeTitle:
		return map[string]any{"title": textValue(raw)}, nil
	case TypeRichText:
		return map[string]any{"rich_text": textValue(raw)}, nil
	case TypeSelect:
		return map[string]any{"select": map[string]any{"name": raw}}, nil
	case TypeMultiSelect:
		var options []map[string]any
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			options = append(options, map[string]any{"name": part})
		}
		return map[string]any{"multi_select": options}, nil
	case TypeNumber:
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ConversionError{Type: propType, Value: raw, Err: err}
		}
		return map[string]any{"number": number}, nil
	case TypeCheckbox:
		return map[string]any{"checkbox": strings.ToUpper(raw) == "TRUE"}, nil
	case TypeEmail:
		return map[string]any{"email": raw}, nil
	case TypeDate:
		return map[string]any{"date": map[string]any{"start": raw}}, nil
	case TypeURL:
		return map[string]any{"url": raw}, nil
	default:
		return nil, fmt.Errorf("unsupported property type: %s", propType)
	}
}

// Relation builds a single-target relation property from an already resolved
// page ID. Relations are never built from CSV cells directly; callers look the
// ID up in the name maps produced by earlier imports.
func Relation(pageID string) map[string]any {
	return map[string]any{
		"relation": []map[string]any{{"id": pageID}},
	}
}
