// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package notion

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildValue_BlankYieldsAbsent(t *testing.T) {
	types := []PropertyType{
		TypeTitle, TypeRichText, TypeSelect, TypeMultiSelect,
		TypeNumber, TypeCheckbox, TypeEmail, TypeDate, TypeURL,
	}

	for _, typ := range types {
		for _, raw := range []string{"", "   ", "\t\n"} {
			value, err := BuildValue(typ, raw)
			if err != nil {
				t.Errorf("BuildValue(%s, %q) error = %v", typ, raw, err)
			}
			if value != nil {
				t.Errorf("BuildValue(%s, %q) = %v, want nil", typ, raw, value)
			}
		}
	}
}

func TestBuildValue_TextTypes(t *testing.T) {
	value, err := BuildValue(TypeTitle, "  Acme Corp  ")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	want := map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": "Acme Corp"}},
		},
	}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("title value = %v, want %v", value, want)
	}

	value, err = BuildValue(TypeRichText, "some notes")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	runs, ok := value["rich_text"].([]map[string]any)
	if !ok || len(runs) != 1 {
		t.Fatalf("rich_text value = %v, want single text run", value)
	}
}

func TestBuildValue_Select(t *testing.T) {
	value, err := BuildValue(TypeSelect, " High ")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	want := map[string]any{"select": map[string]any{"name": "High"}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("select value = %v, want %v", value, want)
	}
}

func TestBuildValue_MultiSelect(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		wants []string
	}{
		{"comma list with spaces", " PII , Credentials ,Logs", []string{"PII", "Credentials", "Logs"}},
		{"empty segments dropped", "a,,b, ,c", []string{"a", "b", "c"}},
		{"single value", "saas_core", []string{"saas_core"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := BuildValue(TypeMultiSelect, tt.raw)
			if err != nil {
				t.Fatalf("BuildValue() error = %v", err)
			}
			options, ok := value["multi_select"].([]map[string]any)
			if !ok {
				t.Fatalf("multi_select value = %v", value)
			}
			if len(options) != len(tt.wants) {
				t.Fatalf("got %d options, want %d", len(options), len(tt.wants))
			}
			for i, want := range tt.wants {
				if options[i]["name"] != want {
					t.Errorf("option[%d] = %v, want %q", i, options[i]["name"], want)
				}
			}
		})
	}
}

func TestBuildValue_Number(t *testing.T) {
	value, err := BuildValue(TypeNumber, " 2.5 ")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	if value["number"] != 2.5 {
		t.Errorf("number value = %v, want 2.5", value["number"])
	}

	_, err = BuildValue(TypeNumber, "not-a-number")
	if err == nil {
		t.Fatal("BuildValue() should fail for non-numeric input")
	}
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Errorf("error = %v, want ConversionError", err)
	}
	if convErr.Value != "not-a-number" {
		t.Errorf("ConversionError.Value = %q", convErr.Value)
	}
}

func TestBuildValue_Checkbox(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"TRUE", true},
		{"true", true},
		{"True", true},
		{" true ", true},
		{"FALSE", false},
		{"yes", false},
		{"1", false},
	}

	for _, tt := range tests {
		value, err := BuildValue(TypeCheckbox, tt.raw)
		if err != nil {
			t.Fatalf("BuildValue(checkbox, %q) error = %v", tt.raw, err)
		}
		if value["checkbox"] != tt.want {
			t.Errorf("checkbox(%q) = %v, want %v", tt.raw, value["checkbox"], tt.want)
		}
	}
}

func TestBuildValue_Passthrough(t *testing.T) {
	value, err := BuildValue(TypeEmail, " security@acme.example ")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	if value["email"] != "security@acme.example" {
		t.Errorf("email value = %v", value["email"])
	}

	value, err = BuildValue(TypeURL, "https://acme.example/soc2")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	if value["url"] != "https://acme.example/soc2" {
		t.Errorf("url value = %v", value["url"])
	}

	// Dates are not validated here; malformed dates are the API's problem.
	value, err = BuildValue(TypeDate, "not-a-date")
	if err != nil {
		t.Fatalf("BuildValue() error = %v", err)
	}
	date, ok := value["date"].(map[string]any)
	if !ok || date["start"] != "not-a-date" {
		t.Errorf("date value = %v", value)
	}
}

func TestBuildValue_UnsupportedType(t *testing.T) {
	if _, err := BuildValue(PropertyType("files"), "x"); err == nil {
		t.Error("BuildValue() should fail for an unsupported property type")
	}
}

func TestRelation(t *testing.T) {
	value := Relation("page-123")
	targets, ok := value["relation"].([]map[string]any)
	if !ok || len(targets) != 1 {
		t.Fatalf("relation value = %v", value)
	}
	if targets[0]["id"] != "page-123" {
		t.Errorf("relation target = %v, want page-123", targets[0]["id"])
	}
}
