package config

import (
	"strings"
	"testing"

	"shiftsync/ingest"
)

func TestValidateYAMLContent_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Import.MaxRows != 5000 {
		t.Fatalf("expected default max_rows 5000, got %d", cfg.Import.MaxRows)
	}
	if !cfg.Import.DefaultPublished {
		t.Fatal("expected default_published to default to true")
	}
	if len(cfg.Aliases) != 0 {
		t.Fatalf("expected no default alias rules, got %d", len(cfg.Aliases))
	}
}

func TestValidateYAMLContent_ExampleTemplateIsValid(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("example template should validate: %v", err)
	}
}

func TestValidateYAMLContent_FullConfig(t *testing.T) {
	t.Parallel()

	content := `
import:
  max_rows: 250
  default_published: false
aliases:
  - field: date
    headers: ["business date", "schedule date"]
`
	cfg, err := ValidateYAMLContent([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Import.MaxRows != 250 {
		t.Fatalf("expected max_rows 250, got %d", cfg.Import.MaxRows)
	}
	if cfg.Import.DefaultPublished {
		t.Fatal("expected default_published false")
	}
	if len(cfg.Aliases) != 1 || cfg.Aliases[0].Field != "date" {
		t.Fatalf("unexpected alias rules: %+v", cfg.Aliases)
	}
}

func TestValidateYAMLContent_RejectsNonPositiveMaxRows(t *testing.T) {
	t.Parallel()

	content := `
import:
  max_rows: 0
`
	if _, err := ValidateYAMLContent([]byte(content)); err == nil {
		t.Fatal("expected validation error for max_rows 0")
	}
}

func TestValidateYAMLContent_RejectsUnknownAliasField(t *testing.T) {
	t.Parallel()

	content := `
aliases:
  - field: favorite_color
    headers: ["hue"]
`
	_, err := ValidateYAMLContent([]byte(content))
	if err == nil {
		t.Fatal("expected validation error for unknown canonical field")
	}
	if !strings.Contains(err.Error(), "favorite_color") {
		t.Fatalf("expected error to name the bad field, got %v", err)
	}
}

func TestValidateYAMLContent_RejectsEmptyAliasHeaders(t *testing.T) {
	t.Parallel()

	content := `
aliases:
  - field: date
    headers: []
`
	if _, err := ValidateYAMLContent([]byte(content)); err == nil {
		t.Fatal("expected validation error for empty headers")
	}
}

func TestConfigAliasSet_AppendsAfterDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Aliases: []AliasRule{{Field: ingest.FieldDate, Headers: []string{"business date"}}},
	}

	set, err := cfg.AliasSet()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aliases := set.For(ingest.FieldDate)
	if len(aliases) == 0 || aliases[len(aliases)-1] != "business date" {
		t.Fatalf("expected configured synonym appended last, got %v", aliases)
	}
	if aliases[0] != "date" {
		t.Fatalf("expected built-in precedence preserved, got %v", aliases)
	}
}
