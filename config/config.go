package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"shiftsync/ingest"
)

const (
	KeyImportMaxRows          = "import.max_rows"
	KeyImportDefaultPublished = "import.default_published"
	KeyAliases                = "aliases"
)

type Config struct {
	Import  ImportConfig `mapstructure:"import"`
	Aliases []AliasRule  `mapstructure:"aliases"`
}

type ImportConfig struct {
	MaxRows          int  `mapstructure:"max_rows" validate:"gte=1"`
	DefaultPublished bool `mapstructure:"default_published"`
}

// AliasRule appends extra header synonyms to one canonical field.
type AliasRule struct {
	Field   string   `mapstructure:"field"`
	Headers []string `mapstructure:"headers"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# shiftsync configuration
import:
  max_rows: 5000
  default_published: true

# Extra header synonyms per canonical field, tried after the built-ins.
# aliases:
#   - field: date
#     headers: ["business date"]
aliases: []
`
}

// AliasSet builds the effective alias rules: defaults plus configured
// extras in file order.
func (c Config) AliasSet() (*ingest.AliasSet, error) {
	set := ingest.DefaultAliases()
	for i, rule := range c.Aliases {
		if err := set.Extend(rule.Field, rule.Headers); err != nil {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
	}
	return set, nil
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateAliases(cfg.Aliases); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyImportMaxRows, 5000)
	v.SetDefault(KeyImportDefaultPublished, true)
	v.SetDefault(KeyAliases, []map[string]any{})
}

func validateAliases(rules []AliasRule) error {
	known := make(map[string]bool)
	for _, field := range ingest.KnownFields() {
		known[field] = true
	}

	for i, rule := range rules {
		field := strings.ToLower(strings.TrimSpace(rule.Field))
		if field == "" {
			return fmt.Errorf("validation failed: aliases[%d].field is required", i)
		}
		if !known[field] {
			return fmt.Errorf(
				"validation failed: aliases[%d].field %q is not a canonical field (valid: %s)",
				i,
				rule.Field,
				strings.Join(ingest.KnownFields(), ", "),
			)
		}
		if len(rule.Headers) == 0 {
			return fmt.Errorf("validation failed: aliases[%d].headers must not be empty", i)
		}
		for _, header := range rule.Headers {
			if strings.TrimSpace(header) == "" {
				return fmt.Errorf("validation failed: aliases[%d] contains an empty header", i)
			}
		}
	}
	return nil
}
