package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// VerifyAgainstEmbeddedSchema checks the config against enum and range constraints of the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(embeddedSchema, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var errs []string
	verifyNode(&schema, schema.Definitions, configMap, "", &errs)
	if len(errs) > 0 {
		return fmt.Errorf("schema violations: %s", strings.Join(errs, "; "))
	}
	return nil
}

// verifyNode walks value along the schema, following local $ref links to definitions
func verifyNode(s *jsonschema.Schema, defs jsonschema.Definitions, value any, path string, errs *[]string) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		name := strings.TrimPrefix(s.Ref, "#/$defs/")
		ref, ok := defs[name]
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: unknown reference %s", path, s.Ref))
			return
		}
		verifyNode(ref, defs, value, path, errs)
		return
	}

	switch v := value.(type) {
	case map[string]any:
		if s.Properties == nil {
			return
		}
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			child, ok := v[pair.Key]
			if !ok {
				continue
			}
			verifyNode(pair.Value, defs, child, strings.TrimPrefix(path+"."+pair.Key, "."), errs)
		}
	case []any:
		for i, item := range v {
			verifyNode(s.Items, defs, item, fmt.Sprintf("%s[%d]", path, i), errs)
		}
	case string:
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, any(v)) {
			*errs = append(*errs, fmt.Sprintf("%s: %q is not one of %v", path, v, s.Enum))
		}
	case float64:
		if s.Minimum != "" {
			if lim, err := s.Minimum.Float64(); err == nil && v < lim {
				*errs = append(*errs, fmt.Sprintf("%s: %v is below minimum %v", path, v, lim))
			}
		}
		if s.Maximum != "" {
			if lim, err := s.Maximum.Float64(); err == nil && v > lim {
				*errs = append(*errs, fmt.Sprintf("%s: %v is above maximum %v", path, v, lim))
			}
		}
	}
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
