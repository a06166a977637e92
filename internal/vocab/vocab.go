// Package vocab loads the skill vocabulary: the named skills plus the
// lowercase trigger patterns the matcher scans for. A built-in default set
// is always available; an optional JSON file can extend or replace it and is
// validated against an embedded JSON Schema before use.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerforge/resume-tailor/internal/types"
)

// Load returns the default vocabulary when path is empty, otherwise the
// entries parsed from the JSON file at path. A file that fails schema
// validation is rejected at startup rather than silently producing a
// half-working matcher.
func Load(path string) ([]types.VocabularyEntry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var entries []types.VocabularyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	return entries, nil
}

// validate checks the raw document against the embedded schema.
func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(vocabularySchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate vocabulary: %w", err)
	}
	if !result.Valid() {
		var verr VocabularyError
		for _, e := range result.Errors() {
			verr.Problems = append(verr.Problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return &verr
	}
	return nil
}

// VocabularyError aggregates the schema problems found in a vocabulary file.
type VocabularyError struct {
	Problems []string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("invalid vocabulary: %d problem(s), first: %s", len(e.Problems), e.Problems[0])
}

const vocabularySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "category"],
    "additionalProperties": false,
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "category": {
        "type": "string",
        "enum": ["technical", "product", "leadership", "domain", "soft"]
      },
      "match_patterns": {
        "type": "array",
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`
