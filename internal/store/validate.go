package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// dataSchema describes the persisted document: a "todos" object keyed by
// ISO dates, each an array of {text, done}, and a "long_term" string array.
const dataSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["todos", "long_term"],
  "properties": {
    "todos": {
      "type": "object",
      "propertyNames": {
        "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"
      },
      "additionalProperties": {
        "type": "array",
        "minItems": 1,
        "items": {
          "type": "object",
          "required": ["text", "done"],
          "properties": {
            "text": {"type": "string", "minLength": 1},
            "done": {"type": "boolean"}
          },
          "additionalProperties": false
        }
      }
    },
    "long_term": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "additionalProperties": false
}`

// ValidationResult collects everything doctor found wrong with a data file.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateFile checks the data file at path against the document schema
// without loading it into a store. A missing file is valid: Load treats it
// as an empty store.
func ValidateFile(path string) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("not valid JSON: %v", err))
		return result, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("daybook-data.json", strings.NewReader(dataSchema)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile("daybook-data.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(obj); err != nil {
		result.Valid = false
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			collectSchemaErrors(result, ve)
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result, nil
}

// collectSchemaErrors flattens the validation error tree into one line per
// leaf cause.
func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
