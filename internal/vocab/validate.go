package vocab

import (
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaRelativePath is the vocabulary schema location relative to the repo root.
const SchemaRelativePath = "schemas/vocabulary.schema.json"

// ResolveSchemaPath attempts to find the vocabulary schema by trying common
// path resolutions relative to the working directory. This matters because
// CLI commands and tests run from different directories. Returns empty
// string if no candidate exists.
func ResolveSchemaPath() string {
	candidates := []string{
		SchemaRelativePath,
		filepath.Join("..", SchemaRelativePath),
		filepath.Join("..", "..", SchemaRelativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidateFile validates a vocabulary JSON file against the schema at
// schemaPath. A missing schemaPath skips validation (the file may still
// fail to parse in Load).
func ValidateFile(schemaPath, vocabPath string) error {
	if schemaPath == "" {
		return nil
	}

	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return &LoadError{Message: "failed to resolve schema path", Cause: err}
	}
	vocabAbs, err := filepath.Abs(vocabPath)
	if err != nil {
		return &LoadError{Message: "failed to resolve vocabulary path", Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + vocabAbs)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Message: "schema validation failed to run", Cause: err}
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return &SchemaError{Path: vocabPath, Issues: issues}
	}

	return nil
}
