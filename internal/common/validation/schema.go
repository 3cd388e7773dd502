package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RecordArraySchema accepts any top-level array whose items are objects.
// Item fields are deliberately unconstrained; required keys are checked
// record by record during transformation.
const RecordArraySchema = `{
  "type": "array",
  "items": {"type": "object"}
}`

var recordArrayLoader = gojsonschema.NewStringLoader(RecordArraySchema)

// ValidationError describes one schema violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateRecordArray checks that raw is a JSON array of objects.
// An error is returned only when raw is not JSON at all.
func ValidateRecordArray(raw []byte) (*ValidationResult, error) {
	return ValidateDocument(recordArrayLoader, gojsonschema.NewBytesLoader(raw))
}

// ValidateDocument validates document against schema.
func ValidateDocument(schema, document gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) String() string {
	if vr.Valid {
		return "valid"
	}
	return strings.Join(vr.GetErrorMessages(), "; ")
}
